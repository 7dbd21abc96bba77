package systems

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateTimers runs at the start of a tick. It counts down the combo window
// and hitstun, and releases a combatant from hitstun once the counter had
// already reached zero, so a hitstun of n locks out n full ticks.
func UpdateTimers(w donburi.World) {
	for _, e := range Combatants(w) {
		timers := components.Timers.Get(e)
		state := components.State.Get(e)

		timers.ComboTimer = gamemath.DecrementTimer(timers.ComboTimer)

		if state.Is(cfg.Hitstun) && timers.Hitstun <= 0 {
			state.Transition(cfg.Idle)
		}
		timers.Hitstun = gamemath.DecrementTimer(timers.Hitstun)

		state.StateTimer++
	}
}
