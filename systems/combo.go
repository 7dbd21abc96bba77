package systems

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCombo records held directional input into the combo sequence, at
// most one token per debounce window. Left is checked before right, so with
// both held only the left token is recorded.
func UpdateCombo(w donburi.World) {
	for _, e := range Combatants(w) {
		state := components.State.Get(e)
		timers := components.Timers.Get(e)
		combo := components.Combo.Get(e)
		intent := components.Intent.Get(e).Current

		if !state.Is(cfg.Hitstun) {
			if intent.Left && timers.LastMoveTime <= 0 {
				combo.Push(cfg.MoveLeft, cfg.Combo.SequenceLimit)
				timers.LastMoveTime = cfg.Combo.MoveDebounce
			}
			if intent.Right && timers.LastMoveTime <= 0 {
				combo.Push(cfg.MoveRight, cfg.Combo.SequenceLimit)
				timers.LastMoveTime = cfg.Combo.MoveDebounce
			}
		}

		timers.LastMoveTime = gamemath.DecrementTimer(timers.LastMoveTime)
	}
}

// SelectSpecialVariant picks the special for a directional sequence by exact
// match. Unknown and short sequences fall back to EnergyBlast.
func SelectSpecialVariant(combo *components.ComboData) cfg.SpecialVariant {
	if variant, ok := cfg.SpecialSequences[combo.Key()]; ok {
		return variant
	}
	return cfg.EnergyBlast
}
