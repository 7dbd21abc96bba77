package systems

import (
	"sort"

	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/yohamta/donburi"
)

// Combatants returns the combatant entries ordered by side so every system
// processes side 1 before side 2.
func Combatants(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Combatant.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Combatant.Get(entries[i]).Side < components.Combatant.Get(entries[j]).Side
	})
	return entries
}

// CombatantBySide returns the entry for side, or nil.
func CombatantBySide(w donburi.World, side cfg.Side) *donburi.Entry {
	var found *donburi.Entry
	components.Combatant.Each(w, func(e *donburi.Entry) {
		if components.Combatant.Get(e).Side == side {
			found = e
		}
	})
	return found
}

// CurrentTick returns the tick being processed, 0 without a clock.
func CurrentTick(w donburi.World) uint64 {
	clockEntry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(clockEntry).Tick
}
