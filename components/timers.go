package components

import "github.com/yohamta/donburi"

// TimersData holds per-combatant frame counters. All count down to zero.
type TimersData struct {
	AttackCooldown int
	DashCooldown   int
	ComboTimer     int
	Hitstun        int
	LastMoveTime   int // directional token debounce
}

var Timers = donburi.NewComponentType[TimersData]()
