package components

import "github.com/yohamta/donburi"

// ResourcesData holds the combatant's meters. Every field stays within
// [0, max] after each system that touches it.
type ResourcesData struct {
	Health  float64
	Stamina float64
	Special float64
}

var Resources = donburi.NewComponentType[ResourcesData]()
