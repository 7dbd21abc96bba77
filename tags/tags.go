package tags

import "github.com/yohamta/donburi"

var (
	Combatant = donburi.NewTag().SetName("Combatant")
	Platform  = donburi.NewTag().SetName("Platform")
)

// Resolv tags for the collision broadphase
const (
	ResolvPlatform  = "platform"
	ResolvCombatant = "combatant"
)
