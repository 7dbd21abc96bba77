package systems

import (
	"github.com/sjmiguel8/box-brawl/components"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SanitizeCombatants zeroes any non-finite position or velocity component
// and re-applies the wall clamp and resource bounds.
func SanitizeCombatants(w donburi.World) {
	walls := 0.0
	if arenaEntry, ok := components.Arena.First(w); ok {
		walls = components.Arena.Get(arenaEntry).Geometry.WallExtent
	}

	for _, e := range Combatants(w) {
		physics := components.Physics.Get(e)
		physics.Position = physics.Position.Sanitized()
		physics.Velocity = physics.Velocity.Sanitized()
		if walls > 0 {
			physics.Position.X = gamemath.ClampFloat(physics.Position.X, -walls, walls)
		}
		ClampResources(components.Resources.Get(e))
	}
}
