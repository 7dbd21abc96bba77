package components

import (
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Grounded bool
	Platform int // index into the arena's platforms, -1 when not standing on one
}

var Physics = donburi.NewComponentType[PhysicsData]()
