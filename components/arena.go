package components

import (
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ArenaData holds the round's geometry and the mapping from arena units to
// resolv space pixels. Space y grows downward.
type ArenaData struct {
	Geometry *leveldata.Arena
	Scale    float64
	OffsetX  float64 // arena units added to x before scaling
	Ceiling  float64 // arena y mapped to space y = 0
}

var Arena = donburi.NewComponentType[ArenaData]()

// ToSpace maps an arena point to space pixels.
func (a *ArenaData) ToSpace(p gamemath.Vec3) (x, y float64) {
	return (p.X + a.OffsetX) * a.Scale, (a.Ceiling - p.Y) * a.Scale
}

// Platform returns the platform at index i.
func (a *ArenaData) Platform(i int) leveldata.Platform {
	return a.Geometry.Platforms[i]
}
