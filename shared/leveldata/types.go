// Package leveldata provides arena geometry and TMX arena parsing.
// Geometry here is plain data and imports neither the engine nor the ECS.
package leveldata

import "github.com/sjmiguel8/box-brawl/shared/gamemath"

// Arena is the immutable geometry of one round: a flat ground, two walls
// and a list of axis-aligned platforms.
type Arena struct {
	Name        string
	GroundLevel float64
	WallExtent  float64 // walls sit at -WallExtent and +WallExtent
	Depth       float64
	Platforms   []Platform
}

// Platform is an axis-aligned box. Position is its center and Size its full
// width, height and depth.
type Platform struct {
	Name     string
	Position gamemath.Vec3
	Size     gamemath.Vec3
}

// Top returns the y of the platform's top face.
func (p Platform) Top() float64 {
	return p.Position.Y + p.Size.Y/2
}

// Width returns the arena's playable width.
func (a *Arena) Width() float64 {
	return 2 * a.WallExtent
}
