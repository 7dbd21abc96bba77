package systems

import (
	"math"
	"sort"

	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/leveldata"
	"github.com/sjmiguel8/box-brawl/systems/factory"
	"github.com/sjmiguel8/box-brawl/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions resolves ground and platform contact, clamps combatants
// between the walls and recomputes the grounded flag.
func UpdateCollisions(w donburi.World) {
	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	ground := arena.Geometry.GroundLevel
	walls := arena.Geometry.WallExtent

	for _, e := range Combatants(w) {
		physics := components.Physics.Get(e)
		factory.SyncProbe(w, e)

		grounded := false
		platform := -1

		if physics.Position.Y <= ground {
			physics.Position.Y = ground
			physics.Velocity.Y = 0
			grounded = true
		} else if idx, landed := findLanding(e, arena); landed {
			physics.Position.Y = arena.Platform(idx).Top() + cfg.Arena.PlatformSnap
			physics.Velocity.Y = 0
			grounded = true
			platform = idx
		}

		physics.Position.X = gamemath.ClampFloat(physics.Position.X, -walls, walls)
		physics.Grounded = grounded
		physics.Platform = platform

		factory.SyncProbe(w, e)
	}
}

// findLanding returns the lowest-indexed platform the combatant lands on.
// The resolv space narrows the candidates; LandsOn decides.
func findLanding(e *donburi.Entry, arena *components.ArenaData) (int, bool) {
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return 0, false
	}
	check := obj.Check(0, 0, tags.ResolvPlatform)
	if check == nil {
		return 0, false
	}

	var candidates []int
	for _, o := range check.ObjectsByTags(tags.ResolvPlatform) {
		if idx, ok := o.Data.(int); ok {
			candidates = append(candidates, idx)
		}
	}
	sort.Ints(candidates)

	physics := components.Physics.Get(e)
	for i, idx := range candidates {
		if i > 0 && candidates[i-1] == idx {
			continue
		}
		if LandsOn(physics.Position, physics.Velocity, arena.Platform(idx)) {
			return idx, true
		}
	}
	return 0, false
}

// LandsOn reports whether a combatant at pos moving at vel lands on p: it
// must be falling, within the band from the platform's center up to just
// above its top face, and inside its width and depth.
func LandsOn(pos, vel gamemath.Vec3, p leveldata.Platform) bool {
	return vel.Y <= 0 &&
		pos.Y >= p.Position.Y &&
		pos.Y <= p.Top()+cfg.Arena.PlatformTopSlack &&
		math.Abs(pos.X-p.Position.X) < p.Size.X/2 &&
		math.Abs(pos.Z-p.Position.Z) < p.Size.Z/2
}
