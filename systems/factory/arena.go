package factory

import (
	"log"
	"math"

	"github.com/sjmiguel8/box-brawl/archetypes"
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/leveldata"
	"github.com/sjmiguel8/box-brawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateArena spawns the arena singleton, a resolv space sized to the arena
// and one sensor object per platform. A sensor covers the platform's landing
// band padded by one cell; its Data is the platform index.
func CreateArena(w donburi.World, arena *leveldata.Arena) *donburi.Entry {
	if arena == nil {
		arena = leveldata.FlatArena()
	}

	highest := arena.GroundLevel
	for _, p := range arena.Platforms {
		highest = math.Max(highest, p.Top())
	}

	data := components.ArenaData{
		Geometry: arena,
		Scale:    cfg.Space.Scale,
		OffsetX:  arena.WallExtent + cfg.Space.Margin,
		Ceiling:  highest + cfg.Space.Headroom,
	}
	entry := archetypes.Arena.Spawn(w)
	components.Arena.SetValue(entry, data)

	width := int(math.Ceil(2 * data.OffsetX * data.Scale))
	height := int(math.Ceil((data.Ceiling + cfg.Space.Margin) * data.Scale))
	spaceEntry := CreateSpace(w, width, height, cfg.Space.Cell, cfg.Space.Cell)
	space := components.Space.Get(spaceEntry)

	pad := float64(cfg.Space.Cell)
	for i, p := range arena.Platforms {
		left, top := data.ToSpace(gamemath.Vec3{
			X: p.Position.X - p.Size.X/2,
			Y: p.Top() + cfg.Arena.PlatformTopSlack,
		})
		right, bottom := data.ToSpace(gamemath.Vec3{
			X: p.Position.X + p.Size.X/2,
			Y: p.Position.Y,
		})
		obj := resolv.NewObject(left-pad, top-pad, right-left+2*pad, bottom-top+2*pad, tags.ResolvPlatform)
		space.Add(obj)
		CreatePlatform(w, obj, i)
	}

	log.Printf("[arena] Created %q: %d platforms, walls at ±%.1f, space %dx%d",
		arena.Name, len(arena.Platforms), arena.WallExtent, width, height)
	return entry
}
