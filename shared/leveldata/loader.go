package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
)

// Object group names read from arena TMX files
const (
	boundsGroup    = "bounds"
	platformsGroup = "platforms"
)

// FlatArena returns an arena with ground and walls but no platforms.
func FlatArena() *Arena {
	return &Arena{
		Name:        "flat",
		GroundLevel: config.Arena.GroundLevel,
		WallExtent:  config.Arena.WallExtent,
		Depth:       config.Arena.Depth,
	}
}

// LoadArena parses a TMX file into arena geometry. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
//
// One tile is one arena unit. The map is centered on x=0 and y grows upward
// from the bottom edge of the map. Platforms come from the "platforms"
// object group in file order; their "z" and "depth" properties set the
// depth axis. An optional "bounds" object overrides groundLevel and
// wallExtent.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	arena := FlatArena()
	arena.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	halfWidth := float64(levelMap.Width) / 2
	mapHeight := float64(levelMap.Height * levelMap.TileHeight)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case boundsGroup:
			for _, o := range og.Objects {
				if ground := o.Properties.GetFloat("groundLevel"); ground > 0 {
					arena.GroundLevel = ground
				}
				if walls := o.Properties.GetFloat("wallExtent"); walls > 0 {
					arena.WallExtent = walls
				}
			}
		case platformsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("load TMX %s: platform %d has no area", tmxPath, o.ID)
				}
				depth := o.Properties.GetFloat("depth")
				if depth <= 0 {
					depth = 1
				}
				arena.Platforms = append(arena.Platforms, Platform{
					Name: o.Name,
					Position: gamemath.Vec3{
						X: (o.X+o.Width/2)/tileW - halfWidth,
						Y: (mapHeight - (o.Y + o.Height/2)) / tileH,
						Z: o.Properties.GetFloat("z"),
					},
					Size: gamemath.Vec3{
						X: o.Width / tileW,
						Y: o.Height / tileH,
						Z: depth,
					},
				})
			}
		}
	}

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each one
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
