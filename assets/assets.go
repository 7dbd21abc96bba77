package assets

import (
	"embed"
	"fmt"
	"log"
	"sync"

	"github.com/sjmiguel8/box-brawl/shared/leveldata"
)

var (
	//go:embed arenas/*.tmx
	arenaFS embed.FS
)

const arenaDir = "arenas"

// DefaultArena is the arena used when none is selected.
const DefaultArena = "dojo"

var (
	loadOnce   sync.Once
	arenas     map[string]*leveldata.Arena
	arenaNames []string
	loadErr    error
)

func loadArenas() {
	arenas, arenaNames, loadErr = leveldata.LoadAllArenas(arenaFS, arenaDir)
	if loadErr != nil {
		log.Printf("[arena] Failed to load embedded arenas: %v", loadErr)
		return
	}
	log.Printf("[arena] Loaded %d arenas: %v", len(arenaNames), arenaNames)
}

// ArenaNames returns the sorted names of the embedded arenas.
func ArenaNames() []string {
	loadOnce.Do(loadArenas)
	names := make([]string, len(arenaNames))
	copy(names, arenaNames)
	return names
}

// LoadArena returns the embedded arena with the given name. An empty name
// selects DefaultArena.
func LoadArena(name string) (*leveldata.Arena, error) {
	loadOnce.Do(loadArenas)
	if loadErr != nil {
		return nil, loadErr
	}
	if name == "" {
		name = DefaultArena
	}
	arena, ok := arenas[name]
	if !ok {
		return nil, fmt.Errorf("unknown arena %q (have %v)", name, arenaNames)
	}
	return arena, nil
}
