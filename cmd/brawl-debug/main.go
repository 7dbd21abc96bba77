// Command brawl-debug is a local two-player viewer for the combat
// simulation. It draws the arena and combatants as boxes.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sjmiguel8/box-brawl/fonts"
)

func main() {
	arenaName := flag.String("arena", "", "Arena name (default: last used)")
	overlay := flag.Bool("overlay", false, "Start with the debug overlay shown")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings := LoadSettings()
	if settings == nil {
		settings = &SavedSettings{}
	}
	if *arenaName != "" {
		settings.Arena = *arenaName
	}
	if *overlay {
		settings.Overlay = true
	}

	game, err := NewGame(settings)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Box Brawl")
	ebiten.SetFullscreen(settings.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
