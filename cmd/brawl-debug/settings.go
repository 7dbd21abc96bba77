package main

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings represents the viewer settings stored on disk
type SavedSettings struct {
	Arena      string `json:"arena"`
	Overlay    bool   `json:"overlay"`
	Fullscreen bool   `json:"fullscreen"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "box-brawl",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) *SavedSettings {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil
	}
	return &settings
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}
