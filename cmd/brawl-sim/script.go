package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sjmiguel8/box-brawl/shared/messages"
)

// Script is a scripted fight: a sequence of intent pairs, each held for a
// number of ticks.
type Script struct {
	Arena string       `json:"arena,omitempty"`
	Steps []ScriptStep `json:"steps"`
}

type ScriptStep struct {
	Ticks int                   `json:"ticks"`
	P1    messages.PlayerIntent `json:"p1"`
	P2    messages.PlayerIntent `json:"p2"`
}

// LoadScript reads a script from a JSON file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a JSON script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, step := range s.Steps {
		if step.Ticks < 0 {
			return nil, fmt.Errorf("parse script: step %d has negative ticks", i)
		}
	}
	return &s, nil
}

// Len returns the total number of ticks in the script.
func (s *Script) Len() uint64 {
	var n uint64
	for _, step := range s.Steps {
		n += uint64(step.Ticks)
	}
	return n
}

// Intents returns the intents for a 1-based iteration.
func (s *Script) Intents(iteration uint64) (messages.PlayerIntent, messages.PlayerIntent, bool) {
	if iteration == 0 {
		return messages.PlayerIntent{}, messages.PlayerIntent{}, false
	}
	remaining := iteration - 1
	for _, step := range s.Steps {
		if remaining < uint64(step.Ticks) {
			return step.P1, step.P2, true
		}
		remaining -= uint64(step.Ticks)
	}
	return messages.PlayerIntent{}, messages.PlayerIntent{}, false
}

// DemoScript waits out the countdown, then has side 1 walk in and chain
// attacks while side 2 blocks and answers with a special.
func DemoScript(countdown int) *Script {
	attack := messages.PlayerIntent{Attack: true}
	return &Script{
		Steps: []ScriptStep{
			{Ticks: countdown},
			{Ticks: 35, P1: messages.PlayerIntent{Right: true}, P2: messages.PlayerIntent{Left: true}},
			{Ticks: 1, P1: attack},
			{Ticks: 15, P2: messages.PlayerIntent{Block: true}},
			{Ticks: 1, P1: attack, P2: messages.PlayerIntent{Block: true}},
			{Ticks: 15},
			{Ticks: 1, P1: attack},
			{Ticks: 60},
			{Ticks: 1, P2: messages.PlayerIntent{Special: true}},
			{Ticks: 30},
			{Ticks: 600, P1: attack, P2: messages.PlayerIntent{Left: true}},
		},
	}
}
