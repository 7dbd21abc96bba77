package components

import (
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/yohamta/donburi"
)

// SideScore tracks one side's round statistics
type SideScore struct {
	Hits        int
	SpecialHits int
	DamageDealt float64
}

// MatchData stores the current round state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State          cfg.MatchStateID
	Timer          int // countdown ticks remaining
	CountdownValue int // current countdown number (3, 2, 1), -1 once playing
	Ticks          int // ticks played this round
	Winner         cfg.Side
	Scores         [2]SideScore
}

var Match = donburi.NewComponentType[MatchData]()

// Score returns the score for a side.
func (m *MatchData) Score(side cfg.Side) *SideScore {
	return &m.Scores[side.Index()]
}

// GetLeader returns the side that dealt more damage, SideNone on a tie.
func (m *MatchData) GetLeader() cfg.Side {
	d1, d2 := m.Scores[0].DamageDealt, m.Scores[1].DamageDealt
	switch {
	case d1 > d2:
		return cfg.Side1
	case d2 > d1:
		return cfg.Side2
	}
	return cfg.SideNone
}
