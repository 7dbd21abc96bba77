package systems

import (
	"log"

	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/yohamta/donburi"
)

// UpdateMatch handles match state transitions and timers.
func UpdateMatch(w donburi.World) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	switch match.State {
	case cfg.MatchStateWaiting:
		// Waits for StartMatch
		return

	case cfg.MatchStateCountdown:
		updateCountdown(match)

	case cfg.MatchStatePlaying:
		match.Ticks++

	case cfg.MatchStateFinished:
		return
	}
}

func updateCountdown(match *components.MatchData) {
	if match.Timer > 0 {
		match.Timer--
	}
	if match.Timer > 0 {
		// Calculate countdown value (3, 2, 1)
		framesPerCount := cfg.Match.CountdownTicks / 3
		if framesPerCount <= 0 {
			framesPerCount = 1
		}
		match.CountdownValue = (match.Timer + framesPerCount - 1) / framesPerCount
		return
	}

	// Countdown finished - start playing
	match.State = cfg.MatchStatePlaying
	match.CountdownValue = -1
	log.Printf("[match] Fight!")
}

// StartMatch transitions from waiting to countdown. A zero countdown starts
// the round immediately.
func StartMatch(w donburi.World) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	if match.State != cfg.MatchStateWaiting {
		return
	}

	if cfg.Match.CountdownTicks <= 0 {
		match.State = cfg.MatchStatePlaying
		match.CountdownValue = -1
		log.Printf("[match] Fight!")
		return
	}
	match.State = cfg.MatchStateCountdown
	match.Timer = cfg.Match.CountdownTicks
	match.CountdownValue = 3
	log.Printf("[match] Countdown started (%d ticks)", match.Timer)
}

// ResetMatch returns the match to the waiting state with empty scores.
func ResetMatch(w donburi.World) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	components.Match.SetValue(matchEntry, components.MatchData{
		State:          cfg.MatchStateWaiting,
		CountdownValue: -1,
		Winner:         cfg.SideNone,
	})
}

// CheckKnockout finishes the match once a combatant has no health left. The
// winner is the side still standing, SideNone on a double knockout.
func CheckKnockout(w donburi.World) bool {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return false
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStatePlaying {
		return false
	}

	var down []cfg.Side
	for _, e := range Combatants(w) {
		if components.Resources.Get(e).Health <= 0 {
			down = append(down, components.Combatant.Get(e).Side)
		}
	}

	switch len(down) {
	case 0:
		return false
	case 1:
		match.Winner = down[0].Opponent()
	default:
		match.Winner = cfg.SideNone
	}
	match.State = cfg.MatchStateFinished
	log.Printf("[match] Knockout after %d ticks, winner: %s", match.Ticks, match.Winner)
	return true
}

// RecordDamage credits damage taken by side to its opponent's score.
func RecordDamage(w donburi.World, side cfg.Side, damage float64, special bool) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	score := match.Score(side.Opponent())
	score.Hits++
	score.DamageDealt += damage
	if special {
		score.SpecialHits++
	}
}

// IsMatchPlaying returns true if the match is in the playing state
func IsMatchPlaying(w donburi.World) bool {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return true // No match component = always playing
	}
	match := components.Match.Get(matchEntry)
	return match.State == cfg.MatchStatePlaying
}

// IsMatchFinished returns true if the match has ended
func IsMatchFinished(w donburi.World) bool {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).State == cfg.MatchStateFinished
}
