// Package match runs a best-of-one round on top of the simulation: a
// countdown, the fight itself and a knockout that decides the winner.
package match

import (
	"log"

	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/sjmiguel8/box-brawl/sim"
	"github.com/sjmiguel8/box-brawl/systems"
	"github.com/sjmiguel8/box-brawl/systems/factory"
	"github.com/yohamta/donburi"
)

// Match owns a simulation and the match singleton living in its world.
type Match struct {
	sim   *sim.Simulation
	entry *donburi.Entry
}

// New creates a match in the waiting state and registers it as the
// simulation's damage sink.
func New(s *sim.Simulation) *Match {
	m := &Match{
		sim:   s,
		entry: factory.CreateMatch(s.World()),
	}
	s.SetDamageSink(m)
	return m
}

// Start begins the countdown.
func (m *Match) Start() {
	systems.StartMatch(m.sim.World())
}

// Update advances the round by one tick. The simulation only steps while the
// fight is on; ok reports whether it did.
func (m *Match) Update(p1, p2 messages.PlayerIntent, dt float64) (sim.StepResult, bool) {
	w := m.sim.World()
	wasPlaying := systems.IsMatchPlaying(w)
	systems.UpdateMatch(w)
	if !wasPlaying {
		return sim.StepResult{}, false
	}

	res := m.sim.Step(p1, p2, dt)
	systems.CheckKnockout(w)
	return res, true
}

// Restart resets both combatants and scores and starts a new countdown.
func (m *Match) Restart() {
	w := m.sim.World()
	m.sim.Reset()
	systems.ResetMatch(w)
	systems.StartMatch(w)
	log.Printf("[match] Restarted on %q", m.sim.Arena().Name)
}

// OnDamage credits the damage to the opponent of the side that took it.
func (m *Match) OnDamage(side cfg.Side, damage float64, special bool) {
	systems.RecordDamage(m.sim.World(), side, damage, special)
}

func (m *Match) data() *components.MatchData {
	return components.Match.Get(m.entry)
}

// State returns the round state.
func (m *Match) State() cfg.MatchStateID {
	return m.data().State
}

// Winner returns the winning side once the match is finished. A double
// knockout has no winner.
func (m *Match) Winner() cfg.Side {
	return m.data().Winner
}

// CountdownValue returns 3, 2 or 1 during the countdown and -1 otherwise.
func (m *Match) CountdownValue() int {
	return m.data().CountdownValue
}

// Scores returns a copy of both sides' scores.
func (m *Match) Scores() [2]components.SideScore {
	return m.data().Scores
}

// Ticks returns the number of ticks fought this round.
func (m *Match) Ticks() int {
	return m.data().Ticks
}

// Sim returns the underlying simulation.
func (m *Match) Sim() *sim.Simulation {
	return m.sim
}
