package components

import (
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/yohamta/donburi"
)

// StateData is a combatant's exclusive action state. Blocking is tracked
// separately because it is held, not entered.
type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int // ticks spent in CurrentState
	Blocking      bool
	Variant       cfg.SpecialVariant // variant of the special in progress
}

var State = donburi.NewComponentType[StateData]()

// Transition moves to a new action state and restarts the state timer.
func (s *StateData) Transition(to cfg.StateID) {
	s.PreviousState = s.CurrentState
	s.CurrentState = to
	s.StateTimer = 0
}

// Is reports whether the current action state is id.
func (s *StateData) Is(id cfg.StateID) bool {
	return s.CurrentState == id
}

// Display returns the state a renderer should show. Hitstun and actions take
// priority over a held block.
func (s *StateData) Display() cfg.StateID {
	if s.CurrentState == cfg.Idle && s.Blocking {
		return cfg.Blocking
	}
	return s.CurrentState
}
