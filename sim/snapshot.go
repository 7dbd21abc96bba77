package sim

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/systems"
	"github.com/yohamta/donburi"
)

// CombatantState is a read-only copy of one combatant.
type CombatantState struct {
	Side        cfg.Side
	Position    gamemath.Vec3
	Velocity    gamemath.Vec3
	FacingRight bool

	State            cfg.StateID // what a renderer should show
	Action           cfg.StateID // exclusive action state
	Attacking        bool
	Blocking         bool
	Dashing          bool
	SpecialAttacking bool
	Grounded         bool
	Invincible       bool
	Platform         int // -1 when not on a platform
	Special          cfg.SpecialVariant

	AttackCooldown int
	DashCooldown   int
	ComboTimer     int
	Hitstun        int
	LastMoveTime   int

	Health       float64
	Stamina      float64
	SpecialMeter float64

	ComboCounter   int
	AttackSequence []cfg.MoveToken
}

// Snapshot is the state of the whole simulation after a tick.
type Snapshot struct {
	Tick       uint64
	Combatants [2]CombatantState
	Shake      float64 // current camera shake intensity
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick: s.Tick(),
		Combatants: [2]CombatantState{
			snapshotOf(s.combatants[0]),
			snapshotOf(s.combatants[1]),
		},
		Shake: systems.CurrentShake(s.world),
	}
}

// Side returns the state of one side.
func (s Snapshot) Side(side cfg.Side) CombatantState {
	return s.Combatants[side.Index()]
}

func snapshotOf(e *donburi.Entry) CombatantState {
	combatant := components.Combatant.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	timers := components.Timers.Get(e)
	resources := components.Resources.Get(e)
	combo := components.Combo.Get(e)

	sequence := make([]cfg.MoveToken, len(combo.Sequence))
	copy(sequence, combo.Sequence)

	return CombatantState{
		Side:        combatant.Side,
		Position:    physics.Position,
		Velocity:    physics.Velocity,
		FacingRight: combatant.FacingRight,

		State:            state.Display(),
		Action:           state.CurrentState,
		Attacking:        state.Is(cfg.Attacking),
		Blocking:         state.Blocking,
		Dashing:          state.Is(cfg.Dashing),
		SpecialAttacking: state.Is(cfg.SpecialAttacking),
		Grounded:         physics.Grounded,
		Invincible:       combatant.Invincible,
		Platform:         physics.Platform,
		Special:          state.Variant,

		AttackCooldown: timers.AttackCooldown,
		DashCooldown:   timers.DashCooldown,
		ComboTimer:     timers.ComboTimer,
		Hitstun:        timers.Hitstun,
		LastMoveTime:   timers.LastMoveTime,

		Health:       resources.Health,
		Stamina:      resources.Stamina,
		SpecialMeter: resources.Special,

		ComboCounter:   combo.Counter,
		AttackSequence: sequence,
	}
}
