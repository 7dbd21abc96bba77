// Package sim is the deterministic per-tick combat simulation for two
// combatants. It owns a donburi world; callers feed one intent per side each
// tick and read back a snapshot, the tick's effect requests and damage
// notices.
package sim

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/leveldata"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/sjmiguel8/box-brawl/systems"
	"github.com/sjmiguel8/box-brawl/systems/factory"
	"github.com/yohamta/donburi"
)

// DamageSink is notified of every hit that deals damage, after the tick
// has applied it.
type DamageSink interface {
	OnDamage(side cfg.Side, damage float64, special bool)
}

// DamageSinkFunc adapts a function to a DamageSink.
type DamageSinkFunc func(side cfg.Side, damage float64, special bool)

func (f DamageSinkFunc) OnDamage(side cfg.Side, damage float64, special bool) {
	f(side, damage, special)
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithDamageSink registers a sink for damage notifications.
func WithDamageSink(sink DamageSink) Option {
	return func(s *Simulation) {
		s.sink = sink
	}
}

// Simulation is the combat context for one round on one arena.
type Simulation struct {
	world      donburi.World
	arena      *leveldata.Arena
	clock      *donburi.Entry
	combatants [2]*donburi.Entry
	sink       DamageSink
}

// StepResult is everything a tick produced.
type StepResult struct {
	Tick    uint64
	State   Snapshot
	Effects []messages.Effect
	Damage  []messages.DamageNotice
}

// New creates a simulation on arena with both combatants at their spawn
// points. A nil arena is a flat arena without platforms.
func New(arena *leveldata.Arena, opts ...Option) *Simulation {
	if arena == nil {
		arena = leveldata.FlatArena()
	}

	s := &Simulation{
		world: donburi.NewWorld(),
		arena: arena,
	}
	for _, opt := range opts {
		opt(s)
	}

	factory.CreateArena(s.world, arena)
	s.clock = factory.CreateClock(s.world)
	factory.CreateEffectBus(s.world)
	factory.CreateCamera(s.world)
	factory.CreateHitQueue(s.world)
	s.combatants[0] = factory.CreateCombatant(s.world, cfg.Side1)
	s.combatants[1] = factory.CreateCombatant(s.world, cfg.Side2)

	return s
}

// SetDamageSink replaces the damage sink. nil disables notifications.
func (s *Simulation) SetDamageSink(sink DamageSink) {
	s.sink = sink
}

// Step advances the simulation by one tick. dt is recorded but all
// constants are per tick, so integration does not depend on it.
func (s *Simulation) Step(p1, p2 messages.PlayerIntent, dt float64) StepResult {
	clock := components.Clock.Get(s.clock)
	clock.Tick++
	clock.Delta = gamemath.ClampFloat(gamemath.Sanitize(dt), 0, 1)

	components.Intent.Get(s.combatants[0]).Set(p1)
	components.Intent.Get(s.combatants[1]).Set(p2)

	systems.UpdateScreenShake(s.world)
	systems.UpdateTimers(s.world)
	systems.UpdateCombo(s.world)
	systems.UpdatePhysics(s.world)
	systems.UpdateCollisions(s.world)
	systems.UpdateActions(s.world)
	systems.UpdatePending(s.world)
	notices := systems.ApplyHitOutcomes(s.world)
	systems.UpdateResources(s.world)
	systems.SanitizeCombatants(s.world)

	if s.sink != nil {
		for _, n := range notices {
			s.sink.OnDamage(n.Side, n.Damage, n.Special)
		}
	}

	return StepResult{
		Tick:    clock.Tick,
		State:   s.Snapshot(),
		Effects: systems.DrainEffects(s.world),
		Damage:  notices,
	}
}

// Reset restores both combatants to their spawn state and clears the clock,
// queued effects and any camera shake. The arena is kept.
func (s *Simulation) Reset() {
	factory.ResetCombatant(s.world, s.combatants[0], cfg.Side1)
	factory.ResetCombatant(s.world, s.combatants[1], cfg.Side2)

	components.Clock.SetValue(s.clock, components.ClockData{})
	systems.DrainEffects(s.world)
	if queueEntry, ok := components.HitQueue.First(s.world); ok {
		components.HitQueue.SetValue(queueEntry, components.HitQueueData{})
	}
	if cameraEntry, ok := components.ScreenShake.First(s.world); ok {
		components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{})
	}
}

// Tick returns the number of the last completed tick.
func (s *Simulation) Tick() uint64 {
	return components.Clock.Get(s.clock).Tick
}

// Arena returns the round's geometry.
func (s *Simulation) Arena() *leveldata.Arena {
	return s.arena
}

// World exposes the underlying donburi world for collaborators that keep
// their own singletons next to the combatants, such as the match.
func (s *Simulation) World() donburi.World {
	return s.world
}

// Combatant returns a snapshot of one side.
func (s *Simulation) Combatant(side cfg.Side) CombatantState {
	return snapshotOf(s.combatants[side.Index()])
}
