package systems

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/sjmiguel8/box-brawl/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateActions evaluates attack, special and block intent. Attacks and
// specials may cancel a dash; nothing can be started from hitstun or while
// another attack or special runs.
func UpdateActions(w donburi.World) {
	now := CurrentTick(w)

	for _, e := range Combatants(w) {
		state := components.State.Get(e)
		intent := components.Intent.Get(e).Current
		locked := state.Is(cfg.Hitstun)

		if intent.Attack && canAttack(e) {
			startAttack(w, e, now)
		}
		if intent.Special && canSpecial(e) {
			startSpecial(w, e, now)
		}

		state.Blocking = intent.Block && !locked
	}
}

func canStartFrom(state *components.StateData) bool {
	return state.Is(cfg.Idle) || state.Is(cfg.Dashing)
}

func canAttack(e *donburi.Entry) bool {
	return canStartFrom(components.State.Get(e)) &&
		components.Timers.Get(e).AttackCooldown <= 0 &&
		components.Resources.Get(e).Stamina >= cfg.Resources.AttackStaminaCost
}

func canSpecial(e *donburi.Entry) bool {
	return canStartFrom(components.State.Get(e)) &&
		components.Resources.Get(e).Special >= cfg.Resources.SpecialCost
}

func startAttack(w donburi.World, e *donburi.Entry, now uint64) {
	side := components.Combatant.Get(e).Side
	resources := components.Resources.Get(e)
	timers := components.Timers.Get(e)
	combo := components.Combo.Get(e)
	pending := components.Pending.Get(e)

	resources.Stamina -= cfg.Resources.AttackStaminaCost
	timers.AttackCooldown = cfg.Timing.AttackCooldown

	if timers.ComboTimer > 0 {
		combo.Counter++
		resources.Special = gamemath.ClampFloat(resources.Special+cfg.Combo.MeterBonus, 0, cfg.Resources.MaxSpecial)
		EmitEffect(w, messages.ComboEvent{Side: side, Count: combo.Counter})
	} else {
		combo.Counter = 1
	}
	timers.ComboTimer = cfg.Combo.Window

	components.State.Get(e).Transition(cfg.Attacking)
	pending.Schedule(now, cfg.Timing.AttackHitDelay, components.PendingBasicHit)
	pending.Schedule(now, cfg.Timing.AttackDuration, components.PendingAttackEnd)
}

func startSpecial(w donburi.World, e *donburi.Entry, now uint64) {
	side := components.Combatant.Get(e).Side
	position := components.Physics.Get(e).Position
	state := components.State.Get(e)
	pending := components.Pending.Get(e)

	components.Resources.Get(e).Special -= cfg.Resources.SpecialCost

	variant := SelectSpecialVariant(components.Combo.Get(e))
	state.Transition(cfg.SpecialAttacking)
	state.Variant = variant

	EmitEffect(w, messages.SpecialFiredEvent{Side: side, Variant: variant})
	TriggerScreenShake(w, cfg.ScreenShake.Cast[variant])
	emitParticles(w, factory.SpecialCastBurst(position, variant))

	pending.Schedule(now, cfg.Timing.SpecialHitDelay, components.PendingSpecialHit)
	pending.Schedule(now, cfg.Timing.SpecialDuration, components.PendingSpecialEnd)
}
