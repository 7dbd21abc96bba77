package systems

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/sjmiguel8/box-brawl/systems/factory"
	"github.com/yohamta/donburi"
)

// Fighter is the read-only view of a combatant used by hit resolution.
type Fighter struct {
	Side        cfg.Side
	Position    gamemath.Vec3
	FacingRight bool
	Blocking    bool
	Invincible  bool
	Combo       int
}

// FighterOf snapshots a combatant entry.
func FighterOf(e *donburi.Entry) Fighter {
	combatant := components.Combatant.Get(e)
	return Fighter{
		Side:        combatant.Side,
		Position:    components.Physics.Get(e).Position,
		FacingRight: combatant.FacingRight,
		Blocking:    components.State.Get(e).Blocking,
		Invincible:  combatant.Invincible,
		Combo:       components.Combo.Get(e).Counter,
	}
}

// ComputeHit resolves one attack against a defender. It reports false when
// the defender is out of reach or invincible.
func ComputeHit(attacker, defender Fighter, special bool) (components.HitOutcome, bool) {
	if defender.Invincible {
		return components.HitOutcome{}, false
	}

	var damage float64
	if special {
		if !gamemath.InRange(attacker.Position, defender.Position, attacker.FacingRight,
			cfg.Combat.SpecialRangeX, cfg.Combat.SpecialRangeY, false) {
			return components.HitOutcome{}, false
		}
		damage = cfg.Combat.SpecialDamage
	} else {
		if !gamemath.InRange(attacker.Position, defender.Position, attacker.FacingRight,
			cfg.Combat.AttackRangeX, cfg.Combat.AttackRangeY, true) {
			return components.HitOutcome{}, false
		}
		damage = gamemath.BasicDamage(cfg.Combat.AttackDamage, attacker.Combo, cfg.Combat.ComboDamageStep)
	}

	outcome := components.HitOutcome{
		Attacker: attacker.Side,
		Target:   defender.Side,
		Special:  special,
		Combo:    attacker.Combo,
	}

	if defender.Blocking {
		outcome.Blocked = true
		outcome.Damage = gamemath.BlockedDamage(damage, cfg.Combat.BlockDamageReduction)
		outcome.TargetMeter = outcome.Damage / cfg.Combat.BlockerMeterDivisor
		return outcome, true
	}

	outcome.Damage = damage
	outcome.AttackerMeter = damage / cfg.Combat.AttackerMeterDivisor
	if special {
		outcome.Hitstun = cfg.Combat.SpecialHitstun
		outcome.KnockbackX = gamemath.Knockback(attacker.FacingRight, cfg.Combat.KnockbackForce, cfg.Combat.SpecialKnockbackMult)
		outcome.LiftY = cfg.Combat.SpecialLift
	} else {
		outcome.Hitstun = cfg.Combat.AttackHitstun
		outcome.KnockbackX = gamemath.Knockback(attacker.FacingRight, cfg.Combat.KnockbackForce,
			gamemath.ComboScale(attacker.Combo, cfg.Combat.ComboKnockbackStep))
		if attacker.Combo > cfg.Combat.ComboLiftThreshold {
			outcome.LiftY = cfg.Combat.ComboLift
		}
	}
	return outcome, true
}

// ApplyHitOutcomes applies the tick's queued hit outcomes in order, emits
// their effects and returns a damage notice per outcome.
func ApplyHitOutcomes(w donburi.World) []messages.DamageNotice {
	queueEntry, ok := components.HitQueue.First(w)
	if !ok {
		return nil
	}
	queue := components.HitQueue.Get(queueEntry)
	if len(queue.Outcomes) == 0 {
		return nil
	}

	notices := make([]messages.DamageNotice, 0, len(queue.Outcomes))
	for _, outcome := range queue.Outcomes {
		attacker := CombatantBySide(w, outcome.Attacker)
		target := CombatantBySide(w, outcome.Target)
		if attacker == nil || target == nil {
			continue
		}

		targetRes := components.Resources.Get(target)
		targetRes.Health = gamemath.ClampFloat(targetRes.Health-outcome.Damage, 0, cfg.Resources.MaxHealth)
		targetRes.Special = gamemath.ClampFloat(targetRes.Special+outcome.TargetMeter, 0, cfg.Resources.MaxSpecial)

		attackerRes := components.Resources.Get(attacker)
		attackerRes.Special = gamemath.ClampFloat(attackerRes.Special+outcome.AttackerMeter, 0, cfg.Resources.MaxSpecial)

		if !outcome.Blocked {
			enterHitstun(target, outcome)
		}

		emitHitEffects(w, outcome, components.Physics.Get(target).Position)
		notices = append(notices, messages.DamageNotice{
			Side:    outcome.Target,
			Damage:  outcome.Damage,
			Special: outcome.Special,
		})
	}

	queue.Outcomes = queue.Outcomes[:0]
	return notices
}

// enterHitstun preempts whatever the target was doing. Its pending events
// are dropped so an interrupted attack cannot land later.
func enterHitstun(target *donburi.Entry, outcome components.HitOutcome) {
	state := components.State.Get(target)
	state.Transition(cfg.Hitstun)
	state.Blocking = false

	components.Timers.Get(target).Hitstun = outcome.Hitstun
	components.Pending.Get(target).Clear()

	physics := components.Physics.Get(target)
	physics.Velocity.X = outcome.KnockbackX
	if outcome.LiftY > 0 {
		physics.Velocity.Y = outcome.LiftY
	}
}

func emitHitEffects(w donburi.World, outcome components.HitOutcome, targetPos gamemath.Vec3) {
	switch {
	case outcome.Special && outcome.Blocked:
		EmitEffect(w, messages.SpecialBlockedEvent{Side: outcome.Target})
	case outcome.Special:
		emitParticles(w, factory.SpecialHitBurst(targetPos))
		TriggerScreenShake(w, cfg.ShakeRequest{
			Intensity: cfg.ScreenShake.SpecialHitIntensity,
			Duration:  cfg.ScreenShake.SpecialHitDuration,
		})
		EmitEffect(w, messages.SpecialHitEvent{AttackerSide: outcome.Attacker, DefenderSide: outcome.Target})
	case outcome.Blocked:
		emitParticles(w, factory.BlockBurst(targetPos))
		EmitEffect(w, messages.BlockEvent{DefenderSide: outcome.Target})
	default:
		emitParticles(w, factory.HitBurst(targetPos))
		EmitEffect(w, messages.HitEvent{AttackerSide: outcome.Attacker, ComboCount: outcome.Combo})
		TriggerScreenShake(w, cfg.ShakeRequest{
			Intensity: cfg.ScreenShake.HitIntensity,
			Duration:  cfg.ScreenShake.HitDuration,
		})
	}
}
