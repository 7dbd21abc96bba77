package systems

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdatePhysics applies movement intent, dash and jump impulses and gravity,
// then integrates position and applies friction. Collisions are resolved
// afterwards by UpdateCollisions.
func UpdatePhysics(w donburi.World) {
	now := CurrentTick(w)

	for _, e := range Combatants(w) {
		combatant := components.Combatant.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		resources := components.Resources.Get(e)
		timers := components.Timers.Get(e)
		intent := components.Intent.Get(e).Current

		locked := state.Is(cfg.Hitstun)

		inputX := 0.0
		if !locked {
			inputX = gamemath.HorizontalInput(intent.Left, intent.Right, cfg.Movement.MoveSpeed)

			if intent.Dash && canDash(state, resources, timers) {
				startDash(w, e, now)
			}
		}

		// Dash momentum and knockback both carry through friction.
		if !locked && !state.Is(cfg.Dashing) {
			physics.Velocity.X = inputX
		}
		physics.Velocity.Y -= cfg.Movement.Gravity

		if intent.Jump && !locked && physics.Grounded && resources.Stamina >= cfg.Movement.JumpStaminaCost {
			emitParticles(w, factory.JumpBurst(physics.Position))
			physics.Velocity.Y = cfg.Movement.JumpForce
			physics.Grounded = false
			resources.Stamina -= cfg.Movement.JumpStaminaCost
		}

		physics.Position = physics.Position.Add(physics.Velocity)
		physics.Velocity.X = gamemath.ApplyFriction(physics.Velocity.X, cfg.Movement.Friction)

		if inputX > 0 {
			combatant.FacingRight = true
		} else if inputX < 0 {
			combatant.FacingRight = false
		}
	}
}

func canDash(state *components.StateData, resources *components.ResourcesData, timers *components.TimersData) bool {
	return state.Is(cfg.Idle) &&
		resources.Stamina >= cfg.Movement.DashStaminaCost &&
		timers.DashCooldown <= 0
}

func startDash(w donburi.World, e *donburi.Entry, now uint64) {
	combatant := components.Combatant.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)

	state.Transition(cfg.Dashing)
	components.Timers.Get(e).DashCooldown = cfg.Timing.DashCooldown
	components.Resources.Get(e).Stamina -= cfg.Movement.DashStaminaCost

	dir := gamemath.FacingSign(combatant.FacingRight)
	physics.Velocity.X += dir * cfg.Movement.DashForce
	components.Pending.Get(e).Schedule(now, cfg.Timing.DashDuration, components.PendingDashEnd)

	emitParticles(w, factory.DashBurst(physics.Position, dir))
}
