package systems

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/yohamta/donburi"
)

// UpdatePending fires every deferred event that is due this tick. Hit events
// only resolve into the hit queue; no combatant is touched by an opponent
// until ApplyHitOutcomes runs, so simultaneous hits trade.
func UpdatePending(w donburi.World) {
	now := CurrentTick(w)

	queueEntry, ok := components.HitQueue.First(w)
	if !ok {
		return
	}
	queue := components.HitQueue.Get(queueEntry)

	for _, e := range Combatants(w) {
		state := components.State.Get(e)
		for _, ev := range components.Pending.Get(e).Due(now) {
			switch ev.Kind {
			case components.PendingBasicHit:
				// Interrupted attacks never land.
				if !state.Is(cfg.Attacking) {
					continue
				}
				if outcome, hit := resolveAgainstOpponent(w, e, false); hit {
					queue.Outcomes = append(queue.Outcomes, outcome)
				}
			case components.PendingSpecialHit:
				if !state.Is(cfg.SpecialAttacking) {
					continue
				}
				if outcome, hit := resolveAgainstOpponent(w, e, true); hit {
					queue.Outcomes = append(queue.Outcomes, outcome)
				}
			case components.PendingAttackEnd:
				endAction(state, cfg.Attacking)
			case components.PendingSpecialEnd:
				endAction(state, cfg.SpecialAttacking)
			case components.PendingDashEnd:
				endAction(state, cfg.Dashing)
			}
		}
	}
}

func endAction(state *components.StateData, action cfg.StateID) {
	if state.Is(action) {
		state.Transition(cfg.Idle)
	}
}

func resolveAgainstOpponent(w donburi.World, attacker *donburi.Entry, special bool) (components.HitOutcome, bool) {
	side := components.Combatant.Get(attacker).Side
	defender := CombatantBySide(w, side.Opponent())
	if defender == nil {
		return components.HitOutcome{}, false
	}
	return ComputeHit(FighterOf(attacker), FighterOf(defender), special)
}
