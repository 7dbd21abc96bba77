package components

import (
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/yohamta/donburi"
)

// HitOutcome is the resolved result of one connecting hit. It is applied to
// both combatants only after every due event of the tick has been resolved.
type HitOutcome struct {
	Attacker cfg.Side
	Target   cfg.Side
	Special  bool
	Blocked  bool
	Combo    int

	Damage  float64
	Hitstun int

	KnockbackX float64 // replaces the target's horizontal velocity when unblocked
	LiftY      float64 // replaces the target's vertical velocity when > 0

	AttackerMeter float64
	TargetMeter   float64
}

// HitQueueData collects the tick's outcomes.
type HitQueueData struct {
	Outcomes []HitOutcome
}

var HitQueue = donburi.NewComponentType[HitQueueData]()
