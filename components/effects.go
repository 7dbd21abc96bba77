package components

import (
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectBusData is the outbound queue of effect requests for the current
// tick. It is drained once per tick.
type EffectBusData struct {
	Queue []messages.Effect
}

var EffectBus = donburi.NewComponentType[EffectBusData]()

// ScreenShakeData tracks the active camera shake
type ScreenShakeData struct {
	Intensity float64 // requested peak offset in arena units
	Duration  int     // ticks remaining
	Elapsed   int     // ticks elapsed
	Current   float64 // decayed intensity for this tick
	Envelope  *gween.Tween
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
