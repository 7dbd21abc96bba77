package systems

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EmitEffect appends an effect request to the bus.
func EmitEffect(w donburi.World, effect messages.Effect) {
	busEntry, ok := components.EffectBus.First(w)
	if !ok {
		return
	}
	bus := components.EffectBus.Get(busEntry)
	bus.Queue = append(bus.Queue, effect)
}

func emitParticles(w donburi.World, burst messages.ParticleBurstEvent) {
	EmitEffect(w, burst)
}

// DrainEffects returns the queued effects in emission order and empties the
// bus.
func DrainEffects(w donburi.World) []messages.Effect {
	busEntry, ok := components.EffectBus.First(w)
	if !ok {
		return nil
	}
	bus := components.EffectBus.Get(busEntry)
	if len(bus.Queue) == 0 {
		return nil
	}
	drained := bus.Queue
	bus.Queue = nil
	return drained
}

// TriggerScreenShake emits a camera shake request and starts a decaying
// shake on the camera. Only a stronger shake overrides an active one.
func TriggerScreenShake(w donburi.World, shake cfg.ShakeRequest) {
	EmitEffect(w, messages.CameraShakeEvent{Intensity: shake.Intensity, Duration: shake.Duration})

	cameraEntry, ok := components.ScreenShake.First(w)
	if !ok {
		return
	}
	active := components.ScreenShake.Get(cameraEntry)
	if active.Duration > 0 && shake.Intensity <= active.Intensity {
		return
	}
	if shake.Duration <= 0 {
		return
	}
	*active = components.ScreenShakeData{
		Intensity: shake.Intensity,
		Duration:  shake.Duration,
		Current:   shake.Intensity,
		Envelope:  gween.New(float32(shake.Intensity), 0, float32(shake.Duration), ease.OutQuad),
	}
}

// UpdateScreenShake advances the active shake by one tick.
func UpdateScreenShake(w donburi.World) {
	cameraEntry, ok := components.ScreenShake.First(w)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Duration <= 0 {
		return
	}

	shake.Elapsed++
	shake.Duration--
	if shake.Duration == 0 || shake.Envelope == nil {
		*shake = components.ScreenShakeData{}
		return
	}
	current, _ := shake.Envelope.Update(1)
	shake.Current = float64(current)
}

// CurrentShake returns the active shake intensity.
func CurrentShake(w donburi.World) float64 {
	cameraEntry, ok := components.ScreenShake.First(w)
	if !ok {
		return 0
	}
	return components.ScreenShake.Get(cameraEntry).Current
}
