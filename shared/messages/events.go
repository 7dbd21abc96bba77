package messages

import (
	"image/color"

	"github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
)

// EffectKind identifies an effect request without a type switch.
type EffectKind int

const (
	KindHit EffectKind = iota
	KindBlock
	KindCombo
	KindSpecialFired
	KindSpecialHit
	KindSpecialBlocked
	KindCameraShake
	KindParticleBurst
)

var effectKindNames = map[EffectKind]string{
	KindHit:            "hit",
	KindBlock:          "block",
	KindCombo:          "combo",
	KindSpecialFired:   "special",
	KindSpecialHit:     "specialHit",
	KindSpecialBlocked: "specialBlocked",
	KindCameraShake:    "cameraShake",
	KindParticleBurst:  "particles",
}

func (k EffectKind) String() string {
	if name, ok := effectKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Effect is a cosmetic, audio or camera request produced by a tick. The
// renderer consumes each one once.
type Effect interface {
	Kind() EffectKind
}

// HitEvent is emitted when a basic attack connects unblocked.
type HitEvent struct {
	AttackerSide config.Side
	ComboCount   int
}

// BlockEvent is emitted when a basic attack is blocked.
type BlockEvent struct {
	DefenderSide config.Side
}

// ComboEvent is emitted when an attack continues a combo.
type ComboEvent struct {
	Side  config.Side
	Count int
}

// SpecialFiredEvent is emitted when a special attack starts.
type SpecialFiredEvent struct {
	Side    config.Side
	Variant config.SpecialVariant
}

// SpecialHitEvent is emitted when a special attack connects unblocked.
type SpecialHitEvent struct {
	AttackerSide config.Side
	DefenderSide config.Side
}

// SpecialBlockedEvent is emitted when a special attack is blocked. Side is
// the defender.
type SpecialBlockedEvent struct {
	Side config.Side
}

// CameraShakeEvent requests a camera shake. Intensity is in arena units and
// Duration in ticks.
type CameraShakeEvent struct {
	Intensity float64
	Duration  int
}

// ParticleKind names what a particle burst is for.
type ParticleKind int

const (
	ParticlesJump ParticleKind = iota
	ParticlesDash
	ParticlesHit
	ParticlesBlock
	ParticlesSpecialCast
	ParticlesSpecialHit
)

// ParticleBurstEvent requests a burst of particles at a position.
type ParticleBurstEvent struct {
	Particles ParticleKind
	Position  gamemath.Vec3
	Color     color.RGBA
	Count     int
	Size      float64
}

func (HitEvent) Kind() EffectKind            { return KindHit }
func (BlockEvent) Kind() EffectKind          { return KindBlock }
func (ComboEvent) Kind() EffectKind          { return KindCombo }
func (SpecialFiredEvent) Kind() EffectKind   { return KindSpecialFired }
func (SpecialHitEvent) Kind() EffectKind     { return KindSpecialHit }
func (SpecialBlockedEvent) Kind() EffectKind { return KindSpecialBlocked }
func (CameraShakeEvent) Kind() EffectKind    { return KindCameraShake }
func (ParticleBurstEvent) Kind() EffectKind  { return KindParticleBurst }

// DamageNotice reports damage dealt to a side during a tick.
type DamageNotice struct {
	Side    config.Side // side that took the damage
	Damage  float64
	Special bool
}
