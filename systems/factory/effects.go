package factory

import (
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/messages"
)

// NewParticleBurst builds a particle burst request from a configured style.
func NewParticleBurst(kind messages.ParticleKind, pos gamemath.Vec3, style cfg.ParticleStyle) messages.ParticleBurstEvent {
	return messages.ParticleBurstEvent{
		Particles: kind,
		Position:  pos,
		Color:     style.Color,
		Count:     style.Count,
		Size:      style.Size,
	}
}

// JumpBurst is dust under the combatant's feet.
func JumpBurst(pos gamemath.Vec3) messages.ParticleBurstEvent {
	pos.Y += cfg.Particles.JumpOffsetY
	return NewParticleBurst(messages.ParticlesJump, pos, cfg.Particles.Jump)
}

// DashBurst trails behind the combatant. dir is the dash direction.
func DashBurst(pos gamemath.Vec3, dir float64) messages.ParticleBurstEvent {
	pos.X -= dir * cfg.Particles.DashOffsetX
	return NewParticleBurst(messages.ParticlesDash, pos, cfg.Particles.Dash)
}

// HitBurst is spawned at the defender's chest.
func HitBurst(pos gamemath.Vec3) messages.ParticleBurstEvent {
	pos.Y += cfg.Particles.ImpactOffsetY
	return NewParticleBurst(messages.ParticlesHit, pos, cfg.Particles.Hit)
}

func BlockBurst(pos gamemath.Vec3) messages.ParticleBurstEvent {
	pos.Y += cfg.Particles.ImpactOffsetY
	return NewParticleBurst(messages.ParticlesBlock, pos, cfg.Particles.Block)
}

// SpecialCastBurst uses the variant's colour around the caster.
func SpecialCastBurst(pos gamemath.Vec3, variant cfg.SpecialVariant) messages.ParticleBurstEvent {
	pos.Y += cfg.Particles.ImpactOffsetY
	style, ok := cfg.Particles.Cast[variant]
	if !ok {
		style = cfg.Particles.Cast[cfg.EnergyBlast]
	}
	return NewParticleBurst(messages.ParticlesSpecialCast, pos, style)
}

func SpecialHitBurst(pos gamemath.Vec3) messages.ParticleBurstEvent {
	return NewParticleBurst(messages.ParticlesSpecialHit, pos, cfg.Particles.SpecialHit)
}
