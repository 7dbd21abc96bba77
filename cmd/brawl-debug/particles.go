package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Particle lifetime in ticks
const particleLife = 30

const maxParticles = 512

type particle struct {
	pos   gamemath.Vec3
	vel   gamemath.Vec3
	color color.RGBA
	size  float64
	alpha float64
	fade  *gween.Tween
}

// particleSystem turns burst requests into short-lived cosmetic particles.
type particleSystem struct {
	rng       *rand.Rand
	particles []particle
}

func newParticleSystem(seed int64) *particleSystem {
	return &particleSystem{rng: rand.New(rand.NewSource(seed))}
}

// Spawn adds the particles of one burst.
func (ps *particleSystem) Spawn(burst messages.ParticleBurstEvent) {
	speed := 0.08
	if burst.Particles == messages.ParticlesJump {
		speed = 0.04
	}
	for i := 0; i < burst.Count && len(ps.particles) < maxParticles; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		v := speed * (0.5 + ps.rng.Float64())
		ps.particles = append(ps.particles, particle{
			pos:   burst.Position,
			vel:   gamemath.Vec3{X: math.Cos(angle) * v, Y: math.Sin(angle) * v},
			color: burst.Color,
			size:  burst.Size,
			alpha: 1,
			fade:  gween.New(1, 0, particleLife, ease.InQuad),
		})
	}
}

// Update advances every particle one tick and drops the faded ones.
func (ps *particleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		alpha, done := p.fade.Update(1)
		if done {
			continue
		}
		p.alpha = float64(alpha)
		p.pos = p.pos.Add(p.vel)
		p.vel.Y -= 0.003
		alive = append(alive, p)
	}
	ps.particles = alive
}

func (ps *particleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

func (ps *particleSystem) Len() int {
	return len(ps.particles)
}
