package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicDamage(t *testing.T) {
	tests := []struct {
		name  string
		combo int
		want  float64
	}{
		{"first hit", 1, 8},
		{"second hit", 2, 9.6},
		{"third hit", 3, 11.2},
		{"zero combo treated as first", 0, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BasicDamage(8, tt.combo, 0.2), 1e-9)
		})
	}
}

func TestThirdComboHitIsFortyPercentStronger(t *testing.T) {
	assert.InDelta(t, 8*1.4, BasicDamage(8, 3, 0.2), 1e-9)
}

func TestBlockedDamageIsSeventyPercent(t *testing.T) {
	for combo := 1; combo <= 6; combo++ {
		full := BasicDamage(8, combo, 0.2)
		assert.InDelta(t, 0.7*full, BlockedDamage(full, 0.7), 1e-12, "combo %d", combo)
	}
	assert.InDelta(t, 5.6, BlockedDamage(8, 0.7), 1e-12)
}

func TestKnockbackFollowsFacing(t *testing.T) {
	assert.Greater(t, Knockback(true, 0.2, ComboScale(3, 0.1)), 0.0)
	assert.Less(t, Knockback(false, 0.2, 1), 0.0)
	assert.InDelta(t, 0.24, Knockback(true, 0.2, ComboScale(3, 0.1)), 1e-9)
	assert.InDelta(t, -0.4, Knockback(false, 0.2, 2), 1e-9)
}

func TestInRange(t *testing.T) {
	origin := Vec3{X: 0, Y: 1}

	assert.True(t, InRange(origin, Vec3{X: 1.5, Y: 1}, true, 1.8, 1.5, true))
	assert.False(t, InRange(origin, Vec3{X: 1.5, Y: 1}, false, 1.8, 1.5, true), "facing away")
	assert.True(t, InRange(origin, Vec3{X: 1.5, Y: 1}, false, 1.8, 1.5, false), "no facing requirement")
	assert.False(t, InRange(origin, Vec3{X: 1.8, Y: 1}, true, 1.8, 1.5, true), "edge is exclusive")
	assert.False(t, InRange(origin, Vec3{X: 1, Y: 2.6}, true, 1.8, 1.5, true), "too high")
	assert.True(t, InRange(origin, Vec3{X: -3.4, Y: 2.9}, true, 3.5, 2, false))
	assert.False(t, InRange(origin, origin, true, 1.8, 1.5, true), "overlapping is neither side")
}

func TestSanitize(t *testing.T) {
	v := Vec3{X: math.NaN(), Y: math.Inf(1), Z: 2}
	assert.False(t, v.Finite())
	assert.Equal(t, Vec3{Z: 2}, v.Sanitized())
	assert.Equal(t, 0.0, Sanitize(math.Inf(-1)))
	assert.Equal(t, 3.5, Sanitize(3.5))
}

func TestClampFloat(t *testing.T) {
	assert.Equal(t, 0.0, ClampFloat(-4, 0, 100))
	assert.Equal(t, 100.0, ClampFloat(140, 0, 100))
	assert.Equal(t, 42.0, ClampFloat(42, 0, 100))
	assert.Equal(t, 0.0, ClampFloat(math.NaN(), 0, 100))
}

func TestHorizontalInput(t *testing.T) {
	assert.Equal(t, -0.12, HorizontalInput(true, false, 0.12))
	assert.Equal(t, 0.12, HorizontalInput(false, true, 0.12))
	assert.Equal(t, 0.0, HorizontalInput(true, true, 0.12))
	assert.Equal(t, 0.0, HorizontalInput(false, false, 0.12))
}

func TestDecrementTimer(t *testing.T) {
	assert.Equal(t, 4, DecrementTimer(5))
	assert.Equal(t, 0, DecrementTimer(0))
	assert.Equal(t, 0, DecrementTimer(-3))
}
