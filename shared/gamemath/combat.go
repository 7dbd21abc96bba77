package gamemath

import "math"

// ComboScale returns 1 + (combo-1)*step. Counts below 1 are treated as 1.
func ComboScale(combo int, step float64) float64 {
	if combo < 1 {
		combo = 1
	}
	return 1 + float64(combo-1)*step
}

// BasicDamage returns the damage of a basic attack at the given combo count.
func BasicDamage(base float64, combo int, step float64) float64 {
	return base * ComboScale(combo, step)
}

// BlockedDamage returns the damage that gets through a block.
func BlockedDamage(damage, reduction float64) float64 {
	return damage * reduction
}

// Knockback returns the horizontal knockback impulse in the attacker's
// facing direction.
func Knockback(facingRight bool, force, scale float64) float64 {
	return FacingSign(facingRight) * force * scale
}

// InRange reports whether the defender is within the rectangular reach of an
// attacker. With requireFacing the defender must also be on the side the
// attacker faces.
func InRange(attacker, defender Vec3, facingRight bool, rangeX, rangeY float64, requireFacing bool) bool {
	dx := defender.X - attacker.X
	dy := defender.Y - attacker.Y
	if math.Abs(dx) >= rangeX || math.Abs(dy) >= rangeY {
		return false
	}
	if !requireFacing {
		return true
	}
	if facingRight {
		return dx > 0
	}
	return dx < 0
}
