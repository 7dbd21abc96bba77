package gamemath

// ApplyFriction scales speed by a multiplicative friction factor.
func ApplyFriction(speed, factor float64) float64 {
	return speed * factor
}

// ClampFloat clamps v to [lo, hi]. NaN clamps to lo.
func ClampFloat(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DecrementTimer counts an integer frame timer down by one, never below zero.
func DecrementTimer(t int) int {
	if t > 0 {
		return t - 1
	}
	return 0
}

// FacingSign returns 1 when facing right and -1 otherwise.
func FacingSign(facingRight bool) float64 {
	if facingRight {
		return 1
	}
	return -1
}

// HorizontalInput returns the net horizontal velocity for held left/right
// input. Both held cancel out.
func HorizontalInput(left, right bool, speed float64) float64 {
	v := 0.0
	if left {
		v -= speed
	}
	if right {
		v += speed
	}
	return v
}
