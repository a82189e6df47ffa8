package hyper

import "math"

// PolarVector is a point in the hyperbolic plane, expressed as a geodesic
// displacement of length R from the origin in direction A. The angle is kept
// normalized to [0, 2pi). R == 0 is the origin; its angle is fixed to 0 by
// convention and must be tested exactly, never approximately, because the
// composition formulas divide by sinh(R).
type PolarVector struct {
	R, A float64
}

// Origin is the zero-length vector, the identity for Compose.
var Origin = PolarVector{}

func NewPolarVector(r, a float64) PolarVector {
	return PolarVector{R: r, A: Normalize(a)}
}

// IsZero reports whether p is the origin vector.
func (p PolarVector) IsZero() bool {
	return p.R == 0
}

// ToCartesian maps p onto the display plane (the hyperboloid model
// projection): x = r cos a, y = r sin a.
func (p PolarVector) ToCartesian() CartesianVector {
	sin, cos := math.Sincos(p.A)
	return CartesianVector{X: p.R * cos, Y: p.R * sin}
}

// Rotate returns p turned by da. The origin stays the origin.
func (p PolarVector) Rotate(da float64) PolarVector {
	if p.IsZero() {
		return Origin
	}
	return PolarVector{R: p.R, A: Normalize(p.A + da)}
}

// Normalize wraps an angle to [0, 2pi). Terminates for any finite input.
func Normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Sgn returns +1 for x >= 0 and -1 otherwise. Zero counts as positive so
// the result is always a usable sign factor.
func Sgn(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// clamp limits x to [lo, hi]. Used to keep trig arguments in domain when
// floating-point drift pushes them slightly out.
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}
