package hyper

import "math"

// CartesianVector is a plain Euclidean plane vector. It only appears at the
// edges of the system: raw directional input is additive in Cartesian form,
// and screen projection works on Cartesian coordinates. All geometry in
// between is done on PolarVector.
type CartesianVector struct {
	X, Y float64
}

func NewCartesianVector(x, y float64) CartesianVector {
	return CartesianVector{X: x, Y: y}
}

func (v CartesianVector) Add(other CartesianVector) CartesianVector {
	return CartesianVector{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v CartesianVector) Mul(scalar float64) CartesianVector {
	return CartesianVector{X: v.X * scalar, Y: v.Y * scalar}
}

func (v CartesianVector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// ToPolar converts v to polar form. The zero vector maps to the origin with
// angle 0; the exact-zero radius matters downstream where sinh(r) divides.
func (v CartesianVector) ToPolar() PolarVector {
	r := v.Length()
	if r == 0 {
		return Origin
	}
	return PolarVector{R: r, A: Normalize(math.Atan2(v.Y, v.X))}
}
