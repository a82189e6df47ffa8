package hyper

import "math"

// Compose adds two polar vectors hyperbolically (curvature -1): the result
// is the point reached by displacing first by p1, then by p2.
//
// The radius comes from the hyperbolic law of cosines,
//
//	cosh c = cosh a cosh b - sinh a sinh b cos C
//
// where the triangle angle C = pi + a1 - a2, so cos C = -cos(a2-a1).
// The result angle is a1 offset by the triangle angle B, with
// cos B = (cosh r1 cosh r3 - cosh r2) / (sinh r1 sinh r3).
//
// Both inverse-trig arguments are clamped into domain: rounding can push
// cosh r3 below 1 and cos B outside [-1, 1]. Zero-radius operands and a
// zero-radius result short-circuit before any division by sinh.
func Compose(p1, p2 PolarVector) PolarVector {
	if p1.IsZero() {
		return p2
	}
	if p2.IsZero() {
		return p1
	}

	cr3 := math.Cosh(p1.R)*math.Cosh(p2.R) + math.Sinh(p1.R)*math.Sinh(p2.R)*math.Cos(p2.A-p1.A)
	r3 := math.Acosh(math.Max(cr3, 1))
	if r3 == 0 {
		return Origin
	}

	ca3 := (math.Cosh(p1.R)*math.Cosh(r3) - math.Cosh(p2.R)) / (math.Sinh(p1.R) * math.Sinh(r3))
	// Recover the sign of B from the turning direction: left turn if the
	// angle from p1 to p2 is under pi, right turn otherwise.
	sign := 1.0
	if Normalize(p2.A-p1.A) >= math.Pi {
		sign = -1
	}
	a3 := p1.A + sign*math.Acos(clamp(ca3, -1, 1))

	return PolarVector{R: r3, A: Normalize(a3)}
}

// Difference subtracts two polar vectors hyperbolically: it returns the
// displacement from p2 to p1, the vector d with Compose(p2, d) = p1.
// The triangle now has known sides a and c and we solve for b; the wanted
// angle is
// A = a2 - a3, recovered relative to a2 (not a1) with
// cos A = (cosh r1 - cosh r2 cosh r3) / (sinh r2 sinh r3).
//
// When p1 is the origin the displacement from it to p2 is p2 reversed, and
// when p2 is the origin the result is p1 itself. The turning sign is the
// opposite of Compose's because base and target swap roles.
func Difference(p1, p2 PolarVector) PolarVector {
	if p1.IsZero() {
		return p2.Rotate(math.Pi)
	}
	if p2.IsZero() {
		return p1
	}

	cr3 := math.Cosh(p1.R)*math.Cosh(p2.R) - math.Sinh(p1.R)*math.Sinh(p2.R)*math.Cos(p2.A-p1.A)
	r3 := math.Acosh(math.Max(cr3, 1))
	if r3 == 0 {
		return Origin
	}

	ca3 := (math.Cosh(p1.R) - math.Cosh(p2.R)*math.Cosh(r3)) / (math.Sinh(p2.R) * math.Sinh(r3))
	sign := -1.0
	if Normalize(p2.A-p1.A) >= math.Pi {
		sign = 1
	}
	a3 := p2.A + sign*math.Acos(clamp(ca3, -1, 1))

	return PolarVector{R: r3, A: Normalize(a3)}
}
