package hyper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dist is the hyperbolic distance between two points.
func dist(p, q PolarVector) float64 {
	return Difference(p, q).R
}

// randPoint returns a non-degenerate point with radius in [0.1, 3).
func randPoint(rng *rand.Rand) PolarVector {
	return PolarVector{R: 0.1 + 2.9*rng.Float64(), A: Normalize(2 * math.Pi * rng.Float64())}
}

func TestComposeIdentity(t *testing.T) {
	points := []PolarVector{
		{R: 1, A: 0},
		{R: 0.5, A: 2.1},
		{R: 4, A: math.Pi},
	}
	for _, p := range points {
		assert.Equal(t, p, Compose(Origin, p), "left identity of %+v", p)
		assert.Equal(t, p, Compose(p, Origin), "right identity of %+v", p)
	}
}

func TestComposeZeroZero(t *testing.T) {
	assert.Equal(t, Origin, Compose(Origin, Origin))
}

func TestComposeAntipodalCancel(t *testing.T) {
	p := PolarVector{R: 1.5, A: 0.7}
	q := p.Rotate(math.Pi)
	got := Compose(p, q)
	// Rounding may leave the cosh argument a few ulps above 1, so the
	// radius is only zero within floating tolerance.
	assert.InDelta(t, 0, got.R, 1e-6, "antipodal composition, got %+v", got)
}

func TestComposeCollinear(t *testing.T) {
	// Along a single geodesic through the origin, lengths add linearly.
	got := Compose(PolarVector{R: 1, A: 0}, PolarVector{R: 2, A: 0})
	assert.InDelta(t, 3, got.R, 1e-12)
	// acos near 1 is ill-conditioned, so the angle tolerance is loose.
	da := Normalize(got.A)
	if da > math.Pi {
		da = 2*math.Pi - da
	}
	assert.InDelta(t, 0, da, 1e-6)
}

func TestDifferenceSelf(t *testing.T) {
	points := []PolarVector{
		{R: 1, A: 0},
		{R: 0.01, A: 5},
		{R: 7, A: 2.3},
	}
	for _, p := range points {
		d := Difference(p, p)
		assert.InDelta(t, 0, d.R, 1e-6, "Difference(%+v, %+v) = %+v", p, p, d)
	}
}

func TestDifferenceZeroCases(t *testing.T) {
	p := PolarVector{R: 1, A: 0.5}

	// Zero base: the result is the target reversed.
	d := Difference(Origin, p)
	assert.Equal(t, p.R, d.R)
	assert.InDelta(t, Normalize(p.A+math.Pi), d.A, 1e-12)

	// Zero target: the base comes back unchanged.
	assert.Equal(t, p, Difference(p, Origin))
}

func TestDifferenceUnitFromOrigin(t *testing.T) {
	p1 := Origin
	p2 := PolarVector{R: 1, A: 0}

	// The displacement from p1 to p2, as consumed by the rasterizer.
	d := Difference(p2, p1)
	assert.Equal(t, PolarVector{R: 1, A: 0}, d)

	assert.Equal(t, PolarVector{R: 1, A: 0}, Compose(p1, PolarVector{R: 1, A: 0}))
}

func TestComposeDifferenceRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p1, p2 := randPoint(rng), randPoint(rng)

		// Composing the displacement from p1 to p2 onto p1 lands on p2.
		got := Compose(p1, Difference(p2, p1))
		require.InDelta(t, p2.R, got.R, 1e-9, "radius, p1=%+v p2=%+v", p1, p2)

		// Near-collinear configurations push the acos arguments against
		// the clamp boundary, where angle recovery loses half the digits.
		da := Normalize(got.A - p2.A)
		if da > math.Pi {
			da = 2*math.Pi - da
		}
		require.InDelta(t, 0, da, 1e-6, "angle, p1=%+v p2=%+v", p1, p2)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		p, q := randPoint(rng), randPoint(rng)
		assert.InDelta(t, dist(p, q), dist(q, p), 1e-9)
	}
}

func TestTriangleInequality(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		p1, p2, p3 := randPoint(rng), randPoint(rng), randPoint(rng)
		d13 := dist(p1, p3)
		d12 := dist(p1, p2)
		d23 := dist(p2, p3)
		assert.LessOrEqual(t, d13, d12+d23+1e-9, "p1=%+v p2=%+v p3=%+v", p1, p2, p3)
	}
}

func TestComposeClampsDrift(t *testing.T) {
	// Nearly antipodal operands push the acosh argument below 1 through
	// rounding; the clamp must absorb it instead of producing NaN.
	p := PolarVector{R: 1e-8, A: 0}
	q := PolarVector{R: 1e-8, A: math.Pi}
	got := Compose(p, q)
	assert.False(t, math.IsNaN(got.R))
	assert.False(t, math.IsNaN(got.A))
}
