package hyper

// GeodesicPoint evaluates one sample of the geodesic leaving base in
// direction dir: the point at parameter t in [0, 1] along a segment of the
// given hyperbolic length. Each sample is a pure function of its arguments,
// so a segment can be re-sampled from any t independently.
func GeodesicPoint(base PolarVector, dir, length, t float64) PolarVector {
	return Compose(base, PolarVector{R: t * length, A: dir})
}

// A Geodesic is a sampled hyperbolic segment between two points. It is a
// finite, restartable sequence: Len and At together enumerate the samples
// in order from the start point toward the end point. The start sample is
// included; the end point is excluded because the sample count truncates
// 1/dt downward.
type Geodesic struct {
	Base   PolarVector
	Dir    float64
	Length float64
	dt     float64
	n      int
}

// NewGeodesic builds the segment from p1 to p2 sampled for the given scale
// (world units per pixel). The step is scale/length/2: twice the density of
// one sample per pixel of hyperbolic arc length, which leaves no gaps after
// integer projection. Coincident endpoints yield an empty sequence.
func NewGeodesic(p1, p2 PolarVector, scale float64) Geodesic {
	d := Difference(p2, p1)
	if d.IsZero() {
		return Geodesic{Base: p1}
	}
	dt := scale / d.R / 2
	return Geodesic{
		Base:   p1,
		Dir:    d.A,
		Length: d.R,
		dt:     dt,
		n:      int(1 / dt),
	}
}

// Len returns the number of samples.
func (g Geodesic) Len() int {
	return g.n
}

// At returns the i-th sample point, 0 <= i < Len().
func (g Geodesic) At(i int) PolarVector {
	return GeodesicPoint(g.Base, g.Dir, g.Length, float64(i)*g.dt)
}

// Rasterize projects every sample of the segment from p1 to p2 to pixel
// coordinates on a surface of the given size, in order from p1 to p2.
func Rasterize(p1, p2 PolarVector, scale float64, width, height int) []ScreenPoint {
	g := NewGeodesic(p1, p2, scale)
	pts := make([]ScreenPoint, g.Len())
	for i := range pts {
		pts[i] = Project(g.At(i), scale, width, height)
	}
	return pts
}
