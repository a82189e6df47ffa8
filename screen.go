package hyper

// ScreenPoint is an integer pixel coordinate. It is the final output of
// projection and carries no further geometric meaning.
type ScreenPoint struct {
	X, Y int
}

// Project maps a polar vector to a pixel position on a surface of the given
// size. The origin sits at the center of the surface and world y grows
// upward, so the pixel row decreases with y. Division by scale is truncated
// toward zero, not rounded.
func Project(p PolarVector, scale float64, width, height int) ScreenPoint {
	c := p.ToCartesian()
	return ScreenPoint{
		X: width/2 + int(c.X/scale),
		Y: height/2 - int(c.Y/scale),
	}
}
