package hyper

import "image/color"

// Renderer draws a scene onto a Surface: a filled-circle marker per agent,
// then a rasterized geodesic between every agent pair.
type Renderer struct {
	Background color.Color
	Foreground color.Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: White,
		Foreground: Black,
	}
}

// Frame renders one complete frame of the scene at the given display scale.
func (r *Renderer) Frame(dst Surface, scene *Scene, scale float64) {
	width, height := dst.Size()

	dst.Clear(r.Background)

	for i := range scene.Agents {
		center := Project(scene.Agents[i].Position, scale, width, height)
		dst.FilledCircle(center, MarkerRadius, r.Foreground)
	}

	for _, pair := range scene.Pairs() {
		for _, pt := range Rasterize(pair[0].Position, pair[1].Position, scale, width, height) {
			dst.PlotPixel(pt.X, pt.Y, r.Foreground)
		}
	}
}
