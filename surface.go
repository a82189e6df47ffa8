package hyper

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the drawing target the renderer works against. Presenting a
// finished frame is the frame boundary of the backend, not a Surface call.
type Surface interface {
	Clear(c color.Color)
	PlotPixel(x, y int, c color.Color)
	FilledCircle(center ScreenPoint, radius int, c color.Color)
	Size() (width, height int)
}

// EbitenSurface adapts an ebiten.Image to the Surface interface.
type EbitenSurface struct {
	Image *ebiten.Image
}

func NewEbitenSurface(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{Image: img}
}

func (s *EbitenSurface) Clear(c color.Color) {
	s.Image.Fill(c)
}

func (s *EbitenSurface) PlotPixel(x, y int, c color.Color) {
	s.Image.Set(x, y, c)
}

func (s *EbitenSurface) FilledCircle(center ScreenPoint, radius int, c color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				s.Image.Set(center.X+dx, center.Y+dy, c)
			}
		}
	}
}

func (s *EbitenSurface) Size() (int, int) {
	bounds := s.Image.Bounds()
	return bounds.Dx(), bounds.Dy()
}
