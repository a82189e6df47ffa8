package hyper

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type TextProps struct {
	Text  string
	X, Y  float64
	Color color.Color
	Font  font.Face
}

func DrawText(screen *ebiten.Image, props *TextProps) {
	if props == nil || props.Text == "" {
		return
	}

	if props.Font == nil {
		props.Font = basicfont.Face7x13
	}
	if props.Color == nil {
		props.Color = color.RGBA{255, 255, 255, 255}
	}

	text.Draw(screen, props.Text, props.Font, int(props.X), int(props.Y), props.Color)
}

const hudLineHeight = 14

func (w *World) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("scale %.4f  speed %.1f  tps %d", w.scale, w.Config.Speed, ebiten.TPS())
	if w.Paused {
		status += "  [paused]"
	}
	DrawText(screen, &TextProps{Text: status, X: 4, Y: hudLineHeight, Color: Black})

	for i := range w.Scene.Agents {
		p := w.Scene.Agents[i].Position
		line := fmt.Sprintf("agent %d  r %.3f  a %.3f", i, p.R, p.A)
		DrawText(screen, &TextProps{Text: line, X: 4, Y: float64((i + 2) * hudLineHeight), Color: Black})
	}
}
