package hyper

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// MarkerRadius is the pixel radius of the filled circle drawn at each
// agent's projected position.
const MarkerRadius = 2

var (
	White = color.RGBA{255, 255, 255, 255}
	Black = color.RGBA{0, 0, 0, 255}
)

// Control keys shared by every scheme.
const (
	KeyReset = ebiten.KeyF5
	KeyPause = ebiten.KeySpace
	KeyQuit  = ebiten.KeyEscape

	KeyZoomIn  = ebiten.KeyEqual // '+' without shift
	KeyZoomOut = ebiten.KeyMinus

	KeyHUD = ebiten.KeyH
)

// DefaultSchemes are the built-in directional key quadruples, one per agent
// slot. AgentCount may not exceed their number.
var DefaultSchemes = []KeyScheme{
	{Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown, Right: ebiten.KeyArrowRight, Left: ebiten.KeyArrowLeft},
	{Up: ebiten.KeyW, Down: ebiten.KeyS, Right: ebiten.KeyD, Left: ebiten.KeyA},
	{Up: ebiten.KeyI, Down: ebiten.KeyK, Right: ebiten.KeyL, Left: ebiten.KeyJ},
}
