package hyper

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	world *World
}

func NewGame(world *World) *Game {
	return &Game{
		world: world,
	}
}

func (g *Game) Update() error {
	return g.world.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.world.Config.Width, g.world.Config.Height
}

func (g *Game) Run() error {
	ebiten.SetWindowSize(g.world.Config.Width, g.world.Config.Height)
	ebiten.SetWindowTitle(g.world.Config.Title)
	ebiten.SetTPS(g.world.Config.TPS)

	return ebiten.RunGame(g)
}
