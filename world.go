package hyper

import (
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Zoom keys nudge the target scale by this factor per tick while held.
const zoomStep = 1.02

// World owns the whole mutable state of a run: the scene, the input table
// and the display scale. It is driven strictly sequentially by the tick
// loop; every tick drains pending input transitions, updates each agent
// independently, then renders. Nothing else touches the agents.
type World struct {
	*EventEmitter

	Config   Config
	Scene    *Scene
	Input    *InputState
	Renderer *Renderer

	Paused  bool
	ShowHUD bool

	// Effective display scale, spring-animated toward targetScale so zoom
	// changes glide instead of jumping.
	scale       float64
	targetScale float64
	scaleVel    float64
	zoomSpring  harmonica.Spring
}

func NewWorld(conf Config) *World {
	return &World{
		EventEmitter: NewEventEmitter(),
		Config:       conf,
		Scene:        NewScene(conf.AgentCount, DefaultSchemes),
		Input:        NewInputState(),
		Renderer:     NewRenderer(),
		ShowHUD:      true,
		scale:        conf.Scale,
		targetScale:  conf.Scale,
		zoomSpring:   harmonica.NewSpring(harmonica.FPS(conf.TPS), 6.0, 1.0),
	}
}

// Scale returns the effective display scale for the current tick.
func (w *World) Scale() float64 {
	return w.scale
}

// Reset replaces the agent set with fresh origin agents. The drawing
// surface is cleared on the next frame since every frame starts from a
// cleared surface.
func (w *World) Reset() {
	w.Scene.Reset()
	w.Emit(EventReset, nil)
}

// ProcessEvents drains pending key transitions and handles the control
// keys. It reports whether the loop should terminate, leaving the decision
// to stop with the caller.
func (w *World) ProcessEvents() (quit bool) {
	w.Input.Drain(w.EventEmitter)

	if inpututil.IsKeyJustPressed(KeyQuit) {
		w.Emit(EventQuit, nil)
		return true
	}
	if inpututil.IsKeyJustPressed(KeyReset) {
		w.Reset()
	}
	if inpututil.IsKeyJustPressed(KeyPause) {
		w.Paused = !w.Paused
		w.Emit(EventPause, w.Paused)
	}
	if inpututil.IsKeyJustPressed(KeyHUD) {
		w.ShowHUD = !w.ShowHUD
	}

	if w.Input.Held(KeyZoomIn) {
		w.targetScale /= zoomStep
	}
	if w.Input.Held(KeyZoomOut) {
		w.targetScale *= zoomStep
	}

	return false
}

// Update runs one tick: input, zoom spring, kinematics.
func (w *World) Update() error {
	if w.ProcessEvents() {
		return ebiten.Termination
	}

	w.scale, w.scaleVel = w.zoomSpring.Update(w.scale, w.scaleVel, w.targetScale)

	if !w.Paused {
		w.Scene.Update(w.Input, w.scale, w.Config.Speed)
	}
	return nil
}

// Draw renders the current frame: agent markers, pairwise geodesics, HUD.
func (w *World) Draw(screen *ebiten.Image) {
	w.Renderer.Frame(NewEbitenSurface(screen), w.Scene, w.scale)
	if w.ShowHUD {
		w.drawHUD(screen)
	}
}
