package hyper

import "github.com/hajimehoshi/ebiten/v2"

// KeyScheme is the directional key quadruple controlling one agent.
type KeyScheme struct {
	Up, Down, Right, Left ebiten.Key
}

// An Agent is a point in the hyperbolic plane. Position is its location
// relative to the fixed origin; Velocity is the displacement applied on the
// most recent tick, recomputed from input every step.
type Agent struct {
	Position PolarVector
	Velocity PolarVector
}

// Steer integrates one tick of directional input. Each held direction
// contributes a Cartesian component of magnitude scale*speed, so opposing
// keys cancel and diagonals combine; the sum is converted to a hyperbolic
// displacement and composed onto the position. The step is per-tick, not
// scaled by wall-clock time.
func (a *Agent) Steer(in *InputState, scheme KeyScheme, scale, speed float64) {
	v := scale * speed
	var vel CartesianVector
	if in.Held(scheme.Up) {
		vel = vel.Add(CartesianVector{X: 0, Y: v})
	}
	if in.Held(scheme.Down) {
		vel = vel.Add(CartesianVector{X: 0, Y: -v})
	}
	if in.Held(scheme.Right) {
		vel = vel.Add(CartesianVector{X: v, Y: 0})
	}
	if in.Held(scheme.Left) {
		vel = vel.Add(CartesianVector{X: -v, Y: 0})
	}

	a.Velocity = vel.ToPolar()
	a.Position = Compose(a.Position, a.Velocity)
}
