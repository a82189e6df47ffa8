package hyper

// A Scene owns a fixed number of agents, each bound to one key scheme.
// The agent count is set at construction and never changes; Reset replaces
// every agent with a fresh one at the origin.
type Scene struct {
	Agents  []Agent
	Schemes []KeyScheme
}

// NewScene creates n agents at the origin, controlled by the first n
// schemes. The caller validates n against the scheme count up front.
func NewScene(n int, schemes []KeyScheme) *Scene {
	return &Scene{
		Agents:  make([]Agent, n),
		Schemes: schemes[:n],
	}
}

// Reset puts every agent back at the origin with zero velocity.
func (s *Scene) Reset() {
	s.Agents = make([]Agent, len(s.Agents))
}

// Update runs one kinematics tick on every agent. Agents only ever read
// their own state, so the iteration order does not affect the result.
func (s *Scene) Update(in *InputState, scale, speed float64) {
	for i := range s.Agents {
		s.Agents[i].Steer(in, s.Schemes[i], scale, speed)
	}
}

// Pairs enumerates all distinct unordered agent pairs, N*(N-1)/2 of them.
// Every pair gets a geodesic drawn between it: the connection topology is
// the complete graph.
func (s *Scene) Pairs() [][2]*Agent {
	n := len(s.Agents)
	pairs := make([][2]*Agent, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]*Agent{&s.Agents[i], &s.Agents[j]})
		}
	}
	return pairs
}
