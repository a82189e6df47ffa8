package hyper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneStartsAtOrigin(t *testing.T) {
	s := NewScene(3, DefaultSchemes)
	require.Len(t, s.Agents, 3)
	for i := range s.Agents {
		assert.True(t, s.Agents[i].Position.IsZero(), "agent %d", i)
		assert.True(t, s.Agents[i].Velocity.IsZero(), "agent %d", i)
	}
}

func TestScenePairs(t *testing.T) {
	s := NewScene(3, DefaultSchemes)
	pairs := s.Pairs()
	require.Len(t, pairs, 3) // 3*2/2

	// Each pair is distinct agents, no pair repeated in either order.
	seen := map[[2]*Agent]bool{}
	for _, pr := range pairs {
		assert.NotSame(t, pr[0], pr[1])
		assert.False(t, seen[pr] || seen[[2]*Agent{pr[1], pr[0]}])
		seen[pr] = true
	}
}

func TestScenePairsSingleAgent(t *testing.T) {
	s := NewScene(1, DefaultSchemes)
	assert.Empty(t, s.Pairs())
}

func TestSceneUpdateIndependent(t *testing.T) {
	s := NewScene(2, DefaultSchemes)
	in := NewInputState()
	in.Set(DefaultSchemes[0].Right, true)

	s.Update(in, 0.02, 10)

	// Only agent 0's keys are held; agent 1 must not move.
	assert.False(t, s.Agents[0].Position.IsZero())
	assert.True(t, s.Agents[1].Position.IsZero())
}

func TestSceneReset(t *testing.T) {
	s := NewScene(2, DefaultSchemes)
	s.Agents[0].Position = PolarVector{R: 1, A: 2}
	s.Agents[1].Velocity = PolarVector{R: 0.5, A: 0}

	s.Reset()

	require.Len(t, s.Agents, 2)
	for i := range s.Agents {
		assert.True(t, s.Agents[i].Position.IsZero(), "agent %d", i)
		assert.True(t, s.Agents[i].Velocity.IsZero(), "agent %d", i)
	}
}
