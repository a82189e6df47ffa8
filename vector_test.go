package hyper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartesianAdd(t *testing.T) {
	v := CartesianVector{X: 1, Y: 2}.Add(CartesianVector{X: -3, Y: 0.5})
	assert.Equal(t, CartesianVector{X: -2, Y: 2.5}, v)
}

func TestCartesianOpposingCancel(t *testing.T) {
	v := CartesianVector{X: 0, Y: 1}.Add(CartesianVector{X: 0, Y: -1})
	assert.True(t, v.ToPolar().IsZero())
}

func TestCartesianMulLength(t *testing.T) {
	v := CartesianVector{X: 3, Y: 4}
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 10.0, v.Mul(2).Length())
}
