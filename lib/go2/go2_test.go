package go2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Clamp(-1, 0, 3))
	assert.Equal(t, 2, Clamp(2, 0, 3))
	assert.Equal(t, 3, Clamp(7, 0, 3))
	assert.Equal(t, 1.5, Clamp(1.5, 0.0, 3.0))
}

func TestContains(t *testing.T) {
	t.Parallel()

	assert.True(t, Contains([]string{"email", "web", "popup"}, "web"))
	assert.False(t, Contains([]string{"email", "web", "popup"}, "print"))
	assert.False(t, Contains(nil, 1))
}
