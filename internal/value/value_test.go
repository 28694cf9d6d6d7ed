package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthiness(t *testing.T) {
	assert.True(t, Int(1).Truthy())
	assert.False(t, Int(0).Truthy())
	assert.False(t, Str("").Truthy())
	assert.True(t, Str("x").Truthy())
	assert.False(t, Null.Truthy())
}

func TestEnvironmentAssignCreatesInferredBinding(t *testing.T) {
	env := NewEnvironment()
	env.Assign("x", Int(5))
	b, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, Inferred, b.DeclaredType)
	assert.Equal(t, int64(5), b.Value.Int)
}

func TestEnvironmentAssignUpdatesExistingBinding(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", "Int", Int(1))
	env.Assign("x", Int(2))
	b, _ := env.Get("x")
	assert.Equal(t, DeclaredType("Int"), b.DeclaredType)
	assert.Equal(t, int64(2), b.Value.Int)
}

func TestCounterIncrementsFromZeroAndIsNotResettable(t *testing.T) {
	var c Counter
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 3, c.Value())
}
