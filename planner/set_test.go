package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pressure/planner"
)

func TestSet(t *testing.T) {
	var s planner.Set
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Bits())

	s = s.With(0).With(3).With(63)
	assert.True(t, s.Has(0))
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(63))
	assert.False(t, s.Has(1))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{0, 3, 63}, s.Bits())

	s = s.Without(3).Without(5)
	assert.Equal(t, []int{0, 63}, s.Bits())

	universe := planner.Set(0b1111)
	assert.Equal(t, planner.Set(0b1110), planner.Set(0b0001).Complement(universe))
	assert.Equal(t, universe, planner.Set(0).Complement(universe))
}
