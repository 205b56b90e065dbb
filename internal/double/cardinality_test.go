package double

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardinality_Met(t *testing.T) {
	tests := []struct {
		name        string
		cardinality Cardinality
		count       int
		met         bool
	}{
		{"any count zero", AnyCount(), 0, true},
		{"any count many", AnyCount(), 100, true},
		{"exactly met", Exactly(2), 2, true},
		{"exactly under", Exactly(2), 1, false},
		{"exactly over", Exactly(2), 3, false},
		{"once met", Once(), 1, true},
		{"once not called", Once(), 0, false},
		{"never met", Never(), 0, true},
		{"never violated", Never(), 1, false},
		{"at least met", AtLeast(2), 2, true},
		{"at least exceeded", AtLeast(2), 5, true},
		{"at least under", AtLeast(2), 1, false},
		{"at most met", AtMost(2), 2, true},
		{"at most under", AtMost(2), 0, true},
		{"at most over", AtMost(2), 3, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.met, test.cardinality.Met(test.count))
		})
	}
}

func TestCardinality_Saturation(t *testing.T) {
	assert.True(t, Exactly(2).(Saturating).Saturated(2))
	assert.False(t, Exactly(2).(Saturating).Saturated(1))
	assert.True(t, AtMost(1).(Saturating).Saturated(1))
	assert.False(t, AtMost(1).(Saturating).Saturated(0))
	assert.True(t, Never().(Saturating).Saturated(0))

	_, saturating := AtLeast(1).(Saturating)
	assert.False(t, saturating, "at-least never saturates")
	_, saturating = AnyCount().(Saturating)
	assert.False(t, saturating, "any-count never saturates")
}

func TestCardinality_Strings(t *testing.T) {
	assert.Equal(t, "exactly 2 time(s)", Exactly(2).String())
	assert.Equal(t, "at least 1 time(s)", AtLeast(1).String())
	assert.Equal(t, "at most 3 time(s)", AtMost(3).String())
	assert.Equal(t, "any number of times", AnyCount().String())
}
