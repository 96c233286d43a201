package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoldToResetSecondsOrDefault(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero", 0, 1},
		{"negative", -3, 1},
		{"in range", 4, 4},
		{"too long", 60, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{HoldToResetSeconds: tt.in}
			assert.Equal(t, tt.want, c.HoldToResetSecondsOrDefault())
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "finished", StateFinished.String())
	assert.Equal(t, "unknown", State(42).String())
}
