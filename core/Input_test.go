package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyControls(t *testing.T) {
	tests := []struct {
		name     string
		y        float32
		up, down bool
		want     float32
	}{
		{"idle", 300, false, false, 0},
		{"up", 300, true, false, PaddleSpeed},
		{"down", 300, false, true, -PaddleSpeed},
		{"both held goes down", 300, true, true, -PaddleSpeed},
		{"up at top", 540, true, false, 0},
		{"down at top", 540, false, true, -PaddleSpeed},
		{"down at bottom", 60, false, true, 0},
		{"up at bottom", 60, true, false, PaddleSpeed},
		{"both held at bottom", 60, true, true, PaddleSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(800, 600)
			w.Paddles[Left].Position[1] = tt.y
			w.Paddles[Right].Position[1] = tt.y

			var c Controls
			c.Up[Right], c.Down[Right] = tt.up, tt.down
			w.ApplyControls(c)
			assert.Equal(t, tt.want, w.Paddles[Right].Velocity)
			assert.Zero(t, w.Paddles[Left].Velocity)

			c = Controls{}
			c.Up[Left], c.Down[Left] = tt.up, tt.down
			w.ApplyControls(c)
			assert.Equal(t, tt.want, w.Paddles[Left].Velocity)
			assert.Zero(t, w.Paddles[Right].Velocity)
		})
	}
}

func TestApplyControlsReleasesVelocity(t *testing.T) {
	w := NewWorld(800, 600)

	var c Controls
	c.Up[Left] = true
	w.ApplyControls(c)
	assert.Equal(t, PaddleSpeed, w.Paddles[Left].Velocity)

	w.ApplyControls(Controls{})
	assert.Zero(t, w.Paddles[Left].Velocity)
}

func TestApplyControlsFollowsResize(t *testing.T) {
	w := NewWorld(800, 600)
	w.Paddles[Left].Position[1] = 600

	var c Controls
	c.Up[Left] = true
	w.ApplyControls(c)
	assert.Zero(t, w.Paddles[Left].Velocity)

	w.Resize(800, 1000)
	w.ApplyControls(c)
	assert.Equal(t, PaddleSpeed, w.Paddles[Left].Velocity)
}
