package game

import (
	"fmt"

	"PongGL/core"
	"PongGL/geometry"
	"PongGL/render"

	"github.com/go-gl/mathgl/mgl32"
)

// Stream ids shared by the paddle and ball batches.
const (
	OffsetStream render.StreamID = iota
	SizeStream
)

// Scene holds the two drawable batches: both paddles in one buffer, the ball in another.
type Scene struct {
	Paddles *render.InstancedBuffer
	Ball    *render.InstancedBuffer
}

// NewScene uploads the paddle quad and the ball fan with w's current offsets.
// Sizes are written once here and never synced again.
func NewScene(dev render.Device, w *core.World) (*Scene, error) {
	circle, err := geometry.Circle(core.BallTriangles, 0.5)
	if err != nil {
		return nil, fmt.Errorf("ball mesh: %w", err)
	}

	offsets := w.PaddleOffsets()
	paddles, err := render.NewInstancedBuffer(dev, geometry.Quad(),
		render.StreamSpec{Name: "paddle offset", Usage: render.Dynamic, Rate: render.PerInstance(), Data: offsets[:]},
		render.StreamSpec{Name: "paddle size", Usage: render.Static, Rate: render.Constant(),
			Data: []mgl32.Vec2{{core.PaddleWidth, core.PaddleHeight}}},
	)
	if err != nil {
		return nil, fmt.Errorf("paddle buffer: %w", err)
	}

	ball, err := render.NewInstancedBuffer(dev, circle,
		render.StreamSpec{Name: "ball offset", Usage: render.Dynamic, Rate: render.PerInstance(), Data: []mgl32.Vec2{w.BallOffset()}},
		render.StreamSpec{Name: "ball size", Usage: render.Static, Rate: render.Constant(),
			Data: []mgl32.Vec2{{core.BallDiameter, core.BallDiameter}}},
	)
	if err != nil {
		paddles.Destroy()
		return nil, fmt.Errorf("ball buffer: %w", err)
	}

	return &Scene{Paddles: paddles, Ball: ball}, nil
}

// Sync copies the current paddle and ball offsets into their buffers.
func (s *Scene) Sync(w *core.World) error {
	offsets := w.PaddleOffsets()
	if err := s.Paddles.UpdateInstanceStream(OffsetStream, 0, offsets[:]); err != nil {
		return err
	}
	return s.Ball.UpdateInstanceStream(OffsetStream, 0, []mgl32.Vec2{w.BallOffset()})
}

// Draw issues one instanced draw per batch.
func (s *Scene) Draw() error {
	if err := s.Paddles.Draw(2); err != nil {
		return err
	}
	return s.Ball.Draw(1)
}

// Destroy releases both batches.
func (s *Scene) Destroy() error {
	err := s.Paddles.Destroy()
	if ballErr := s.Ball.Destroy(); err == nil {
		err = ballErr
	}
	return err
}
