package game

import (
	"fmt"
	"sync/atomic"
	"time"

	"PongGL/core"
	"PongGL/logger"
	"PongGL/render"

	"github.com/go-gl/mathgl/mgl32"
)

// LongFrame is the frame time above which a tunnelling warning is logged.
const LongFrame = 0.1

// Input samples the key state once per frame.
type Input interface {
	Poll() core.Controls
}

// ResizeSource is implemented by inputs that also report window size changes.
type ResizeSource interface {
	PendingResize() (width, height float32, ok bool)
}

// Surface presents a finished frame and may wait for the next one.
type Surface interface {
	Present() error
	ShouldClose() bool
}

// Game is the frame loop: input, simulation, render sync, draw, present.
type Game struct {
	world *core.World
	sim   core.Simulator
	scene *Scene
	dev   render.Device

	input   Input
	surface Surface
	now     func() time.Time

	stop atomic.Bool
}

// New builds the world and both batches for a width x height field.
func New(dev render.Device, input Input, surface Surface, width, height float32) (*Game, error) {
	world := core.NewWorld(width, height)
	scene, err := NewScene(dev, world)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:   world,
		scene:   scene,
		dev:     dev,
		input:   input,
		surface: surface,
		now:     time.Now,
	}
	dev.SetProjection(projection(width, height))
	return g, nil
}

func projection(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, 0, height, 0, 1)
}

func (g *Game) World() *core.World {
	return g.world
}

func (g *Game) Scene() *Scene {
	return g.scene
}

// Resize applies a new field size to the world and the projection.
func (g *Game) Resize(width, height float32) {
	g.world.Resize(width, height)
	g.dev.SetProjection(projection(width, height))
	logger.Log.Debug(fmt.Sprintf(logger.ResizeMsg, width, height))
}

// Stop asks Run to return before its next frame. Safe from any goroutine.
func (g *Game) Stop() {
	g.stop.Store(true)
}

func (g *Game) stopped() bool {
	return g.stop.Load() || g.surface.ShouldClose()
}

// Run drives frames with the wall-clock time since the previous frame until stopped.
func (g *Game) Run() error {
	last := g.now()
	for !g.stopped() {
		now := g.now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if err := g.Frame(dt); err != nil {
			return err
		}
	}
	return nil
}

// Frame runs one full frame with the given time step.
func (g *Game) Frame(dt float32) error {
	if rs, ok := g.input.(ResizeSource); ok {
		if width, height, resized := rs.PendingResize(); resized {
			g.Resize(width, height)
		}
	}

	controls := g.input.Poll()
	if controls.Quit {
		g.Stop()
	}
	g.world.ApplyControls(controls)

	if dt > LongFrame {
		logger.Log.Warn(fmt.Sprintf(logger.LongFrameMsg, dt))
	}
	g.report(g.sim.Step(g.world, dt))

	if err := g.scene.Sync(g.world); err != nil {
		return fmt.Errorf("render sync: %w", err)
	}

	g.dev.Clear()
	if err := g.scene.Draw(); err != nil {
		return err
	}
	return g.surface.Present()
}

func (g *Game) report(res core.StepResult) {
	for _, side := range []core.Side{core.Left, core.Right} {
		if res.Overshoot[side] {
			y := g.world.Paddles[side].Position.Y()
			logger.Log.Debug(fmt.Sprintf(logger.PaddleOvershootMsg, side, y))
		}
		if res.Hit[side] {
			logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, side, res.Bounce.X(), res.Bounce.Y()))
		}
	}

	score := g.world.Score
	if res.Scored[core.Right] {
		logger.Log.Info(fmt.Sprintf(logger.RightPlayerPointMsg, score[core.Left], score[core.Right]))
	}
	if res.Scored[core.Left] {
		logger.Log.Info(fmt.Sprintf(logger.LeftPlayerPointMsg, score[core.Left], score[core.Right]))
	}
}

// Close releases the scene buffers.
func (g *Game) Close() error {
	score := g.world.Score
	logger.Log.Info(fmt.Sprintf(logger.QuitMsg, score[core.Left], score[core.Right]))
	return g.scene.Destroy()
}
