package core

import "github.com/go-gl/mathgl/mgl32"

// World is the authoritative simulation state, owned by the frame loop.
type World struct {
	Field   Field
	Paddles [2]Paddle
	Ball    Ball

	// Score 本局的得分，不會保存
	Score [2]int
}

// NewWorld places both paddles and the ball at their serve positions.
func NewWorld(width, height float32) *World {
	w := &World{Field: Field{Width: width, Height: height}}
	w.Ball.Velocity = InitialBallVelocity
	w.placeObjects()
	return w
}

// PaddleStart returns the serve position of a paddle.
func (w *World) PaddleStart(side Side) mgl32.Vec2 {
	x := PaddleInset
	if side == Right {
		x = w.Field.Width - PaddleInset
	}
	return mgl32.Vec2{x, w.Field.Height / 2}
}

func (w *World) placeObjects() {
	w.Ball.Position = w.Field.Center()
	w.Paddles[Left].Position = w.PaddleStart(Left)
	w.Paddles[Right].Position = w.PaddleStart(Right)
}

// Reset serves a new rally after scorer won the point: the ball goes back to the
// centre heading for the loser, both paddles go back to their start.
func (w *World) Reset(scorer Side) {
	w.placeObjects()

	w.Ball.Velocity = InitialBallVelocity
	if scorer == Right {
		w.Ball.Velocity[0] = -InitialBallVelocity.X()
	}
}

// Resize applies a new field size. Only the right paddle's x depends on the width,
// everything else keeps its current position.
func (w *World) Resize(width, height float32) {
	w.Field = Field{Width: width, Height: height}
	w.Paddles[Right].Position[0] = width - PaddleInset
}

// PaddleOffsets returns both paddle centres, left first.
func (w *World) PaddleOffsets() [2]mgl32.Vec2 {
	return [2]mgl32.Vec2{w.Paddles[Left].Position, w.Paddles[Right].Position}
}

// BallOffset returns the ball centre.
func (w *World) BallOffset() mgl32.Vec2 {
	return w.Ball.Position
}
