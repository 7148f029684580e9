package core

import "github.com/go-gl/mathgl/mgl32"

// StepResult reports what happened during one Step.
type StepResult struct {
	Hit    [2]bool
	Scored [2]bool

	// Overshoot marks paddles that a long step carried past PaddleLimits.
	Overshoot [2]bool

	// Bounce is the ball velocity right after paddle hits, before any reset.
	Bounce mgl32.Vec2
}

// AnyScore reports whether either player scored.
func (r StepResult) AnyScore() bool {
	return r.Scored[Left] || r.Scored[Right]
}

// Simulator advances a World by one frame. It has no state of its own.
type Simulator struct{}

// Step integrates dt seconds, then resolves paddle hits, then scoring. dt is used
// as is: a long frame can carry the ball through a paddle or a wall.
func (s Simulator) Step(w *World, dt float32) StepResult {
	var result StepResult

	s.integrate(w, dt)
	result.Overshoot = s.overshoot(w)
	result.Hit = s.collidePaddles(w)
	result.Bounce = w.Ball.Velocity
	result.Scored = s.score(w)

	return result
}

// integrate moves everything and bounces the ball off the bottom and top walls.
func (Simulator) integrate(w *World, dt float32) {
	//兩個球拍
	for i := range w.Paddles {
		w.Paddles[i].Position[1] += w.Paddles[i].Velocity * dt
	}

	//球
	ball := &w.Ball
	ball.Position = ball.Position.Add(ball.Velocity.Mul(dt))

	//檢查有沒有撞到上下牆壁
	if ball.Position.Y()-BallRadius <= 0 {
		ball.Velocity[1] = mgl32.Abs(ball.Velocity.Y())
	}
	if ball.Position.Y()+BallRadius >= w.Field.Height {
		ball.Velocity[1] = -mgl32.Abs(ball.Velocity.Y())
	}
}

// overshoot reports paddles outside the travel range. Input gating only stops a
// paddle from starting a move, so one step of dt can still carry it past a limit.
func (Simulator) overshoot(w *World) [2]bool {
	var out [2]bool
	limits := PaddleLimits(w.Field)
	for i := range w.Paddles {
		out[i] = !limits.Contains(w.Paddles[i].Position.Y())
	}
	return out
}

// collidePaddles uses an axis-aligned overlap test between the ball's bounding
// square and each paddle, then adds spin and speed for every paddle that was hit.
func (Simulator) collidePaddles(w *World) [2]bool {
	var hit [2]bool
	ball := &w.Ball

	for _, side := range []Side{Left, Right} {
		if !touches(ball.Position, w.Paddles[side].Position) {
			continue
		}
		hit[side] = true
		if side == Left {
			ball.Velocity[0] = mgl32.Abs(ball.Velocity.X())
		} else {
			ball.Velocity[0] = -mgl32.Abs(ball.Velocity.X())
		}
	}

	if hit[Left] {
		ball.Velocity[1] += SpinGain * w.Paddles[Left].Velocity
		ball.Velocity[0] += RallyBoost
	}
	if hit[Right] {
		ball.Velocity[1] += SpinGain * w.Paddles[Right].Velocity
		ball.Velocity[0] -= RallyBoost
	}
	return hit
}

// score checks both goal lines. When both fire the right-wall reset runs last.
func (Simulator) score(w *World) [2]bool {
	var scored [2]bool
	ball := w.Ball.Position

	if ball.X()-BallRadius <= 0 {
		scored[Right] = true
	}
	if ball.X()+BallRadius >= w.Field.Width {
		scored[Left] = true
	}

	for _, scorer := range []Side{Right, Left} {
		if scored[scorer] {
			w.Score[scorer]++
			w.Reset(scorer)
		}
	}
	return scored
}

func touches(ball, paddle mgl32.Vec2) bool {
	dx := mgl32.Abs(ball.X() - paddle.X())
	dy := mgl32.Abs(ball.Y() - paddle.Y())
	return dx <= BallRadius+PaddleHalfExtent.X() && dy <= BallRadius+PaddleHalfExtent.Y()
}
