package core

// Controls is the key state sampled once per frame.
type Controls struct {
	Up   [2]bool
	Down [2]bool
	Quit bool
}

// ApplyControls turns held keys into paddle velocities. A paddle only gets a
// velocity while PaddleLimits lets it move that way, so the simulator never clamps.
// Holding both keys moves the paddle down.
func (w *World) ApplyControls(c Controls) {
	limits := PaddleLimits(w.Field)

	for _, side := range []Side{Left, Right} {
		p := &w.Paddles[side]
		p.Velocity = 0

		y := p.Position.Y()
		if c.Up[side] && limits.Allows(y, PaddleSpeed) {
			p.Velocity = PaddleSpeed
		}
		if c.Down[side] && limits.Allows(y, -PaddleSpeed) {
			p.Velocity = -PaddleSpeed
		}
	}
}
