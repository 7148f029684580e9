package core

// PaddleMargin keeps a paddle one ball radius away from the walls.
const PaddleMargin = HalfPaddleHeight + BallRadius

// Limits is the vertical travel allowed to a paddle centre.
type Limits struct {
	Min, Max float32
}

// PaddleLimits is the one place the paddle travel range is derived from the field.
func PaddleLimits(field Field) Limits {
	return Limits{Min: PaddleMargin, Max: field.Height - PaddleMargin}
}

// CanMoveUp reports whether a paddle at y may start moving up.
func (l Limits) CanMoveUp(y float32) bool {
	return y < l.Max
}

// CanMoveDown reports whether a paddle at y may start moving down.
func (l Limits) CanMoveDown(y float32) bool {
	return y > l.Min
}

// Allows reports whether a paddle at y may move with velocity.
func (l Limits) Allows(y, velocity float32) bool {
	switch {
	case velocity > 0:
		return l.CanMoveUp(y)
	case velocity < 0:
		return l.CanMoveDown(y)
	}
	return true
}

// Contains reports whether y lies inside the travel range.
func (l Limits) Contains(y float32) bool {
	return y >= l.Min && y <= l.Max
}
