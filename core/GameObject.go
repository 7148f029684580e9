package core

import "github.com/go-gl/mathgl/mgl32"

const (
	PaddleSpeed      float32 = 600
	PaddleHeight     float32 = 100
	PaddleWidth      float32 = 10
	BallDiameter     float32 = 20
	BallRadius               = BallDiameter / 2
	HalfPaddleWidth          = PaddleWidth / 2
	HalfPaddleHeight         = PaddleHeight / 2

	// PaddleInset 球拍離左右邊界的距離
	PaddleInset float32 = 20

	// SpinGain 球拍速度轉移到球的比例
	SpinGain float32 = 0.2
	// RallyBoost 每次擊球後水平速度增加量
	RallyBoost float32 = 5

	// BallTriangles 球的扇形三角形數
	BallTriangles = 20
)

// InitialBallVelocity is the serve velocity; its x sign is re-aimed on every reset.
var InitialBallVelocity = mgl32.Vec2{150, 150}

// PaddleHalfExtent is shared by both paddles.
var PaddleHalfExtent = mgl32.Vec2{HalfPaddleWidth, HalfPaddleHeight}

// Side identifies a paddle and the player behind it.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	return 1 - s
}

// Field is the playing area. Width and height are expected to stay positive.
type Field struct {
	Width, Height float32
}

// Center returns the middle of the field.
func (f Field) Center() mgl32.Vec2 {
	return mgl32.Vec2{f.Width / 2, f.Height / 2}
}

type Paddle struct {
	Position mgl32.Vec2
	// Velocity is vertical only, zero unless a control is held.
	Velocity float32
}

type Ball struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
}
