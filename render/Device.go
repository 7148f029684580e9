package render

import "github.com/go-gl/mathgl/mgl32"

// Handle names a device-side object (vertex array or buffer). Zero is never a valid handle.
type Handle uint32

type Usage int

const (
	// Static streams are written once at creation.
	Static Usage = iota
	// Dynamic streams may be rewritten every frame.
	Dynamic
)

func (u Usage) String() string {
	if u == Dynamic {
		return "dynamic"
	}
	return "static"
}

type Primitive int

const (
	Triangles Primitive = iota
)

type IndexType int

const (
	UnsignedInt IndexType = iota
)

// DrawCall mirrors an indexed instanced draw: which geometry, how many indices of
// which type starting where, and how many instances.
type DrawCall struct {
	VertexArray Handle
	Mode        Primitive
	Count       int
	IndexType   IndexType
	IndexOffset int
	Instances   int
}

// Device is the graphics primitive layer buffers are built on. Every attribute holds
// two floats per element; offsets passed to UpdateArrayBuffer count elements.
type Device interface {
	GenVertexArray() Handle
	BindVertexArray(vao Handle)
	GenArrayBuffer(data []mgl32.Vec2, usage Usage) Handle
	GenElementBuffer(indices []uint32) Handle
	UpdateArrayBuffer(buf Handle, offset int, data []mgl32.Vec2)
	AttribPointer(buf Handle, location uint32, divisor uint32)
	DrawElementsInstanced(call DrawCall)
	DeleteBuffers(bufs ...Handle)
	DeleteVertexArray(vao Handle)

	SetProjection(m mgl32.Mat4)
	Clear()
}

// Attribute locations shared by every shader/vertex stage.
const (
	PositionLocation uint32 = 0
	OffsetLocation   uint32 = 1
	SizeLocation     uint32 = 2
)
