package render

import (
	"errors"
	"fmt"

	"PongGL/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrEmptyMesh     = errors.New("render: mesh has no triangles")
	ErrEmptyStream   = errors.New("render: instance stream has no elements")
	ErrUnknownStream = errors.New("render: unknown instance stream")
	ErrStaticStream  = errors.New("render: instance stream is static")
	ErrOutOfRange    = errors.New("render: write outside instance stream capacity")
	ErrTooManyDraws  = errors.New("render: instance count exceeds stream contents")
	ErrDestroyed     = errors.New("render: buffer already destroyed")
)

// StreamID indexes the instance streams of a buffer in declaration order.
type StreamID int

// StreamSpec declares one per-instance attribute stream. The length of Data fixes
// the stream capacity for the lifetime of the buffer.
type StreamSpec struct {
	Name  string
	Usage Usage
	Rate  AdvanceRate
	Data  []mgl32.Vec2
}

type instanceStream struct {
	name     string
	usage    Usage
	rate     AdvanceRate
	capacity int
	location uint32
	buf      Handle
}

// InstancedBuffer binds one shared mesh to a set of instance streams and draws the
// mesh once per instance.
type InstancedBuffer struct {
	dev     Device
	mesh    geometry.Mesh
	vao     Handle
	posBuf  Handle
	elemBuf Handle
	streams []instanceStream

	destroyed bool
}

// NewInstancedBuffer uploads mesh and streams to dev. Stream i is bound to attribute
// location i+1; location 0 carries the mesh vertices.
func NewInstancedBuffer(dev Device, mesh geometry.Mesh, streams ...StreamSpec) (*InstancedBuffer, error) {
	if mesh.Empty() {
		return nil, ErrEmptyMesh
	}
	for _, s := range streams {
		if len(s.Data) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyStream, s.Name)
		}
	}

	b := &InstancedBuffer{
		dev:     dev,
		mesh:    mesh,
		streams: make([]instanceStream, 0, len(streams)),
	}

	b.vao = dev.GenVertexArray()
	dev.BindVertexArray(b.vao)

	b.posBuf = dev.GenArrayBuffer(mesh.Vertices, Static)
	dev.AttribPointer(b.posBuf, PositionLocation, 0)

	for i, s := range streams {
		stream := instanceStream{
			name:     s.Name,
			usage:    s.Usage,
			rate:     s.Rate,
			capacity: len(s.Data),
			location: PositionLocation + 1 + uint32(i),
		}
		stream.buf = dev.GenArrayBuffer(s.Data, s.Usage)
		dev.AttribPointer(stream.buf, stream.location, s.Rate.Divisor())
		b.streams = append(b.streams, stream)
	}

	b.elemBuf = dev.GenElementBuffer(mesh.Indices)
	dev.BindVertexArray(0)

	return b, nil
}

// Mesh returns the geometry shared by every instance.
func (b *InstancedBuffer) Mesh() geometry.Mesh {
	return b.mesh
}

// Capacity returns the element capacity of a stream, or zero for an unknown id.
func (b *InstancedBuffer) Capacity(id StreamID) int {
	if id < 0 || int(id) >= len(b.streams) {
		return 0
	}
	return b.streams[id].capacity
}

// UpdateInstanceStream overwrites values starting at element offset of a dynamic
// stream. The whole range has to fit in the stream; nothing is written otherwise.
func (b *InstancedBuffer) UpdateInstanceStream(id StreamID, offset int, values []mgl32.Vec2) error {
	if b.destroyed {
		return ErrDestroyed
	}
	if id < 0 || int(id) >= len(b.streams) {
		return fmt.Errorf("%w: %d", ErrUnknownStream, id)
	}
	s := b.streams[id]
	if s.usage != Dynamic {
		return fmt.Errorf("%w: %s", ErrStaticStream, s.name)
	}
	if offset < 0 || offset+len(values) > s.capacity {
		return fmt.Errorf("%w: %s [%d,%d) capacity %d", ErrOutOfRange, s.name, offset, offset+len(values), s.capacity)
	}
	if len(values) == 0 {
		return nil
	}

	b.dev.UpdateArrayBuffer(s.buf, offset, values)
	return nil
}

// Draw renders every triangle of the mesh instanceCount times.
func (b *InstancedBuffer) Draw(instanceCount int) error {
	if b.destroyed {
		return ErrDestroyed
	}
	for _, s := range b.streams {
		if s.rate.Elements(instanceCount) > s.capacity {
			return fmt.Errorf("%w: %s needs %d elements for %d instances, holds %d",
				ErrTooManyDraws, s.name, s.rate.Elements(instanceCount), instanceCount, s.capacity)
		}
	}

	b.dev.DrawElementsInstanced(DrawCall{
		VertexArray: b.vao,
		Mode:        Triangles,
		Count:       len(b.mesh.Indices),
		IndexType:   UnsignedInt,
		IndexOffset: 0,
		Instances:   instanceCount,
	})
	return nil
}

// Destroy releases every device resource held by the buffer together with the mesh.
func (b *InstancedBuffer) Destroy() error {
	if b.destroyed {
		return ErrDestroyed
	}
	b.destroyed = true

	bufs := make([]Handle, 0, len(b.streams)+2)
	bufs = append(bufs, b.posBuf)
	for _, s := range b.streams {
		bufs = append(bufs, s.buf)
	}
	bufs = append(bufs, b.elemBuf)
	b.dev.DeleteBuffers(bufs...)
	b.dev.DeleteVertexArray(b.vao)

	b.mesh = geometry.Mesh{}
	b.streams = nil
	return nil
}
