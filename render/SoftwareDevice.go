package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is one projected triangle produced by SoftwareDevice. NDC holds the
// normalized device coordinates, World the positions before projection.
type Triangle struct {
	Instance int
	World    [3]mgl32.Vec2
	NDC      [3]mgl32.Vec2
}

// TriangleSink receives the output of SoftwareDevice, e.g. a rasterizer.
type TriangleSink interface {
	Clear()
	Triangle(t Triangle)
}

type swBuffer struct {
	usage   Usage
	data    []mgl32.Vec2
	indices []uint32
	element bool
}

type swAttrib struct {
	buf     Handle
	divisor uint32
}

type swVertexArray struct {
	attribs map[uint32]swAttrib
	elem    Handle
}

// SoftwareDevice runs the instanced vertex stage on the CPU:
//
//	ndc = projection * (position * size + offset)
//
// with position at location 0, offset at 1 and size at 2. An attribute with divisor
// d > 0 is read at element instance/d, otherwise at the vertex index.
type SoftwareDevice struct {
	sink       TriangleSink
	projection mgl32.Mat4

	next    Handle
	bound   Handle
	buffers map[Handle]*swBuffer
	arrays  map[Handle]*swVertexArray

	DrawCalls int
	Writes    int
}

func NewSoftwareDevice(sink TriangleSink) *SoftwareDevice {
	return &SoftwareDevice{
		sink:       sink,
		projection: mgl32.Ident4(),
		buffers:    make(map[Handle]*swBuffer),
		arrays:     make(map[Handle]*swVertexArray),
	}
}

func (d *SoftwareDevice) handle() Handle {
	d.next++
	return d.next
}

func (d *SoftwareDevice) GenVertexArray() Handle {
	h := d.handle()
	d.arrays[h] = &swVertexArray{attribs: make(map[uint32]swAttrib)}
	return h
}

func (d *SoftwareDevice) BindVertexArray(vao Handle) {
	d.bound = vao
}

func (d *SoftwareDevice) GenArrayBuffer(data []mgl32.Vec2, usage Usage) Handle {
	h := d.handle()
	d.buffers[h] = &swBuffer{usage: usage, data: append([]mgl32.Vec2(nil), data...)}
	return h
}

// GenElementBuffer attaches the index buffer to the bound vertex array.
func (d *SoftwareDevice) GenElementBuffer(indices []uint32) Handle {
	h := d.handle()
	d.buffers[h] = &swBuffer{usage: Static, indices: append([]uint32(nil), indices...), element: true}
	if vao, ok := d.arrays[d.bound]; ok {
		vao.elem = h
	}
	return h
}

func (d *SoftwareDevice) UpdateArrayBuffer(buf Handle, offset int, data []mgl32.Vec2) {
	b, ok := d.buffers[buf]
	if !ok || b.element {
		panic(fmt.Sprintf("render: update of unknown array buffer %d", buf))
	}
	if offset < 0 || offset+len(data) > len(b.data) {
		panic(fmt.Sprintf("render: update [%d,%d) outside buffer %d of %d elements", offset, offset+len(data), buf, len(b.data)))
	}
	copy(b.data[offset:], data)
	d.Writes++
}

func (d *SoftwareDevice) AttribPointer(buf Handle, location uint32, divisor uint32) {
	vao, ok := d.arrays[d.bound]
	if !ok {
		panic("render: attribute pointer without a bound vertex array")
	}
	vao.attribs[location] = swAttrib{buf: buf, divisor: divisor}
}

func (d *SoftwareDevice) DrawElementsInstanced(call DrawCall) {
	d.DrawCalls++

	vao, ok := d.arrays[call.VertexArray]
	if !ok {
		panic(fmt.Sprintf("render: draw of unknown vertex array %d", call.VertexArray))
	}
	elem, ok := d.buffers[vao.elem]
	if !ok || call.IndexOffset < 0 || call.IndexOffset+call.Count > len(elem.indices) {
		panic(fmt.Sprintf("render: draw range [%d,%d) outside element buffer", call.IndexOffset, call.IndexOffset+call.Count))
	}
	indices := elem.indices[call.IndexOffset : call.IndexOffset+call.Count]

	for instance := 0; instance < call.Instances; instance++ {
		for t := 0; t+2 < len(indices); t += 3 {
			var tri Triangle
			tri.Instance = instance
			for k := 0; k < 3; k++ {
				vertex := int(indices[t+k])
				pos := d.fetch(vao, PositionLocation, vertex, instance, mgl32.Vec2{})
				offset := d.fetch(vao, OffsetLocation, vertex, instance, mgl32.Vec2{})
				size := d.fetch(vao, SizeLocation, vertex, instance, mgl32.Vec2{1, 1})

				world := mgl32.Vec2{pos.X()*size.X() + offset.X(), pos.Y()*size.Y() + offset.Y()}
				clip := d.projection.Mul4x1(mgl32.Vec4{world.X(), world.Y(), 0, 1})

				tri.World[k] = world
				tri.NDC[k] = mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
			}
			if d.sink != nil {
				d.sink.Triangle(tri)
			}
		}
	}
}

func (d *SoftwareDevice) fetch(vao *swVertexArray, location uint32, vertex, instance int, fallback mgl32.Vec2) mgl32.Vec2 {
	attr, ok := vao.attribs[location]
	if !ok {
		return fallback
	}
	b := d.buffers[attr.buf]

	element := vertex
	if attr.divisor > 0 {
		element = int(uint32(instance) / attr.divisor)
	}
	if b == nil || element >= len(b.data) {
		panic(fmt.Sprintf("render: attribute %d reads element %d past buffer end", location, element))
	}
	return b.data[element]
}

func (d *SoftwareDevice) DeleteBuffers(bufs ...Handle) {
	for _, h := range bufs {
		delete(d.buffers, h)
	}
}

func (d *SoftwareDevice) DeleteVertexArray(vao Handle) {
	delete(d.arrays, vao)
	if d.bound == vao {
		d.bound = 0
	}
}

func (d *SoftwareDevice) SetProjection(m mgl32.Mat4) {
	d.projection = m
}

func (d *SoftwareDevice) Clear() {
	if d.sink != nil {
		d.sink.Clear()
	}
}

// BufferData returns a copy of an array buffer's contents.
func (d *SoftwareDevice) BufferData(buf Handle) []mgl32.Vec2 {
	b, ok := d.buffers[buf]
	if !ok {
		return nil
	}
	return append([]mgl32.Vec2(nil), b.data...)
}

// Live returns how many buffers and vertex arrays are still allocated.
func (d *SoftwareDevice) Live() (buffers, arrays int) {
	return len(d.buffers), len(d.arrays)
}
