//go:build gl

// Package opengl implements render.Device on an OpenGL 3.3 core context. A context must
// be current on the calling thread for every method.
package opengl

import (
	"fmt"

	"PongGL/render"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vec2Bytes = 2 * 4

type Device struct {
	program    uint32
	projection int32
}

var _ render.Device = (*Device)(nil)

// NewDevice loads the GL function pointers and builds the instancing shader program.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}

	program, err := newProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}

	d := &Device{
		program:    program,
		projection: gl.GetUniformLocation(program, gl.Str("projection\x00")),
	}
	gl.UseProgram(program)
	return d, nil
}

func (d *Device) GenVertexArray() render.Handle {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return render.Handle(vao)
}

func (d *Device) BindVertexArray(vao render.Handle) {
	gl.BindVertexArray(uint32(vao))
	if vao == 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	}
}

func (d *Device) GenArrayBuffer(data []mgl32.Vec2, usage render.Usage) render.Handle {
	var bo uint32
	gl.GenBuffers(1, &bo)
	gl.BindBuffer(gl.ARRAY_BUFFER, bo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*vec2Bytes, gl.Ptr(data), glUsage(usage))
	return render.Handle(bo)
}

func (d *Device) GenElementBuffer(indices []uint32) render.Handle {
	var bo uint32
	gl.GenBuffers(1, &bo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, bo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	return render.Handle(bo)
}

func (d *Device) UpdateArrayBuffer(buf render.Handle, offset int, data []mgl32.Vec2) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*vec2Bytes, len(data)*vec2Bytes, gl.Ptr(data))
}

func (d *Device) AttribPointer(buf render.Handle, location uint32, divisor uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.VertexAttribPointer(location, 2, gl.FLOAT, false, vec2Bytes, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribDivisor(location, divisor)
}

func (d *Device) DrawElementsInstanced(call render.DrawCall) {
	gl.UseProgram(d.program)
	gl.BindVertexArray(uint32(call.VertexArray))
	gl.DrawElementsInstanced(glMode(call.Mode), int32(call.Count), glIndexType(call.IndexType),
		gl.PtrOffset(call.IndexOffset*4), int32(call.Instances))
	gl.BindVertexArray(0)
}

func (d *Device) DeleteBuffers(bufs ...render.Handle) {
	if len(bufs) == 0 {
		return
	}
	ids := make([]uint32, len(bufs))
	for i, b := range bufs {
		ids[i] = uint32(b)
	}
	gl.DeleteBuffers(int32(len(ids)), &ids[0])
}

func (d *Device) DeleteVertexArray(vao render.Handle) {
	id := uint32(vao)
	gl.DeleteVertexArrays(1, &id)
}

func (d *Device) SetProjection(m mgl32.Mat4) {
	gl.UseProgram(d.program)
	gl.UniformMatrix4fv(d.projection, 1, false, &m[0])
}

func (d *Device) Clear() {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Viewport follows the framebuffer size, which can differ from the window size.
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Close deletes the shader program.
func (d *Device) Close() {
	gl.DeleteProgram(d.program)
}

func glUsage(u render.Usage) uint32 {
	if u == render.Dynamic {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func glMode(render.Primitive) uint32 {
	return gl.TRIANGLES
}

func glIndexType(render.IndexType) uint32 {
	return gl.UNSIGNED_INT
}
