package render

import (
	"testing"

	"PongGL/geometry"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	clears    int
	triangles []Triangle
}

func (r *recorder) Clear() {
	r.clears++
	r.triangles = r.triangles[:0]
}

func (r *recorder) Triangle(t Triangle) {
	r.triangles = append(r.triangles, t)
}

func paddleBuffer(t *testing.T, dev Device) *InstancedBuffer {
	t.Helper()
	buf, err := NewInstancedBuffer(dev, geometry.Quad(),
		StreamSpec{Name: "offset", Usage: Dynamic, Rate: PerInstance(), Data: []mgl32.Vec2{{20, 300}, {780, 300}}},
		StreamSpec{Name: "size", Usage: Static, Rate: Constant(), Data: []mgl32.Vec2{{10, 100}}},
	)
	require.NoError(t, err)
	return buf
}

func TestNewInstancedBufferRejectsEmptyInput(t *testing.T) {
	dev := NewSoftwareDevice(nil)

	_, err := NewInstancedBuffer(dev, geometry.Mesh{})
	assert.ErrorIs(t, err, ErrEmptyMesh)

	_, err = NewInstancedBuffer(dev, geometry.Quad(), StreamSpec{Name: "offset", Usage: Dynamic, Rate: PerInstance()})
	assert.ErrorIs(t, err, ErrEmptyStream)

	buffers, arrays := dev.Live()
	assert.Zero(t, buffers)
	assert.Zero(t, arrays)
}

func TestDrawSharesConstantSize(t *testing.T) {
	rec := &recorder{}
	dev := NewSoftwareDevice(rec)
	buf := paddleBuffer(t, dev)

	require.NoError(t, buf.Draw(2))
	require.Len(t, rec.triangles, 4)
	assert.Equal(t, 1, dev.DrawCalls)

	// 第一個頂點 (0.5, 0.5) * (10, 100) + offset
	assert.Equal(t, mgl32.Vec2{25, 350}, rec.triangles[0].World[0])
	assert.Equal(t, mgl32.Vec2{785, 350}, rec.triangles[2].World[0])
	assert.Equal(t, 0, rec.triangles[1].Instance)
	assert.Equal(t, 1, rec.triangles[3].Instance)
}

func TestDrawEveryNInstances(t *testing.T) {
	rec := &recorder{}
	dev := NewSoftwareDevice(rec)
	buf, err := NewInstancedBuffer(dev, geometry.Quad(),
		StreamSpec{Name: "offset", Usage: Dynamic, Rate: PerInstance(), Data: []mgl32.Vec2{{0, 0}, {10, 0}, {20, 0}, {30, 0}}},
		StreamSpec{Name: "size", Usage: Static, Rate: EveryN(2), Data: []mgl32.Vec2{{1, 1}, {2, 2}}},
	)
	require.NoError(t, err)

	require.NoError(t, buf.Draw(4))
	require.Len(t, rec.triangles, 8)

	sizes := []float32{1, 1, 2, 2}
	for instance, size := range sizes {
		tri := rec.triangles[instance*2]
		require.Equal(t, instance, tri.Instance)
		assert.Equal(t, float32(instance*10)+0.5*size, tri.World[0].X(), "instance %d", instance)
	}

	assert.ErrorIs(t, buf.Draw(5), ErrTooManyDraws)
}

func TestDrawAppliesProjection(t *testing.T) {
	rec := &recorder{}
	dev := NewSoftwareDevice(rec)
	dev.SetProjection(mgl32.Ortho(0, 800, 0, 600, 0, 1))

	circle, err := geometry.Circle(20, 0.5)
	require.NoError(t, err)
	buf, err := NewInstancedBuffer(dev, circle,
		StreamSpec{Name: "offset", Usage: Dynamic, Rate: PerInstance(), Data: []mgl32.Vec2{{400, 300}}},
		StreamSpec{Name: "size", Usage: Static, Rate: Constant(), Data: []mgl32.Vec2{{20, 20}}},
	)
	require.NoError(t, err)

	require.NoError(t, buf.Draw(1))
	require.Len(t, rec.triangles, 20)

	// origin of the fan lands in the middle of the screen
	assert.InDelta(t, 0, rec.triangles[0].NDC[0].X(), 1e-6)
	assert.InDelta(t, 0, rec.triangles[0].NDC[0].Y(), 1e-6)
	assert.InDelta(t, 10.0/400, rec.triangles[0].NDC[1].X(), 1e-6)
}

func TestUpdateInstanceStream(t *testing.T) {
	dev := NewSoftwareDevice(nil)
	buf := paddleBuffer(t, dev)
	offsets := buf.streams[0].buf

	require.NoError(t, buf.UpdateInstanceStream(0, 1, []mgl32.Vec2{{780, 120}}))
	assert.Equal(t, []mgl32.Vec2{{20, 300}, {780, 120}}, dev.BufferData(offsets))

	require.NoError(t, buf.UpdateInstanceStream(0, 0, []mgl32.Vec2{{21, 1}, {779, 2}}))
	assert.Equal(t, []mgl32.Vec2{{21, 1}, {779, 2}}, dev.BufferData(offsets))
	assert.Equal(t, 2, dev.Writes)
}

func TestUpdateInstanceStreamRejectsBadRanges(t *testing.T) {
	dev := NewSoftwareDevice(nil)
	buf := paddleBuffer(t, dev)
	offsets := buf.streams[0].buf

	err := buf.UpdateInstanceStream(0, 1, []mgl32.Vec2{{1, 1}, {2, 2}})
	assert.ErrorIs(t, err, ErrOutOfRange)
	err = buf.UpdateInstanceStream(0, 0, []mgl32.Vec2{{1, 1}, {2, 2}, {3, 3}})
	assert.ErrorIs(t, err, ErrOutOfRange)
	err = buf.UpdateInstanceStream(0, -1, []mgl32.Vec2{{1, 1}})
	assert.ErrorIs(t, err, ErrOutOfRange)

	// nothing is truncated into the buffer on rejection
	assert.Equal(t, []mgl32.Vec2{{20, 300}, {780, 300}}, dev.BufferData(offsets))
	assert.Zero(t, dev.Writes)

	assert.ErrorIs(t, buf.UpdateInstanceStream(1, 0, []mgl32.Vec2{{1, 1}}), ErrStaticStream)
	assert.ErrorIs(t, buf.UpdateInstanceStream(7, 0, []mgl32.Vec2{{1, 1}}), ErrUnknownStream)
	assert.Equal(t, 2, buf.Capacity(0))
	assert.Zero(t, buf.Capacity(7))
}

func TestDestroy(t *testing.T) {
	dev := NewSoftwareDevice(nil)
	buf := paddleBuffer(t, dev)

	buffers, arrays := dev.Live()
	assert.Equal(t, 4, buffers)
	assert.Equal(t, 1, arrays)

	require.NoError(t, buf.Destroy())
	buffers, arrays = dev.Live()
	assert.Zero(t, buffers)
	assert.Zero(t, arrays)
	assert.True(t, buf.Mesh().Empty())

	assert.ErrorIs(t, buf.Destroy(), ErrDestroyed)
	assert.ErrorIs(t, buf.Draw(2), ErrDestroyed)
	assert.ErrorIs(t, buf.UpdateInstanceStream(0, 0, []mgl32.Vec2{{1, 1}}), ErrDestroyed)
}
