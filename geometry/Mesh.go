package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MinTriangles 扇形圓最少需要的三角形數
const MinTriangles = 3

var (
	ErrTooFewTriangles   = errors.New("geometry: circle needs at least 3 triangles")
	ErrNonPositiveRadius = errors.New("geometry: radius must be positive")
)

// Mesh is one shared piece of geometry: 2D vertices plus a triangle list.
// It is never modified after generation.
type Mesh struct {
	Vertices []mgl32.Vec2
	Indices  []uint32
}

// TriangleCount returns the number of index triples in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Empty reports whether the mesh holds no drawable triangle.
func (m Mesh) Empty() bool {
	return len(m.Vertices) == 0 || len(m.Indices) < 3
}

// Circle builds a triangle fan around the origin approximating a disc.
//
// Vertex 0 is the origin and vertex i (1..n) sits at angle (i-1)*2π/n. Triangle i
// is (0, i, i+1) except the last one, which closes the fan back onto vertex 1.
func Circle(triangleCount int, radius float32) (Mesh, error) {
	if triangleCount < MinTriangles {
		return Mesh{}, fmt.Errorf("%w: got %d", ErrTooFewTriangles, triangleCount)
	}
	if !(radius > 0) {
		return Mesh{}, fmt.Errorf("%w: got %v", ErrNonPositiveRadius, radius)
	}

	vertices := make([]mgl32.Vec2, triangleCount+1)
	indices := make([]uint32, 3*triangleCount)

	step := 2 * math.Pi / float64(triangleCount)
	r := float64(radius)
	for i := 0; i < triangleCount; i++ {
		theta := float64(i) * step
		vertices[i+1] = mgl32.Vec2{float32(r * math.Cos(theta)), float32(r * math.Sin(theta))}

		indices[i*3+0] = 0
		indices[i*3+1] = uint32(i + 1)
		indices[i*3+2] = uint32(i + 2)
	}

	//最後一個三角形接回第一個頂點
	indices[len(indices)-1] = 1

	return Mesh{Vertices: vertices, Indices: indices}, nil
}

// Quad returns the unit paddle rectangle centred on the origin.
func Quad() Mesh {
	return Mesh{
		Vertices: []mgl32.Vec2{
			{0.5, 0.5},
			{-0.5, 0.5},
			{-0.5, -0.5},
			{0.5, -0.5},
		},
		Indices: []uint32{
			0, 1, 2, // top left
			2, 3, 0, // bottom right
		},
	}
}
