package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Geometry holds vertex positions in normalized device coordinates.
type Geometry struct {
	Positions []mgl32.Vec3
}

// Triangle returns the canonical centered triangle.
func Triangle() Geometry {
	return Geometry{
		Positions: []mgl32.Vec3{
			{-0.5, -0.5, 0},
			{0.5, -0.5, 0},
			{0, 0.5, 0},
		},
	}
}

// Float32 flattens the positions into the upload array, x y z per
// vertex in order.
func (g Geometry) Float32() []float32 {
	data := make([]float32, 0, len(g.Positions)*3)
	for _, p := range g.Positions {
		data = append(data, p.X(), p.Y(), p.Z())
	}
	return data
}

// Layout describes the single position attribute: slot 0, three
// tightly packed floats per vertex, not normalized.
func (g Geometry) Layout() VertexLayout {
	return VertexLayout{
		Attrib: 0,
		Size:   3,
		Stride: 3 * 4,
		Offset: 0,
	}
}
