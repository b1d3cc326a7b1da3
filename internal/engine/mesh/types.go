// Package mesh builds CPU-side triangle meshes ready for GPU upload.
package mesh

import "fmt"

// Mesh holds parallel vertex attribute arrays and a triangle index list.
// Positions and Normals carry 3 floats per vertex, UVs carry 2.
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the attribute arrays are parallel and every index
// references an existing vertex.
func (m *Mesh) Validate() error {
	n := m.VertexCount()
	if len(m.Positions) != n*3 {
		return fmt.Errorf("positions: length %d is not a multiple of 3", len(m.Positions))
	}
	if len(m.Normals) != n*3 {
		return fmt.Errorf("normals: got %d floats, want %d", len(m.Normals), n*3)
	}
	if len(m.UVs) != n*2 {
		return fmt.Errorf("uvs: got %d floats, want %d", len(m.UVs), n*2)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("indices: length %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d: %d out of range (vertex count %d)", i, idx, n)
		}
	}
	return nil
}

// Bounds computes the bounding box of the vertex positions.
func (m *Mesh) Bounds() Bounds {
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for i := 0; i+2 < len(m.Positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := m.Positions[i+axis]
			if v < b.Min[axis] {
				b.Min[axis] = v
			}
			if v > b.Max[axis] {
				b.Max[axis] = v
			}
		}
	}
	return b
}
