package mesh

import (
	"math"
	"testing"
)

func TestSphereCounts(t *testing.T) {
	tests := []struct {
		lat, lon int
	}{
		{1, 1},
		{1, 3},
		{2, 2},
		{3, 7},
		{30, 30},
		{64, 32},
	}

	for _, tt := range tests {
		m := NewSphere(SphereParams{LatitudeBands: tt.lat, LongitudeBands: tt.lon, Radius: 2})

		wantVerts := (tt.lat + 1) * (tt.lon + 1)
		if got := m.VertexCount(); got != wantVerts {
			t.Errorf("lat=%d lon=%d: vertex count = %d, want %d", tt.lat, tt.lon, got, wantVerts)
		}
		if got := len(m.Normals) / 3; got != wantVerts {
			t.Errorf("lat=%d lon=%d: normal count = %d, want %d", tt.lat, tt.lon, got, wantVerts)
		}
		if got := len(m.UVs) / 2; got != wantVerts {
			t.Errorf("lat=%d lon=%d: uv count = %d, want %d", tt.lat, tt.lon, got, wantVerts)
		}

		wantTris := 2 * tt.lat * tt.lon
		if got := m.TriangleCount(); got != wantTris {
			t.Errorf("lat=%d lon=%d: triangle count = %d, want %d", tt.lat, tt.lon, got, wantTris)
		}

		if err := m.Validate(); err != nil {
			t.Errorf("lat=%d lon=%d: Validate() = %v", tt.lat, tt.lon, err)
		}
	}
}

func TestSphereUnitNormals(t *testing.T) {
	params := []SphereParams{
		{LatitudeBands: 30, LongitudeBands: 30, Radius: 4},
		{LatitudeBands: 30, LongitudeBands: 30, Radius: 1, Center: [3]float32{5, -3, 0}},
		{LatitudeBands: 7, LongitudeBands: 11, Radius: 0.25, Center: [3]float32{-100, 42, 9}},
	}

	for _, p := range params {
		m := NewSphere(p)
		for i := 0; i < len(m.Normals); i += 3 {
			nx, ny, nz := float64(m.Normals[i]), float64(m.Normals[i+1]), float64(m.Normals[i+2])
			length := math.Sqrt(nx*nx + ny*ny + nz*nz)
			if math.Abs(length-1) > 1e-5 {
				t.Fatalf("params %+v: normal %d has length %v, want 1", p, i/3, length)
			}
		}
	}
}

func TestSpherePositionsFollowCenterAndRadius(t *testing.T) {
	p := SphereParams{LatitudeBands: 12, LongitudeBands: 18, Radius: 3, Center: [3]float32{5, -3, 1}}
	m := NewSphere(p)

	for v := 0; v < m.VertexCount(); v++ {
		for axis := 0; axis < 3; axis++ {
			want := p.Center[axis] + p.Radius*m.Normals[v*3+axis]
			got := m.Positions[v*3+axis]
			if abs(got-want) > 1e-5 {
				t.Fatalf("vertex %d axis %d: position %v, want %v", v, axis, got, want)
			}
		}
	}

	b := m.Bounds()
	for axis := 0; axis < 3; axis++ {
		if b.Min[axis] < p.Center[axis]-p.Radius-1e-4 || b.Max[axis] > p.Center[axis]+p.Radius+1e-4 {
			t.Errorf("axis %d: bounds %v..%v escape center %v radius %v", axis, b.Min[axis], b.Max[axis], p.Center[axis], p.Radius)
		}
	}
}

func TestSphereTwoByTwo(t *testing.T) {
	m := NewSphere(SphereParams{LatitudeBands: 2, LongitudeBands: 2, Radius: 1})

	if m.VertexCount() != 9 {
		t.Fatalf("vertex count = %d, want 9", m.VertexCount())
	}
	if len(m.Indices) != 24 {
		t.Fatalf("index count = %d, want 24", len(m.Indices))
	}
	if m.TriangleCount() != 8 {
		t.Fatalf("triangle count = %d, want 8", m.TriangleCount())
	}

	// The whole top ring collapses onto the north pole.
	for lon := 0; lon <= 2; lon++ {
		x, y, z := m.Positions[lon*3], m.Positions[lon*3+1], m.Positions[lon*3+2]
		if abs(x) > 1e-6 || abs(y-1) > 1e-6 || abs(z) > 1e-6 {
			t.Errorf("top ring vertex %d = (%v, %v, %v), want (0, 1, 0)", lon, x, y, z)
		}
	}

	wantIndices := []uint32{
		0, 3, 1, 3, 4, 1,
		1, 4, 2, 4, 5, 2,
		3, 6, 4, 6, 7, 4,
		4, 7, 5, 7, 8, 5,
	}
	for i, want := range wantIndices {
		if m.Indices[i] != want {
			t.Errorf("index %d = %d, want %d", i, m.Indices[i], want)
		}
	}

	wantUVs := []float32{
		1, 1, 0.5, 1, 0, 1,
		1, 0.5, 0.5, 0.5, 0, 0.5,
		1, 0, 0.5, 0, 0, 0,
	}
	for i, want := range wantUVs {
		if m.UVs[i] != want {
			t.Errorf("uv %d = %v, want %v", i, m.UVs[i], want)
		}
	}
}

func TestSphereDeterministic(t *testing.T) {
	p := SphereParams{LatitudeBands: 30, LongitudeBands: 30, Radius: 1, Center: [3]float32{5, -3, 0}}
	a := NewSphere(p)
	b := NewSphere(p)

	if !equalBits(a.Positions, b.Positions) || !equalBits(a.Normals, b.Normals) || !equalBits(a.UVs, b.UVs) {
		t.Fatal("vertex attributes differ between identical calls")
	}
	if len(a.Indices) != len(b.Indices) {
		t.Fatal("index lengths differ between identical calls")
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs: %d vs %d", i, a.Indices[i], b.Indices[i])
		}
	}
}

func TestValidateRejectsBadIndex(t *testing.T) {
	m := NewSphere(SphereParams{LatitudeBands: 2, LongitudeBands: 2, Radius: 1})
	m.Indices[5] = 9

	if err := m.Validate(); err == nil {
		t.Error("expected out-of-range index to fail validation")
	}
}

func TestValidateRejectsMismatchedArrays(t *testing.T) {
	m := NewSphere(SphereParams{LatitudeBands: 2, LongitudeBands: 2, Radius: 1})
	m.UVs = m.UVs[:len(m.UVs)-2]

	if err := m.Validate(); err == nil {
		t.Error("expected short uv array to fail validation")
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func equalBits(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}
