package mesh

import "math"

// SphereParams describes a latitude/longitude subdivided sphere.
// Bands must be >= 1 and Radius > 0; callers validate this.
type SphereParams struct {
	LatitudeBands  int
	LongitudeBands int
	Radius         float32
	Center         [3]float32
}

// NewSphere generates a UV sphere.
//
// Vertices are emitted latitude-major: (LatitudeBands+1)*(LongitudeBands+1)
// of them, with the seam column duplicated so texture coordinates wrap.
// Normals are taken from the unit sphere before Center is applied, so they
// stay outward-facing wherever the sphere is placed.
func NewSphere(p SphereParams) *Mesh {
	lat, lon := p.LatitudeBands, p.LongitudeBands
	vertexCount := (lat + 1) * (lon + 1)

	m := &Mesh{
		Positions: make([]float32, 0, vertexCount*3),
		Normals:   make([]float32, 0, vertexCount*3),
		UVs:       make([]float32, 0, vertexCount*2),
		Indices:   make([]uint32, 0, lat*lon*6),
	}

	for latIdx := 0; latIdx <= lat; latIdx++ {
		theta := float64(latIdx) * math.Pi / float64(lat)
		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

		for lonIdx := 0; lonIdx <= lon; lonIdx++ {
			phi := float64(lonIdx) * 2 * math.Pi / float64(lon)
			sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

			x := float32(cosPhi * sinTheta)
			y := float32(cosTheta)
			z := float32(sinPhi * sinTheta)

			m.Normals = append(m.Normals, x, y, z)
			m.UVs = append(m.UVs,
				1-float32(lonIdx)/float32(lon),
				1-float32(latIdx)/float32(lat),
			)
			m.Positions = append(m.Positions,
				p.Center[0]+p.Radius*x,
				p.Center[1]+p.Radius*y,
				p.Center[2]+p.Radius*z,
			)
		}
	}

	for latIdx := 0; latIdx < lat; latIdx++ {
		for lonIdx := 0; lonIdx < lon; lonIdx++ {
			first := uint32(latIdx*(lon+1) + lonIdx)
			second := first + uint32(lon) + 1

			m.Indices = append(m.Indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return m
}
