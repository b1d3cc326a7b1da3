package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/engine/mesh"
	"github.com/Faultbox/globe/internal/engine/scene"
)

// gpuMesh holds the buffers of one uploaded mesh. Position, normal and
// texture coordinate data live in separate buffers.
type gpuMesh struct {
	vao        uint32
	positions  uint32
	normals    uint32
	uvs        uint32
	ebo        uint32
	indexCount int32
}

func (m *gpuMesh) delete() {
	buffers := []uint32{m.positions, m.normals, m.uvs, m.ebo}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = gpuMesh{}
}

// UploadMesh copies m into GPU buffers and returns a handle for drawing it.
func (r *Renderer) UploadMesh(m *mesh.Mesh) (scene.MeshHandle, error) {
	if err := m.Validate(); err != nil {
		return 0, fmt.Errorf("uploading mesh: %w", err)
	}
	if len(m.Indices) == 0 {
		return 0, fmt.Errorf("uploading mesh: no indices")
	}

	var g gpuMesh
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	g.positions = arrayBuffer(m.Positions)
	gl.VertexAttribPointer(r.attrPosition, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(r.attrPosition)

	g.uvs = arrayBuffer(m.UVs)
	gl.VertexAttribPointer(r.attrTexCoord, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(r.attrTexCoord)

	g.normals = arrayBuffer(m.Normals)
	if r.hasNormal {
		// Enabled per draw call.
		gl.VertexAttribPointer(r.attrNormal, 3, gl.FLOAT, false, 0, nil)
	}

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	g.indexCount = int32(len(m.Indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := checkError("uploading mesh"); err != nil {
		g.delete()
		return 0, err
	}

	r.meshes = append(r.meshes, g)
	handle := scene.MeshHandle(len(r.meshes))
	bounds := m.Bounds()
	r.log.Debug("mesh uploaded",
		zap.Uint32("handle", uint32(handle)),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
		zap.Float32s("min", bounds.Min[:]),
		zap.Float32s("max", bounds.Max[:]),
	)
	return handle, nil
}

// mesh resolves a handle. Handles start at 1 so the zero value is invalid.
func (r *Renderer) mesh(h scene.MeshHandle) (*gpuMesh, bool) {
	i := int(h) - 1
	if i < 0 || i >= len(r.meshes) || r.meshes[i].vao == 0 {
		return nil, false
	}
	return &r.meshes[i], true
}

func arrayBuffer(data []float32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	return buf
}
