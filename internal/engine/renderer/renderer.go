// Package renderer draws scene meshes with OpenGL.
// Every method must be called on the thread that owns the GL context.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/engine/scene"
	"github.com/Faultbox/globe/internal/engine/shader"
	"github.com/Faultbox/globe/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	ClearColor [4]float32
}

// Renderer implements scene.Graphics on an OpenGL 4.1 core context.
type Renderer struct {
	log     *zap.Logger
	program *shader.Program

	attrPosition uint32
	attrTexCoord uint32
	attrNormal   uint32
	hasNormal    bool

	uModelView  int32
	uProjection int32
	uSampler    int32

	meshes   []gpuMesh
	textures []uint32
}

var _ scene.Graphics = (*Renderer)(nil)

// New initializes GL and builds the globe program.
// It must be called after the GL context is created.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	r := &Renderer{log: logger.Named("renderer")}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	prog, err := shader.New(shader.GlobeVertex, shader.GlobeFragment)
	if err != nil {
		return nil, fmt.Errorf("building globe program: %w", err)
	}
	r.program = prog
	if err := r.lookupLocations(); err != nil {
		prog.Delete()
		return nil, err
	}

	return r, nil
}

func (r *Renderer) lookupLocations() error {
	var err error
	if r.attrPosition, err = r.program.Attrib(shader.AttribPosition); err != nil {
		return err
	}
	if r.attrTexCoord, err = r.program.Attrib(shader.AttribTexCoord); err != nil {
		return err
	}
	// The fragment stage never reads normals, so drivers may drop the attribute.
	r.attrNormal, r.hasNormal = r.program.OptionalAttrib(shader.AttribNormal)

	if r.uModelView, err = r.program.Uniform(shader.UniformModelView); err != nil {
		return err
	}
	if r.uProjection, err = r.program.Uniform(shader.UniformProjection); err != nil {
		return err
	}
	if r.uSampler, err = r.program.Uniform(shader.UniformSampler); err != nil {
		return err
	}
	return nil
}

// SetViewport maps clip space onto a width x height drawable.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color and depth buffers.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetProjection sets the projection used by subsequent draws.
func (r *Renderer) SetProjection(p mgl32.Mat4) {
	r.program.Use()
	gl.UniformMatrix4fv(r.uProjection, 1, false, &p[0])
}

// Draw issues one indexed draw call.
func (r *Renderer) Draw(call scene.DrawCall) {
	m, ok := r.mesh(call.Mesh)
	if !ok {
		r.log.Warn("draw with unknown mesh", zap.Uint32("mesh", uint32(call.Mesh)))
		return
	}

	r.program.Use()
	gl.UniformMatrix4fv(r.uModelView, 1, false, &call.ModelView[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture(call.Texture))
	gl.Uniform1i(r.uSampler, 0)

	gl.BindVertexArray(m.vao)
	if r.hasNormal {
		if call.Normals {
			gl.EnableVertexAttribArray(r.attrNormal)
		} else {
			gl.DisableVertexAttribArray(r.attrNormal)
		}
	}
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReadPixels reads back the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Close releases every GL object the renderer created.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for i := range r.meshes {
		r.meshes[i].delete()
	}
	r.meshes = nil
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// checkError drains the GL error queue and reports the first error.
func checkError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	return fmt.Errorf("%s: %s", op, errorString(code))
}

func errorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04x", code)
	}
}
