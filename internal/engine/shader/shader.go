// Package shader compiles GLSL programs and resolves their attribute and
// uniform locations by name.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrNotFound is returned when a program has no active attribute or uniform
// with the requested name.
var ErrNotFound = errors.New("shader: name not found")

// Program is a linked GL program with cached name lookups.
type Program struct {
	ID uint32

	attribs  map[string]int32
	uniforms map[string]int32
}

// New compiles and links a program from vertex and fragment sources.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		ID:       id,
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
	}, nil
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// Attrib returns the location of a required vertex attribute.
func (p *Program) Attrib(name string) (uint32, error) {
	loc, ok := p.OptionalAttrib(name)
	if !ok {
		return 0, fmt.Errorf("attribute %q: %w", name, ErrNotFound)
	}
	return loc, nil
}

// OptionalAttrib returns the location of an attribute the linker may have
// optimized away. ok is false when it is inactive.
func (p *Program) OptionalAttrib(name string) (loc uint32, ok bool) {
	l, cached := p.attribs[name]
	if !cached {
		l = gl.GetAttribLocation(p.ID, gl.Str(name+"\x00"))
		p.attribs[name] = l
	}
	if l < 0 {
		return 0, false
	}
	return uint32(l), true
}

// Uniform returns the location of a required uniform.
func (p *Program) Uniform(name string) (int32, error) {
	l, cached := p.uniforms[name]
	if !cached {
		l = gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
		p.uniforms[name] = l
	}
	if l < 0 {
		return -1, fmt.Errorf("uniform %q: %w", name, ErrNotFound)
	}
	return l, nil
}

// CompileProgram compiles vertex and fragment shaders and links them into a
// program, returning the program ID.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", infoLog(log))
	}

	return program, nil
}

func compileShader(source string, stage uint32) (uint32, error) {
	sh := gl.CreateShader(stage)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(sh, logLen, nil, &log[0])
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile %s shader: %s", stageName(stage), infoLog(log))
	}

	return sh, nil
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("0x%x", stage)
	}
}

// infoLog trims the NUL terminator and trailing whitespace drivers append.
func infoLog(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}
