package shader

import _ "embed"

// GlobeVertex is the vertex stage of the textured sphere program.
//
//go:embed glsl/globe.vert
var GlobeVertex string

// GlobeFragment samples the sphere texture without lighting.
//
//go:embed glsl/globe.frag
var GlobeFragment string

// Attribute and uniform names used by the globe program.
const (
	AttribPosition = "aVertexPosition"
	AttribTexCoord = "aTextureCoord"
	AttribNormal   = "aVertexNormal"

	UniformModelView  = "uMVMatrix"
	UniformProjection = "uPMatrix"
	UniformSampler    = "uSampler"
)
