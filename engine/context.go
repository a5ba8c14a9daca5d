package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Stage identifies a shader pipeline stage.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Shader is an opaque handle to a compiled shader stage.
type Shader uint32

// Program is an opaque handle to a linked shader program.
type Program uint32

// Mesh is an uploaded vertex buffer together with its vertex-array
// binding. Count is the number of vertices the buffer holds.
type Mesh struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// VertexLayout describes how the raw buffer bytes map to a shader
// input: one attribute slot, Size components per vertex, tightly
// packed at the given stride.
type VertexLayout struct {
	Attrib     uint32
	Size       int32
	Stride     int32
	Offset     int
	Normalized bool
}

// Context is the graphics backend. Compile and link failures carry the
// implementation's info log in the returned error, no raw buffers leak
// through this surface.
//
// All calls must happen on the thread that owns the underlying gl
// context.
type Context interface {
	Compile(src string, stage Stage) (Shader, error)
	Link(vertex, fragment Shader) (Program, error)
	DetachShader(p Program, s Shader)
	DeleteShader(s Shader)
	DeleteProgram(p Program)

	UploadMesh(data []float32, layout VertexLayout) (Mesh, error)
	DeleteMesh(m Mesh)

	Viewport(width, height int)
	ClearColor(c mgl32.Vec4)
	Clear()
	Draw(p Program, m Mesh)

	Versions() (version, glsl string)
}
