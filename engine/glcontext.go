package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// upper bound for retrieved shader/program info logs
const infoLogSize = 1024

type glContext struct{}

// GL returns a Context backed by the opengl context that is current on
// the calling thread. gl.Init must have been called beforehand.
func GL() Context {
	return glContext{}
}

func (glContext) Compile(src string, stage Stage) (Shader, error) {
	var kind uint32
	switch stage {
	case VertexStage:
		kind = gl.VERTEX_SHADER
	case FragmentStage:
		kind = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("unknown shader stage: %v", stage)
	}

	shader := gl.CreateShader(kind)

	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := strings.Repeat("\x00", infoLogSize)
		gl.GetShaderInfoLog(shader, infoLogSize, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%v shader error: %v", stage, strings.TrimRight(infoLog, "\x00"))
	}

	return Shader(shader), nil
}

func (glContext) Link(vertex, fragment Shader) (Program, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, uint32(vertex))
	gl.AttachShader(program, uint32(fragment))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := strings.Repeat("\x00", infoLogSize)
		gl.GetProgramInfoLog(program, infoLogSize, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("linker error: %v", strings.TrimRight(infoLog, "\x00"))
	}

	return Program(program), nil
}

func (glContext) DetachShader(p Program, s Shader) {
	gl.DetachShader(uint32(p), uint32(s))
}

func (glContext) DeleteShader(s Shader) {
	gl.DeleteShader(uint32(s))
}

func (glContext) DeleteProgram(p Program) {
	gl.DeleteProgram(uint32(p))
}

func (glContext) UploadMesh(data []float32, layout VertexLayout) (Mesh, error) {
	if len(data) == 0 {
		return Mesh{}, fmt.Errorf("empty vertex data")
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointer(layout.Attrib, layout.Size, gl.FLOAT, layout.Normalized, layout.Stride, gl.PtrOffset(layout.Offset))
	gl.EnableVertexAttribArray(layout.Attrib)

	// setup done, unbind to prevent accidental mutation
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return Mesh{VAO: vao, VBO: vbo, Count: int32(len(data)) / layout.Size}, nil
}

func (glContext) DeleteMesh(m Mesh) {
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteVertexArrays(1, &m.VAO)
}

func (glContext) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (glContext) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())
}

func (glContext) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (glContext) Draw(p Program, m Mesh) {
	gl.UseProgram(uint32(p))
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
	gl.BindVertexArray(0)
}

func (glContext) Versions() (version, glsl string) {
	version = gl.GoStr(gl.GetString(gl.VERSION))
	glsl = gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
	return version, glsl
}
