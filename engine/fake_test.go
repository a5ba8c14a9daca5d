package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type drawCall struct {
	program Program
	mesh    Mesh
}

// fakeContext records every call so the setup sequence and the frame
// loop can be verified without a live gl context.
type fakeContext struct {
	failCompile Stage
	compileLog  string
	failLink    bool
	linkLog     string

	lastShader  Shader
	compiled    []Stage
	sources     map[Stage]string
	detached    []Shader
	delShaders  []Shader
	delPrograms []Program
	delMeshes   []Mesh

	uploaded []float32
	layout   VertexLayout

	viewportW  int
	viewportH  int
	clearColor mgl32.Vec4
	clears     int
	draws      []drawCall
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		failCompile: -1,
		sources:     map[Stage]string{},
	}
}

func (f *fakeContext) Compile(src string, stage Stage) (Shader, error) {
	if stage == f.failCompile {
		return 0, fmt.Errorf("%v shader error: %v", stage, f.compileLog)
	}
	f.lastShader++
	f.compiled = append(f.compiled, stage)
	f.sources[stage] = src
	return f.lastShader, nil
}

func (f *fakeContext) Link(vertex, fragment Shader) (Program, error) {
	if f.failLink {
		return 0, fmt.Errorf("linker error: %v", f.linkLog)
	}
	return Program(100), nil
}

func (f *fakeContext) DetachShader(p Program, s Shader) {
	f.detached = append(f.detached, s)
}

func (f *fakeContext) DeleteShader(s Shader) {
	f.delShaders = append(f.delShaders, s)
}

func (f *fakeContext) DeleteProgram(p Program) {
	f.delPrograms = append(f.delPrograms, p)
}

func (f *fakeContext) UploadMesh(data []float32, layout VertexLayout) (Mesh, error) {
	f.uploaded = append([]float32(nil), data...)
	f.layout = layout
	return Mesh{VAO: 1, VBO: 2, Count: int32(len(data)) / layout.Size}, nil
}

func (f *fakeContext) DeleteMesh(m Mesh) {
	f.delMeshes = append(f.delMeshes, m)
}

func (f *fakeContext) Viewport(width, height int) {
	f.viewportW, f.viewportH = width, height
}

func (f *fakeContext) ClearColor(c mgl32.Vec4) {
	f.clearColor = c
}

func (f *fakeContext) Clear() {
	f.clears++
}

func (f *fakeContext) Draw(p Program, m Mesh) {
	f.draws = append(f.draws, drawCall{p, m})
}

func (f *fakeContext) Versions() (string, string) {
	return "3.3 (fake)", "3.30 (fake)"
}
