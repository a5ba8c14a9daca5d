package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Options carries the compiled-in render setup. Width and Height are
// the actual framebuffer size, which may differ from the requested
// window size on high-dpi displays.
type Options struct {
	Width  int
	Height int

	ClearColor mgl32.Vec4

	VertexShader   string
	FragmentShader string

	Geometry Geometry
}

// Renderer owns one linked program and one uploaded mesh and draws the
// mesh once per frame. Both resources are created exactly once and
// outlive every draw call until Dispose.
type Renderer struct {
	ctx     Context
	program Program
	mesh    Mesh
}

// NewRenderer runs the one-time setup: viewport, clear color, shader
// compile/link, mesh upload. Any failure is returned with the
// implementation's diagnostic log, there is no fallback or retry.
func NewRenderer(ctx Context, opts Options) (*Renderer, error) {
	ctx.Viewport(opts.Width, opts.Height)
	ctx.ClearColor(opts.ClearColor)

	program, err := CompileProgram(ctx, opts.VertexShader, opts.FragmentShader)
	if err != nil {
		return nil, err
	}

	mesh, err := ctx.UploadMesh(opts.Geometry.Float32(), opts.Geometry.Layout())
	if err != nil {
		ctx.DeleteProgram(program)
		return nil, err
	}

	return &Renderer{
		ctx:     ctx,
		program: program,
		mesh:    mesh,
	}, nil
}

// Frame clears the color buffer and issues the single draw call.
func (r *Renderer) Frame() {
	r.ctx.Clear()
	r.ctx.Draw(r.program, r.mesh)
}

// Dispose releases the program and the mesh.
func (r *Renderer) Dispose() {
	r.ctx.DeleteProgram(r.program)
	r.ctx.DeleteMesh(r.mesh)
}
