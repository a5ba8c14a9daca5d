package engine

// CompileProgram compiles the two shader stages and links them into a
// single program. Once the link result is known the stage objects are
// detached and released, each exactly once, they are not needed after
// linking. On failure the returned error carries the compiler or
// linker info log.
func CompileProgram(ctx Context, vertexSrc, fragmentSrc string) (Program, error) {
	vertex, err := ctx.Compile(vertexSrc, VertexStage)
	if err != nil {
		return 0, err
	}

	fragment, err := ctx.Compile(fragmentSrc, FragmentStage)
	if err != nil {
		ctx.DeleteShader(vertex)
		return 0, err
	}

	program, err := ctx.Link(vertex, fragment)
	if err != nil {
		ctx.DeleteShader(vertex)
		ctx.DeleteShader(fragment)
		return 0, err
	}

	ctx.DetachShader(program, vertex)
	ctx.DetachShader(program, fragment)
	ctx.DeleteShader(vertex)
	ctx.DeleteShader(fragment)

	return program, nil
}
