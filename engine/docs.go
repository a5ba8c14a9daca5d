/*
	minimal opengl renderer

	the graphics api is hidden behind the opaque Context interface so
	that the setup sequence (shader compile/link, mesh upload, viewport,
	clear color) and the per-frame draw can be driven and tested without
	a live gl context.

	Context
		Compile / Link -> opaque handles, info log as error text
		UploadMesh -> vao/vbo pair, static draw
		Clear / Draw / Versions

	Renderer
		one program, one mesh, one draw per frame
*/
package engine
