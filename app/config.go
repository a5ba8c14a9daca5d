package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/thiagopls1/gl-triangle/engine"
)

const vertexShader = `#version 330 core
layout (location = 0) in vec3 position;

void main()
{
	gl_Position = vec4(position, 1.0);
}`

const fragmentShader = `#version 330 core
out vec4 Color;

void main()
{
	Color = vec4(0.9, 0.2, 0.6, 1.0);
}`

// Config is the compiled-in startup configuration. There are no flags
// and no environment variables, callers build a Config (usually
// DefaultConfig) and hand it to New. Keeping the setup injectable this
// way lets tests run the sequence with, say, a shader source crafted
// to fail compilation.
type Config struct {
	Width  int
	Height int
	Title  string

	ClearColor mgl32.Vec4

	VertexShader   string
	FragmentShader string

	Geometry engine.Geometry

	QuitKey Key

	// FrameCap limits the loop to the given frames per second. Zero
	// leaves pacing to the swap interval alone.
	FrameCap float64
}

func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 640,
		Title:  "GLFW Triangle",

		ClearColor: mgl32.Vec4{0.12, 0.12, 0.12, 1.0},

		VertexShader:   vertexShader,
		FragmentShader: fragmentShader,

		Geometry: engine.Triangle(),

		QuitKey: KeyQ,
	}
}
