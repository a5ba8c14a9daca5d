package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/thiagopls1/gl-triangle/app"
)

func init() {
	// glfw and gl calls must stay on the thread that owns the context
	runtime.LockOSThread()
}

func main() {
	app.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	a, err := app.New(app.DefaultConfig())
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	a.Run()
}
