package graphics

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int32
	Height int32
	// OnClose runs after the last frame while the GL context still exists (unload meshes and shaders here).
	OnClose func()
}

// Run opens a resizable, multisampled window and runs the main loop at 60 FPS until the window is
// closed or ctx is done. Each frame it calls update, clears to background(), then calls draw with the
// seconds elapsed since the window opened. ESC does not close the window; callers use it for the terminal.
func Run(ctx context.Context, opts Options, update func(), background func() rl.Color, draw func(elapsed float64)) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background())
		draw(rl.GetTime())
		rl.EndDrawing()
	}
	if opts.OnClose != nil {
		opts.OnClose()
	}
}
