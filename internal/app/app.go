package app

import (
	"context"

	"lattice-viewer/internal/commands"
	"lattice-viewer/internal/debug"
	"lattice-viewer/internal/graphics"
	"lattice-viewer/internal/logger"
	"lattice-viewer/internal/scene"
	"lattice-viewer/internal/terminal"
	"lattice-viewer/internal/viewconfig"
	"lattice-viewer/internal/viewer"

	"go.uber.org/zap"
)

const title = "Lattice Viewer"

// Run opens the viewer window and blocks until it is closed or ctx is cancelled.
// Edits to configPath are picked up while the window is open.
func Run(ctx context.Context, prefs viewconfig.Prefs, configPath string, zl *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logger.New()
	defer log.Close()
	log.Logf("viewer started: structure %s, scene %s", prefs.Structure, prefs.Scene)

	st := viewer.New(prefs)
	reg := commands.NewRegistry()
	save := func() error { return viewconfig.Save(configPath, st.Prefs()) }
	viewer.RegisterCommands(reg, st, save, log.Logf)

	reloads := make(chan viewconfig.Prefs, 1)
	go func() {
		err := viewconfig.Watch(ctx, configPath,
			func(p viewconfig.Prefs) {
				// keep only the newest
				select {
				case <-reloads:
				default:
				}
				reloads <- p
			},
			func(err error) { log.Error("config reload failed", err) },
		)
		if err != nil {
			zl.Warn("config watch disabled", zap.String("path", configPath), zap.Error(err))
		}
	}()

	scn := scene.New(st)
	overlay := debug.New()
	term := terminal.New(log, reg)

	update := func() {
		select {
		case p := <-reloads:
			st.Apply(p)
			log.Log("config reloaded from " + configPath)
		default:
		}
		term.Update()
		scn.Update(!term.IsOpen())
		p := st.Prefs()
		overlay.ShowFPS = p.ShowFPS
		overlay.ShowMem = p.ShowFPS
		overlay.ShowStats = p.ShowStats
	}
	draw := func(elapsed float64) {
		scn.Draw(elapsed)
		term.Draw()
		overlay.Draw(st.Structure(), scene.RLColor(st.Palette().Node))
	}

	opts := graphics.Options{
		Title:   title,
		Width:   prefs.WindowW,
		Height:  prefs.WindowH,
		OnClose: scn.Unload,
	}
	graphics.Run(ctx, opts, update, scn.Background, draw)
	log.Log("viewer closed")
	return nil
}
