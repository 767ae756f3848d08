// Command sandbox runs the movement core in an ebiten window: one actor
// on a stage, keyboard or replay input, hot-reloaded configs.
package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wallhop/internal/application/game"
	"github.com/younwookim/wallhop/internal/application/replay"
	"github.com/younwookim/wallhop/internal/application/scene/playing"
	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
	"github.com/younwookim/wallhop/internal/infrastructure/input"
)

//go:embed configs
var configFS embed.FS

func main() {
	configDir := flag.String("configs", "", "Config directory to load and watch (default: built-in configs)")
	stageName := flag.String("stage", "demo", "Stage to load from <configs>/stages")
	recordPath := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayPath := flag.String("replay", "", "Play back a recorded input file")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	source := playing.Live(input.NewKeyboard())
	if *replayPath != "" {
		data, err := replay.LoadReplay(*replayPath)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Stage != "" {
			*stageName = data.Stage
		}
		source = playing.NewReplaySource(*data)
		log.Printf("Replaying %s: %d frames on stage %s", *replayPath, len(data.Frames), *stageName)
	}

	stage, err := loadStage(loader, *stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	sc, err := playing.New(cfg, stage, source, playing.Options{
		RecordPath: *recordPath,
		Logger:     log.Default(),
	})
	if err != nil {
		log.Fatalf("Failed to start stage: %v", err)
	}

	d := cfg.Display
	g := game.New(sc, d.ScreenWidth, d.ScreenHeight, d.Framerate)

	if *configDir != "" {
		w, err := config.NewWatcher(*configDir, filepath.Join(*configDir, "stages"))
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = w.Close() }()
		r := &reloader{loader: loader, stage: *stageName, post: g.Post}
		go r.run(w.Events, w.Errors)
		log.Printf("Watching %s for changes", *configDir)
	}

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle("wallhop sandbox")
	ebiten.SetTPS(d.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	g.Close()
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func loadStage(loader *config.Loader, name string) (*system.Stage, error) {
	cfg, err := loader.LoadStage(name)
	if err != nil {
		return nil, err
	}
	return system.LoadStage(cfg)
}
