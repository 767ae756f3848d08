package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/younwookim/wallhop/internal/application/scene"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

type reloadKind int

const (
	reloadNone reloadKind = iota
	reloadPhysics
	reloadStage
)

// classify maps a changed file to what must be reloaded.
func classify(path, stage string) reloadKind {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Base(filepath.Dir(path))
	switch {
	case dir == "stages" && stem == stage:
		return reloadStage
	case dir != "stages" && stem == "physics":
		return reloadPhysics
	default:
		return reloadNone
	}
}

// reloader re-reads changed configs and hands them to the running scene.
type reloader struct {
	loader *config.Loader
	stage  string
	post   func(func(scene.Scene)) bool
}

func (r *reloader) run(events <-chan string, errs <-chan error) {
	for {
		select {
		case path, ok := <-events:
			if !ok {
				return
			}
			r.reload(path)
		case err, ok := <-errs:
			if !ok {
				return
			}
			log.Printf("Config watcher: %v", err)
		}
	}
}

func (r *reloader) reload(path string) {
	switch classify(path, r.stage) {
	case reloadPhysics:
		cfg, err := r.loader.LoadPhysics()
		if err != nil {
			log.Printf("Keeping previous physics config: %v", err)
			return
		}
		r.apply(func(s scene.Reloadable) error { return s.SetConfig(cfg) })
	case reloadStage:
		stage, err := loadStage(r.loader, r.stage)
		if err != nil {
			log.Printf("Keeping previous stage: %v", err)
			return
		}
		r.apply(func(s scene.Reloadable) error { return s.SetStage(stage) })
	}
}

func (r *reloader) apply(fn func(scene.Reloadable) error) {
	posted := r.post(func(s scene.Scene) {
		rs, ok := s.(scene.Reloadable)
		if !ok {
			return
		}
		if err := fn(rs); err != nil {
			log.Printf("Reload rejected: %v", err)
		}
	})
	if !posted {
		log.Printf("Reload dropped: update queue full")
	}
}
