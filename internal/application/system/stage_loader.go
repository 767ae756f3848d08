package system

import (
	"fmt"
	"sort"

	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// Stage is a validated, ready-to-register level.
type Stage struct {
	ID        string
	Name      string
	Spawn     geom.Vec2
	Obstacles []PlacedObstacle
}

// PlacedObstacle is an obstacle plus its optional movement path.
type PlacedObstacle struct {
	Name     string
	Obstacle entity.Obstacle
	Path     *Path
}

// Path is a ping-pong route from the obstacle's start position to To.
type Path struct {
	To       geom.Vec2
	Duration float64
	Easing   string
}

// LoadStage converts a StageConfig into a Stage. Collision layer tiles are
// merged into as few rectangles as possible so actors never snag on the
// seams between neighbouring tiles. Every obstacle is validated here.
func LoadStage(cfg *config.StageConfig) (*Stage, error) {
	stage := &Stage{
		ID:    cfg.ID,
		Name:  cfg.Name,
		Spawn: geom.V(cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y),
	}

	tiles, err := tileObstacles(cfg)
	if err != nil {
		return nil, err
	}
	stage.Obstacles = append(stage.Obstacles, tiles...)

	for i, oc := range cfg.Obstacles {
		kind, err := entity.ParseObstacleKind(oc.Kind)
		if err != nil {
			return nil, fmt.Errorf("stage %s obstacle %d (%s): %w", cfg.ID, i, oc.Name, err)
		}
		ob := entity.Obstacle{
			Kind: kind,
			Body: entity.Body{Position: geom.V(oc.X, oc.Y)},
			Box:  entity.ColliderBox{Width: oc.Width, Height: oc.Height},
		}
		if oc.Velocity != nil {
			ob.Body.Velocity = geom.V(oc.Velocity.X, oc.Velocity.Y)
		}
		if err := ob.Validate(); err != nil {
			return nil, fmt.Errorf("stage %s obstacle %d (%s): %w", cfg.ID, i, oc.Name, err)
		}

		placed := PlacedObstacle{Name: oc.Name, Obstacle: ob}
		if oc.Path != nil {
			if _, err := NewMover(ob.Body.Position, geom.V(oc.Path.To.X, oc.Path.To.Y), oc.Path.Duration, oc.Path.Easing); err != nil {
				return nil, fmt.Errorf("stage %s obstacle %d (%s): %w", cfg.ID, i, oc.Name, err)
			}
			placed.Path = &Path{
				To:       geom.V(oc.Path.To.X, oc.Path.To.Y),
				Duration: oc.Path.Duration,
				Easing:   oc.Path.Easing,
			}
		}
		stage.Obstacles = append(stage.Obstacles, placed)
	}

	return stage, nil
}

// tileRect is a merged block of tiles in grid coordinates.
type tileRect struct {
	col, row   int // top-left tile
	cols, rows int
	kind       entity.ObstacleKind
}

func tileObstacles(cfg *config.StageConfig) ([]PlacedObstacle, error) {
	rows := cfg.Layers.Collision
	if len(rows) == 0 {
		return nil, nil
	}
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: collision layer needs a positive tileSize: %w", cfg.ID, entity.ErrInvalidObstacle)
	}

	kinds := make(map[rune]entity.ObstacleKind, len(cfg.TileMapping))
	for ch, m := range cfg.TileMapping {
		r := []rune(ch)
		if len(r) != 1 {
			return nil, fmt.Errorf("stage %s: tile mapping key %q must be one character", cfg.ID, ch)
		}
		k, err := entity.ParseObstacleKind(m.Kind)
		if err != nil {
			return nil, fmt.Errorf("stage %s tile %q: %w", cfg.ID, ch, err)
		}
		kinds[r[0]] = k
	}

	// Horizontal runs per row, then stack runs with the same span and kind.
	type span struct {
		col, cols int
		kind      entity.ObstacleKind
	}
	open := map[span]*tileRect{}
	var done []tileRect

	for row, line := range rows {
		var runs []span
		cur := span{col: -1}
		for col, ch := range []rune(line) {
			k := kinds[ch]
			if cur.col >= 0 && k == cur.kind && cur.col+cur.cols == col {
				cur.cols++
				continue
			}
			if cur.col >= 0 && cur.kind != 0 {
				runs = append(runs, cur)
			}
			cur = span{col: col, cols: 1, kind: k}
		}
		if cur.col >= 0 && cur.kind != 0 {
			runs = append(runs, cur)
		}

		next := make(map[span]*tileRect, len(runs))
		for _, r := range runs {
			if rect, ok := open[r]; ok {
				rect.rows++
				next[r] = rect
				delete(open, r)
				continue
			}
			next[r] = &tileRect{col: r.col, row: row, cols: r.cols, rows: 1, kind: r.kind}
		}
		for _, rect := range open {
			done = append(done, *rect)
		}
		open = next
	}
	for _, rect := range open {
		done = append(done, *rect)
	}

	sort.Slice(done, func(i, j int) bool {
		if done[i].row != done[j].row {
			return done[i].row < done[j].row
		}
		return done[i].col < done[j].col
	})

	ts := float64(cfg.TileSize)
	height := len(rows)
	out := make([]PlacedObstacle, 0, len(done))
	for _, r := range done {
		w := float64(r.cols) * ts
		h := float64(r.rows) * ts
		// Row 0 is the top of the layer; the bottom row sits on y = 0.
		bottom := float64(height-r.row-r.rows) * ts
		out = append(out, PlacedObstacle{
			Name: fmt.Sprintf("tiles@%d,%d", r.col, r.row),
			Obstacle: entity.Obstacle{
				Kind: r.kind,
				Body: entity.Body{Position: geom.V(float64(r.col)*ts+w/2, bottom+h/2)},
				Box:  entity.ColliderBox{Width: w, Height: h},
			},
		})
	}
	return out, nil
}
