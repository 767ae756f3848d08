package config

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX stages.
const (
	tiledObstacleGroup = "obstacles"
	tiledSpawnGroup    = "spawn"
)

// loadTiledStage reads a Tiled map. Rectangles in the "obstacles" object
// group become obstacles and the first object of the "spawn" group is the
// player spawn. Tiled is y-down with top-left origins, so every box is
// flipped against the map height and converted to a center.
//
// Object properties: kind (string), toX/toY/duration (float) and easing
// (string) for moving obstacles.
func loadTiledStage(fsys fs.FS, name string) (*StageConfig, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}

	mapHeight := float64(m.Height * m.TileHeight)
	flipY := func(y, h float64) float64 { return mapHeight - (y + h/2) }

	cfg := &StageConfig{
		ID:       strings.TrimSuffix(path.Base(name), path.Ext(name)),
		Name:     m.Properties.GetString("name"),
		TileSize: m.TileWidth,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case tiledObstacleGroup:
			for _, o := range og.Objects {
				oc := ObstacleConfig{
					Name:   o.Name,
					Kind:   o.Properties.GetString("kind"),
					X:      o.X + o.Width/2,
					Y:      flipY(o.Y, o.Height),
					Width:  o.Width,
					Height: o.Height,
				}
				if d := o.Properties.GetFloat("duration"); d > 0 {
					// toX/toY are the target top-left corner in Tiled space.
					oc.Path = &PathConfig{
						To: PositionConfig{
							X: o.Properties.GetFloat("toX") + o.Width/2,
							Y: flipY(o.Properties.GetFloat("toY"), o.Height),
						},
						Duration: d,
						Easing:   o.Properties.GetString("easing"),
					}
				}
				cfg.Obstacles = append(cfg.Obstacles, oc)
			}
		case tiledSpawnGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				cfg.PlayerSpawn = PositionConfig{X: o.X, Y: mapHeight - o.Y}
			}
		}
	}

	return cfg, nil
}
