package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/wallhop/internal/domain/geom"
)

// EntityID is a unique identifier for an actor or obstacle. IDs are never
// recycled and define the tie-break order of obstacle resolution.
type EntityID uint32

// ErrInvalidObstacle is returned when an obstacle has degenerate geometry.
var ErrInvalidObstacle = errors.New("invalid obstacle")

// ObstacleKind is a set of surface roles. Walls are also seen by the wall probe.
type ObstacleKind uint8

const (
	KindGround ObstacleKind = 1 << iota
	KindWall
)

// Has reports whether all bits of k2 are set in k.
func (k ObstacleKind) Has(k2 ObstacleKind) bool {
	return k&k2 == k2
}

// String returns "ground", "wall" or "ground|wall".
func (k ObstacleKind) String() string {
	var parts []string
	if k.Has(KindGround) {
		parts = append(parts, "ground")
	}
	if k.Has(KindWall) {
		parts = append(parts, "wall")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseObstacleKind parses "ground", "wall" or a combination separated by
// '|' or ','. An empty string means ground.
func ParseObstacleKind(s string) (ObstacleKind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindGround, nil
	}
	var k ObstacleKind
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "ground":
			k |= KindGround
		case "wall":
			k |= KindWall
		default:
			return 0, fmt.Errorf("unknown obstacle kind %q", part)
		}
	}
	return k, nil
}

// Obstacle is a static or kinematic box actors collide with.
type Obstacle struct {
	ID   EntityID
	Kind ObstacleKind
	Body Body
	Box  ColliderBox
}

// Bounds returns the obstacle box in world space.
func (o Obstacle) Bounds() geom.AABB {
	return o.Box.At(o.Body.Position)
}

// Validate rejects zero, negative or non-finite extents.
func (o Obstacle) Validate() error {
	if !o.Bounds().Valid() {
		return fmt.Errorf("%w: id=%d size=%gx%g at (%g,%g)", ErrInvalidObstacle,
			o.ID, o.Box.Width, o.Box.Height, o.Body.Position.X, o.Body.Position.Y)
	}
	if o.Kind == 0 {
		return fmt.Errorf("%w: id=%d has no kind", ErrInvalidObstacle, o.ID)
	}
	return nil
}
