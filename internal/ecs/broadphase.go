package ecs

import (
	"github.com/solarlune/resolv"

	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// Resolv tags
const (
	resolvObstacle = "obstacle"
	resolvQuery    = "query"
)

// cellPad grows every indexed box. Resolv maps the far edge of a box to
// cells through X+W-1, which drops overlaps thinner than one unit.
const cellPad = 1.0

// broadphase indexes obstacles in a resolv spatial hash. Resolv cells start
// at zero, so world coordinates are shifted by the world minimum.
type broadphase struct {
	space  *resolv.Space
	query  *resolv.Object
	origin geom.Vec2
	bounds geom.AABB
	lookup func(entity.EntityID) (entity.Obstacle, bool)
}

func newBroadphase(cfg config.WorldConfig, lookup func(entity.EntityID) (entity.Obstacle, bool)) *broadphase {
	origin := geom.V(cfg.MinX, cfg.MinY)
	size := geom.V(float64(cfg.Width), float64(cfg.Height))
	b := &broadphase{
		space:  resolv.NewSpace(cfg.Width, cfg.Height, cfg.CellSize, cfg.CellSize),
		query:  resolv.NewObject(0, 0, 1, 1, resolvQuery),
		origin: origin,
		bounds: geom.AABB{Center: origin.Add(size.Scale(0.5)), Half: size.Scale(0.5)},
		lookup: lookup,
	}
	b.space.Add(b.query)
	return b
}

// contains reports whether box lies fully inside the indexed area.
func (b *broadphase) contains(box geom.AABB) bool {
	return box.Left() >= b.bounds.Left() && box.Right() <= b.bounds.Right() &&
		box.Bottom() >= b.bounds.Bottom() && box.Top() <= b.bounds.Top()
}

func (b *broadphase) add(o entity.Obstacle) *resolv.Object {
	box := o.Bounds().Expand(cellPad)
	lo := box.Min().Sub(b.origin)
	size := box.Size()
	obj := resolv.NewObject(lo.X, lo.Y, size.X, size.Y, resolvObstacle)
	obj.SetShape(resolv.NewRectangle(0, 0, size.X, size.Y))
	obj.Data = o.ID
	b.space.Add(obj)
	return obj
}

func (b *broadphase) move(obj *resolv.Object, o entity.Obstacle) {
	lo := o.Bounds().Expand(cellPad).Min().Sub(b.origin)
	obj.X = lo.X
	obj.Y = lo.Y
	obj.Update()
}

func (b *broadphase) remove(obj *resolv.Object) {
	b.space.Remove(obj)
}

// Candidates returns the obstacles sharing a cell with area that actually
// overlap it, in ascending ID order.
func (b *broadphase) Candidates(area geom.AABB) []entity.Obstacle {
	padded := area.Expand(cellPad)
	lo := padded.Min().Sub(b.origin)
	size := padded.Size()
	b.query.X = lo.X
	b.query.Y = lo.Y
	b.query.W = size.X
	b.query.H = size.Y
	b.query.Update()

	check := b.query.Check(0, 0, resolvObstacle)
	if check == nil {
		return nil
	}

	out := make([]entity.Obstacle, 0, len(check.Objects))
	for _, obj := range check.Objects {
		id, ok := obj.Data.(entity.EntityID)
		if !ok {
			continue
		}
		o, ok := b.lookup(id)
		if !ok || !o.Bounds().Overlaps(area) || containsID(out, id) {
			continue
		}
		out = append(out, o)
	}
	sortByID(out)
	return out
}

func containsID(obstacles []entity.Obstacle, id entity.EntityID) bool {
	for _, o := range obstacles {
		if o.ID == id {
			return true
		}
	}
	return false
}
