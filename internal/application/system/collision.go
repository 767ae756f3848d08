package system

import (
	"sort"

	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// ObstacleSource hands the resolver the obstacles that may touch area.
// Implementations may return extra obstacles. They must not return
// obstacles that later change during the same resolution pass.
type ObstacleSource interface {
	Candidates(area geom.AABB) []entity.Obstacle
}

// Obstacles is an ObstacleSource backed by a plain slice.
type Obstacles []entity.Obstacle

// Candidates returns every obstacle overlapping area.
func (o Obstacles) Candidates(area geom.AABB) []entity.Obstacle {
	out := make([]entity.Obstacle, 0, len(o))
	for _, ob := range o {
		if ob.Bounds().Overlaps(area) {
			out = append(out, ob)
		}
	}
	return out
}

// Hit records one classified contact of a resolution pass.
type Hit struct {
	Obstacle entity.EntityID
	Side     geom.Side
	Probe    bool // found by the wall probe rather than the body box
}

// CollisionSystem resolves an actor against obstacles and fills its
// contact state.
type CollisionSystem struct {
	config *config.PhysicsConfig
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *config.PhysicsConfig) *CollisionSystem {
	return &CollisionSystem{config: cfg}
}

// QueryArea is the region Resolve reads obstacles from: the actor box,
// the ground probe below it and the wall probe on either side.
func (s *CollisionSystem) QueryArea(actor *entity.Actor) geom.AABB {
	c := s.config
	return actor.Bounds().Expand(c.Probe.Length + c.Collision.GroundProbeOffset + c.Collision.SnapEpsilon)
}

// Resolve runs one collision pass for actor.
//
// Directional flags are cleared first. Obstacles are visited nearest first,
// ties broken by ID, so the outcome does not depend on how the source
// stores them. Each hit is classified from a box shifted down by the ground
// probe offset, so an actor resting a hair above a surface still reads as
// grounded. Side hits where the actor is level with or above the obstacle's
// top are treated as ground. The wall probe runs last.
func (s *CollisionSystem) Resolve(actor *entity.Actor, src ObstacleSource) []Hit {
	actor.Contact.Reset()
	if src == nil {
		return nil
	}

	obstacles := src.Candidates(s.QueryArea(actor))
	sortByDistance(obstacles, actor.Body.Position)

	var hits []Hit
	for i := range obstacles {
		o := &obstacles[i]
		if !o.Bounds().Valid() {
			continue
		}
		side, ok := geom.Collide(s.groundProbe(actor), o.Bounds())
		if !ok {
			continue
		}
		if side.Horizontal() && s.onTopOf(actor, o) {
			side = geom.SideBottom
		}

		switch side {
		case geom.SideBottom:
			s.land(actor, o)
		case geom.SideTop:
			s.bump(actor, o)
		case geom.SideLeft, geom.SideRight:
			s.pushOut(actor, o, side)
		}
		hits = append(hits, Hit{Obstacle: o.ID, Side: side})
	}

	switch s.config.Collision.WallDetection {
	case config.WallDetectionAABB:
		actor.Contact.TouchingWall = actor.Contact.EitherSide()
	default:
		if h, ok := s.probeWall(actor, obstacles); ok {
			hits = append(hits, h)
		}
	}

	return hits
}

func (s *CollisionSystem) groundProbe(actor *entity.Actor) geom.AABB {
	return actor.Bounds().Offset(geom.V(0, -s.config.Collision.GroundProbeOffset))
}

// onTopOf reports whether the actor's feet are at or above o's top edge,
// within the ledge tolerance.
func (s *CollisionSystem) onTopOf(actor *entity.Actor, o *entity.Obstacle) bool {
	return actor.Bounds().Bottom() >= o.Bounds().Top()-s.config.Collision.LedgeTolerance
}

func (s *CollisionSystem) land(actor *entity.Actor, o *entity.Obstacle) {
	body := &actor.Body
	c := &actor.Contact
	half := actor.Box.HalfExtents()

	body.Position.Y = o.Bounds().Top() + half.Y + s.config.Collision.SnapEpsilon
	if body.Velocity.Y < 0 {
		body.Velocity.Y = 0
	}

	if !c.Below && s.config.Collision.InheritPlatformVelocity {
		body.Velocity.X += o.Body.Velocity.X
		c.GroundVelocity = o.Body.Velocity
	}
	c.Below = true
	c.WallJumping = false
	actor.Jumps.Reset()
}

func (s *CollisionSystem) bump(actor *entity.Actor, o *entity.Obstacle) {
	body := &actor.Body
	half := actor.Box.HalfExtents()

	body.Position.Y = o.Bounds().Bottom() - half.Y - s.config.Collision.SnapEpsilon
	if body.Velocity.Y > 0 {
		body.Velocity.Y = 0
	}
	actor.Contact.Above = true
}

func (s *CollisionSystem) pushOut(actor *entity.Actor, o *entity.Obstacle, side geom.Side) {
	body := &actor.Body
	half := actor.Box.HalfExtents()
	eps := s.config.Collision.SnapEpsilon
	b := o.Bounds()

	if side == geom.SideLeft {
		body.Position.X = b.Right() + half.X + eps
		if body.Velocity.X < 0 {
			body.Velocity.X = 0
		}
		actor.Contact.Left = true
	} else {
		body.Position.X = b.Left() - half.X - eps
		if body.Velocity.X > 0 {
			body.Velocity.X = 0
		}
		actor.Contact.Right = true
	}

	if s.config.Collision.InheritWallVelocity {
		body.Velocity.X += o.Body.Velocity.X
	}
}

// probeWall casts the thin probe from the actor's facing edge against wall
// obstacles. A hit counts only while the actor is below the wall's top.
func (s *CollisionSystem) probeWall(actor *entity.Actor, obstacles []entity.Obstacle) (Hit, bool) {
	facing := actor.Contact.Facing
	actor.Probe.Size = geom.V(s.config.Probe.Length, s.config.Probe.Thickness)
	actor.Probe.Aim(actor.Body.Position, actor.Box.HalfExtents(), facing)
	box := actor.Probe.Box()

	for i := range obstacles {
		o := &obstacles[i]
		if !o.Kind.Has(entity.KindWall) || !o.Bounds().Valid() {
			continue
		}
		if !box.Overlaps(o.Bounds()) || s.onTopOf(actor, o) {
			continue
		}

		actor.Contact.TouchingWall = true
		side := geom.SideRight
		if facing == entity.FacingLeft {
			actor.Contact.Left = true
			side = geom.SideLeft
		} else {
			actor.Contact.Right = true
		}
		return Hit{Obstacle: o.ID, Side: side, Probe: true}, true
	}
	return Hit{}, false
}

// sortByDistance orders obstacles by squared center distance to p. Ties
// fall back to position and then ID, so identical layouts resolve the same
// way whatever order the obstacles were registered in.
func sortByDistance(obstacles []entity.Obstacle, p geom.Vec2) {
	sort.SliceStable(obstacles, func(i, j int) bool {
		a, b := &obstacles[i], &obstacles[j]
		if da, db := a.Body.Position.DistSq(p), b.Body.Position.DistSq(p); da != db {
			return da < db
		}
		if a.Body.Position.X != b.Body.Position.X {
			return a.Body.Position.X < b.Body.Position.X
		}
		if a.Body.Position.Y != b.Body.Position.Y {
			return a.Body.Position.Y < b.Body.Position.Y
		}
		return a.ID < b.ID
	})
}
