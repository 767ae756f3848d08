package entity

import "github.com/younwookim/wallhop/internal/domain/geom"

// Body is the kinematic state of an actor or obstacle.
// Velocity is written only by the movement controller, the collision
// resolver (nulling components on impact) and the gravity step.
type Body struct {
	Position geom.Vec2
	Velocity geom.Vec2 // units per second

	// Drag is the exponential decay coefficient toward zero velocity.
	Drag float64

	// GravityActive is cleared by the resolver while grounded or wall-sticking
	// and forced on by jumps.
	GravityActive bool
}

// Displacement returns how far the body moves in dt at its current velocity.
func (b *Body) Displacement(dt float64) geom.Vec2 {
	return b.Velocity.Scale(dt)
}

// ColliderBox is a box centered on the owning body's position.
type ColliderBox struct {
	Width, Height float64
}

// HalfExtents returns half the width and height.
func (c ColliderBox) HalfExtents() geom.Vec2 {
	return geom.Vec2{X: c.Width / 2, Y: c.Height / 2}
}

// At returns the box placed at pos.
func (c ColliderBox) At(pos geom.Vec2) geom.AABB {
	return geom.NewAABB(pos, c.Width, c.Height)
}

// Facing is the horizontal direction an actor looks at: -1 or +1.
type Facing int8

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns the facing as a float multiplier.
func (f Facing) Sign() float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// Opposite returns the other direction.
func (f Facing) Opposite() Facing {
	if f < 0 {
		return FacingRight
	}
	return FacingLeft
}

// Probe is the thin wall-detection box cast from the actor's facing edge.
// Its origin is recomputed every tick from the body position and facing.
type Probe struct {
	Origin geom.Vec2
	Facing Facing
	Size   geom.Vec2
}

// Aim places the probe on the facing edge of a box of the given half extents.
func (p *Probe) Aim(pos, half geom.Vec2, facing Facing) {
	p.Facing = facing
	p.Origin = geom.Vec2{X: pos.X + half.X*facing.Sign(), Y: pos.Y}
}

// Box returns the probe volume, centered on the origin.
func (p Probe) Box() geom.AABB {
	return geom.NewAABB(p.Origin, p.Size.X, p.Size.Y)
}
