package entity

import "github.com/younwookim/wallhop/internal/domain/geom"

// DefaultMaxJumps allows a double jump.
const DefaultMaxJumps = 2

// Actor is the aggregate a player-controlled character owns exclusively.
type Actor struct {
	ID      EntityID
	Body    Body
	Box     ColliderBox
	Contact Contact
	Jumps   JumpState
	Probe   Probe
}

// NewActor creates an airborne actor with gravity on and a full jump state.
func NewActor(id EntityID, pos geom.Vec2, box ColliderBox, drag float64, maxJumps uint) *Actor {
	return &Actor{
		ID: id,
		Body: Body{
			Position:      pos,
			Drag:          drag,
			GravityActive: true,
		},
		Box:     box,
		Contact: NewContact(),
		Jumps:   NewJumpState(maxJumps),
	}
}

// Bounds returns the actor box in world space.
func (a *Actor) Bounds() geom.AABB {
	return a.Box.At(a.Body.Position)
}

// Feet returns the bottom-center point of the actor box.
func (a *Actor) Feet() geom.Vec2 {
	return geom.Vec2{X: a.Body.Position.X, Y: a.Body.Position.Y - a.Box.Height/2}
}

// Grounded reports a ground contact from the last collision pass.
func (a *Actor) Grounded() bool {
	return a.Contact.Below
}
