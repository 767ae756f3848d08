package system

import (
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
)

// Event is a discrete outcome of a tick for external collaborators
// (particles, sound, animation).
type Event interface {
	ActorID() entity.EntityID
}

// Landed fires once on the tick an actor touches ground after being airborne.
type Landed struct {
	Actor    entity.EntityID
	Position geom.Vec2 // feet
}

func (e Landed) ActorID() entity.EntityID { return e.Actor }

// Jumped fires for normal and double jumps.
type Jumped struct {
	Actor    entity.EntityID
	Kind     JumpKind
	Position geom.Vec2
}

func (e Jumped) ActorID() entity.EntityID { return e.Actor }

// WallJumped fires when an actor kicks off a wall.
type WallJumped struct {
	Actor     entity.EntityID
	Position  geom.Vec2
	Direction entity.Facing
}

func (e WallJumped) ActorID() entity.EntityID { return e.Actor }
