package system

import (
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// JumpKind classifies a jump request.
type JumpKind uint8

const (
	JumpNone JumpKind = iota
	JumpNormal
	JumpDouble
	JumpWall
)

func (k JumpKind) String() string {
	switch k {
	case JumpNormal:
		return "normal"
	case JumpDouble:
		return "double"
	case JumpWall:
		return "wall"
	default:
		return "none"
	}
}

// ContactSystem carries contact state across ticks.
type ContactSystem struct {
	config *config.PhysicsConfig
}

// NewContactSystem creates a new contact system
func NewContactSystem(cfg *config.PhysicsConfig) *ContactSystem {
	return &ContactSystem{config: cfg}
}

// Update runs after a collision pass. It sets the gravity flag from the
// fresh contact and reports whether this pass is a landing.
func (s *ContactSystem) Update(actor *entity.Actor) (landed bool) {
	c := &actor.Contact
	stick := s.config.Probe.WallStick && c.TouchingWall && actor.Body.Velocity.Y <= 0
	actor.Body.GravityActive = !(c.Below || stick)

	landed = c.Below && !c.PrevBelow
	c.PrevBelow = c.Below
	return landed
}

// DecideJump picks what a jump press does given the current contact.
// Grounded actors jump normally. Airborne actors beside a wall wall-jump.
// Otherwise the actor spends one of its remaining jumps, at full strength
// if none was spent yet (walking off a ledge keeps the first jump).
func (s *ContactSystem) DecideJump(actor *entity.Actor) JumpKind {
	c := actor.Contact
	switch {
	case c.Below:
		if actor.Jumps.Remaining == 0 {
			return JumpNone
		}
		return JumpNormal
	case c.EitherSide() && s.config.WallJump.Enabled:
		return JumpWall
	case actor.Jumps.Remaining == 0:
		return JumpNone
	case actor.Jumps.First():
		return JumpNormal
	default:
		return JumpDouble
	}
}

// WallDirection returns the horizontal direction pointing away from the
// touched wall: +1 off a left wall, -1 off a right wall.
func WallDirection(c entity.Contact) entity.Facing {
	if c.Right {
		return entity.FacingLeft
	}
	return entity.FacingRight
}
