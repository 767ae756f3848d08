package state

import "github.com/younwookim/wallhop/internal/domain/entity"

// Animation is the clip an external renderer should play.
type Animation int

const (
	AnimIdle Animation = iota
	AnimRun
	AnimJump
	AnimFall
	AnimWallSlide
)

func (a Animation) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimFall:
		return "fall"
	case AnimWallSlide:
		return "wallSlide"
	default:
		return "unknown"
	}
}

// AnimationOf selects the clip for an actor. Airborne actors pick jump or
// fall from the sign of their vertical velocity.
func AnimationOf(a *entity.Actor) Animation {
	switch Of(a) {
	case StateIdle:
		return AnimIdle
	case StateGrounded:
		return AnimRun
	case StateWallAdjacent:
		return AnimWallSlide
	default:
		if a.Body.Velocity.Y > 0 {
			return AnimJump
		}
		return AnimFall
	}
}

// FlipX reports whether the sprite should be mirrored (facing left).
func FlipX(a *entity.Actor) bool {
	return a.Contact.Facing == entity.FacingLeft
}
