package system

import (
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// InputState holds one tick of abstracted player input
type InputState struct {
	Left        bool
	Right       bool
	Jump        bool // held
	JumpPressed bool // went down this tick
}

// Direction returns -1, 0 or 1 from the held direction keys.
// Holding both cancels out.
func (in InputState) Direction() int {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	default:
		return 0
	}
}

// MovementSystem turns input and contact state into velocity changes
// using the Intent & Apply model.
type MovementSystem struct {
	config  *config.PhysicsConfig
	contact *ContactSystem
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.PhysicsConfig, contact *ContactSystem) *MovementSystem {
	return &MovementSystem{config: cfg, contact: contact}
}

// Plan returns the intents for this tick without touching the actor.
func (s *MovementSystem) Plan(actor *entity.Actor, input InputState) []Intent {
	speed := s.config.Movement.AirSpeed
	if actor.Contact.Below {
		speed = s.config.Movement.GroundSpeed
	}
	intents := []Intent{MoveIntent{EntityID: actor.ID, Direction: input.Direction(), Speed: speed}}

	if !input.JumpPressed {
		return intents
	}
	switch kind := s.contact.DecideJump(actor); kind {
	case JumpNone:
	case JumpWall:
		intents = append(intents, WallJumpIntent{EntityID: actor.ID, Direction: WallDirection(actor.Contact)})
	default:
		intents = append(intents, JumpIntent{EntityID: actor.ID, Kind: kind})
	}
	return intents
}

// Apply executes intents in order and returns the resulting events.
func (s *MovementSystem) Apply(actor *entity.Actor, intents []Intent) []Event {
	var events []Event
	for _, in := range intents {
		switch in := in.(type) {
		case MoveIntent:
			s.move(actor, in)
		case JumpIntent:
			if s.jump(actor) {
				events = append(events, Jumped{Actor: actor.ID, Kind: in.Kind, Position: actor.Feet()})
			}
		case WallJumpIntent:
			s.wallJump(actor, in.Direction)
			events = append(events, WallJumped{Actor: actor.ID, Position: actor.Body.Position, Direction: in.Direction})
		}
	}
	return events
}

// Update plans and applies in one call.
func (s *MovementSystem) Update(actor *entity.Actor, input InputState) []Event {
	return s.Apply(actor, s.Plan(actor, input))
}

// move sets the horizontal velocity. While wall-jumping, input is added to
// the kick until the air speed cap is exceeded, then it takes over again.
func (s *MovementSystem) move(actor *entity.Actor, in MoveIntent) {
	body := &actor.Body
	desired := float64(in.Direction) * in.Speed

	if in.Direction < 0 {
		actor.Contact.Facing = entity.FacingLeft
	} else if in.Direction > 0 {
		actor.Contact.Facing = entity.FacingRight
	}

	switch {
	case actor.Contact.WallJumping:
		if abs(body.Velocity.X) > s.config.Movement.AirSpeed {
			body.Velocity.X = desired
		} else {
			body.Velocity.X += desired
		}
	case actor.Contact.Below:
		body.Velocity.X = desired + actor.Contact.GroundVelocity.X
	default:
		body.Velocity.X = desired
	}
}

// jump spends one jump. The first jump since the last reset is full
// strength, later ones are scaled by the double jump adjuster. A grounded
// actor is nudged up first so the ground probe does not catch it again.
func (s *MovementSystem) jump(actor *entity.Actor) bool {
	adjuster := 1.0
	if !actor.Jumps.First() {
		adjuster = s.config.Jump.DoubleJumpAdjuster
	}
	if !actor.Jumps.Consume() {
		return false
	}

	if actor.Contact.Below {
		actor.Body.Position.Y += s.config.Jump.LiftoffNudge
		actor.Contact.Below = false
	}
	actor.Body.Velocity.Y = s.config.Jump.Force * s.config.Jump.Scale * adjuster
	actor.Body.GravityActive = true
	return true
}

// wallJump kicks the actor away from the wall and refills its jumps.
func (s *MovementSystem) wallJump(actor *entity.Actor, dir entity.Facing) {
	wj := s.config.WallJump
	force := s.config.Jump.Force * wj.Scale
	sign := dir.Sign()

	actor.Body.Position.X += wj.Nudge * sign
	actor.Body.Velocity.X = force * sign
	actor.Body.Velocity.Y = force * wj.Lift
	actor.Body.GravityActive = true

	c := &actor.Contact
	c.Facing = dir
	c.WallJumping = true
	c.Left = false
	c.Right = false
	c.TouchingWall = false
	actor.Jumps.Reset()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
