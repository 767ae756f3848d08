package system

import (
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// PhysicsSystem owns the velocity steps of a tick: gravity, drag,
// integration and the variable jump height adjustment.
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// ApplyGravity pulls the body down while gravity is active. An inactive
// body has its vertical velocity cleared, which is how grounded and
// wall-stuck actors stay put.
func (s *PhysicsSystem) ApplyGravity(body *entity.Body, dt float64) {
	if !body.GravityActive {
		body.Velocity.Y = 0
		return
	}

	body.Velocity.Y -= s.config.Physics.Gravity * dt
	s.clampFall(body)
}

// ApplyDrag decays velocity toward zero by lerp(v, 0, dt*drag). The lerp
// factor is clamped so a long frame stops the body instead of reversing it.
func (s *PhysicsSystem) ApplyDrag(body *entity.Body, dt float64) {
	t := dt * body.Drag
	body.Velocity.X = geom.Lerp(body.Velocity.X, 0, t)
	if s.config.Physics.DragAxes == config.DragBoth {
		body.Velocity.Y = geom.Lerp(body.Velocity.Y, 0, t)
	}
}

// Integrate moves the body by its velocity.
func (s *PhysicsSystem) Integrate(body *entity.Body, dt float64) {
	body.Position = body.Position.Add(body.Displacement(dt))
}

// AdjustJump applies the fall and low-jump multipliers after collisions
// are resolved. Falling gets extra gravity every airborne tick. Rising
// gets extra gravity only once the jump button is no longer held.
// Grounded and wall-touching actors are left alone.
func (s *PhysicsSystem) AdjustJump(actor *entity.Actor, jumpHeld bool, dt float64) {
	if actor.Contact.Below || actor.Contact.TouchingWall {
		return
	}

	g := s.config.Physics.Gravity
	body := &actor.Body
	switch {
	case body.Velocity.Y < 0:
		body.Velocity.Y -= g * (s.config.Jump.FallMultiplier - 1) * dt
	case body.Velocity.Y > 0 && !jumpHeld:
		body.Velocity.Y -= g * (s.config.Jump.LowJumpMultiplier - 1) * dt
	}
	s.clampFall(body)
}

func (s *PhysicsSystem) clampFall(body *entity.Body) {
	maxFall := s.config.Physics.MaxFallSpeed
	if maxFall > 0 && body.Velocity.Y < -maxFall {
		body.Velocity.Y = -maxFall
	}
}
