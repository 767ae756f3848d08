package system

import (
	"math"

	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// FrameDriver runs one actor through a full tick.
type FrameDriver struct {
	config    *config.PhysicsConfig
	Physics   *PhysicsSystem
	Collision *CollisionSystem
	Contact   *ContactSystem
	Movement  *MovementSystem
}

// NewFrameDriver wires the systems to a shared config.
func NewFrameDriver(cfg *config.PhysicsConfig) *FrameDriver {
	d := &FrameDriver{}
	d.SetConfig(cfg)
	return d
}

// SetConfig swaps the config of every system. Call it between ticks.
func (d *FrameDriver) SetConfig(cfg *config.PhysicsConfig) {
	d.config = cfg
	d.Physics = NewPhysicsSystem(cfg)
	d.Collision = NewCollisionSystem(cfg)
	d.Contact = NewContactSystem(cfg)
	d.Movement = NewMovementSystem(cfg, d.Contact)
}

// Config returns the active config.
func (d *FrameDriver) Config() *config.PhysicsConfig {
	return d.config
}

// StepResult is what one tick produced for one actor.
type StepResult struct {
	Intents []Intent
	Hits    []Hit
	Events  []Event
}

// Step advances actor by dt against the obstacles in src.
//
// Order: movement intents from last tick's contact, gravity, drag,
// riding a moving ground, integration, collision resolution, contact
// tracking, then the fall and low-jump adjustment. A non-positive or
// non-finite dt is ignored.
func (d *FrameDriver) Step(actor *entity.Actor, src ObstacleSource, input InputState, dt float64) StepResult {
	var res StepResult
	if !(dt > 0) || math.IsInf(dt, 0) {
		return res
	}

	res.Intents = d.Movement.Plan(actor, input)
	res.Events = d.Movement.Apply(actor, res.Intents)

	d.Physics.ApplyGravity(&actor.Body, dt)
	d.Physics.ApplyDrag(&actor.Body, dt)
	if actor.Contact.Below {
		actor.Body.Position.Y += actor.Contact.GroundVelocity.Y * dt
	}
	d.Physics.Integrate(&actor.Body, dt)

	res.Hits = d.Collision.Resolve(actor, src)
	if d.Contact.Update(actor) {
		res.Events = append(res.Events, Landed{Actor: actor.ID, Position: actor.Feet()})
	}

	d.Physics.AdjustJump(actor, input.Jump, dt)
	return res
}
