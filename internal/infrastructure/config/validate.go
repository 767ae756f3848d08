package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate reports every out-of-range field at once.
func (c *PhysicsConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, v))
		}
	}

	if c.Display.Framerate < 1 {
		errs = append(errs, fmt.Errorf("display.framerate must be at least 1, got %d", c.Display.Framerate))
	}

	nonNegative("physics.gravity", c.Physics.Gravity)
	nonNegative("physics.maxFallSpeed", c.Physics.MaxFallSpeed)
	nonNegative("physics.drag", c.Physics.Drag)
	positive("physics.fixedStep", c.Physics.FixedStep)
	if c.Physics.MaxSubsteps < 1 {
		errs = append(errs, fmt.Errorf("physics.maxSubsteps must be at least 1, got %d", c.Physics.MaxSubsteps))
	}
	switch c.Physics.DragAxes {
	case DragHorizontal, DragBoth:
	default:
		errs = append(errs, fmt.Errorf("physics.dragAxes must be %q or %q, got %q", DragHorizontal, DragBoth, c.Physics.DragAxes))
	}

	nonNegative("movement.groundSpeed", c.Movement.GroundSpeed)
	nonNegative("movement.airSpeed", c.Movement.AirSpeed)

	nonNegative("jump.force", c.Jump.Force)
	nonNegative("jump.scale", c.Jump.Scale)
	nonNegative("jump.doubleJumpAdjuster", c.Jump.DoubleJumpAdjuster)
	nonNegative("jump.liftoffNudge", c.Jump.LiftoffNudge)
	if c.Jump.MaxJumps < 1 {
		errs = append(errs, errors.New("jump.maxJumps must be at least 1"))
	}
	if c.Jump.FallMultiplier < 1 {
		errs = append(errs, fmt.Errorf("jump.fallMultiplier must be >= 1, got %g", c.Jump.FallMultiplier))
	}
	if c.Jump.LowJumpMultiplier < 1 {
		errs = append(errs, fmt.Errorf("jump.lowJumpMultiplier must be >= 1, got %g", c.Jump.LowJumpMultiplier))
	}

	if c.WallJump.Enabled {
		nonNegative("wallJump.scale", c.WallJump.Scale)
		nonNegative("wallJump.lift", c.WallJump.Lift)
		nonNegative("wallJump.nudge", c.WallJump.Nudge)
	}

	nonNegative("collision.groundProbeOffset", c.Collision.GroundProbeOffset)
	nonNegative("collision.snapEpsilon", c.Collision.SnapEpsilon)
	nonNegative("collision.ledgeTolerance", c.Collision.LedgeTolerance)
	if c.Collision.SnapEpsilon >= c.Collision.GroundProbeOffset && c.Collision.GroundProbeOffset > 0 {
		errs = append(errs, fmt.Errorf("collision.snapEpsilon (%g) must be smaller than collision.groundProbeOffset (%g) or a grounded actor loses contact",
			c.Collision.SnapEpsilon, c.Collision.GroundProbeOffset))
	}
	switch c.Collision.WallDetection {
	case WallDetectionProbe, WallDetectionAABB:
	default:
		errs = append(errs, fmt.Errorf("collision.wallDetection must be %q or %q, got %q", WallDetectionProbe, WallDetectionAABB, c.Collision.WallDetection))
	}

	if c.Collision.WallDetection == WallDetectionProbe {
		positive("probe.length", c.Probe.Length)
		positive("probe.thickness", c.Probe.Thickness)
	}

	positive("actor.width", c.Actor.Width)
	positive("actor.height", c.Actor.Height)

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("world.cellSize must be positive, got %d", c.World.CellSize))
	}

	return errors.Join(errs...)
}
