package state

import "github.com/younwookim/wallhop/internal/domain/entity"

// MovementState is the controller state derived from contact state.
type MovementState int

const (
	StateIdle MovementState = iota
	StateGrounded
	StateAirborne
	StateWallAdjacent
)

// String returns the string representation of the movement state
func (s MovementState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateGrounded:
		return "Grounded"
	case StateAirborne:
		return "Airborne"
	case StateWallAdjacent:
		return "WallAdjacent"
	default:
		return "Unknown"
	}
}

// stillSpeed is the horizontal speed, relative to the ground, below which
// a grounded actor counts as standing still.
const stillSpeed = 1.0

// Of derives the movement state of an actor after its last tick.
// Ground wins over wall contact, so standing in a corner is grounded.
func Of(a *entity.Actor) MovementState {
	c := a.Contact
	switch {
	case c.Below:
		rel := a.Body.Velocity.X - c.GroundVelocity.X
		if rel > -stillSpeed && rel < stillSpeed {
			return StateIdle
		}
		return StateGrounded
	case c.TouchingWall || c.EitherSide():
		return StateWallAdjacent
	default:
		return StateAirborne
	}
}

// Machine remembers the last state so hosts can react to transitions.
type Machine struct {
	current MovementState
	started bool
}

// Current returns the last observed state.
func (m *Machine) Current() MovementState {
	return m.current
}

// Update observes the actor and reports the previous state and whether
// it changed. The first call always reports a change.
func (m *Machine) Update(a *entity.Actor) (prev MovementState, changed bool) {
	next := Of(a)
	prev = m.current
	changed = !m.started || next != prev
	m.current = next
	m.started = true
	return prev, changed
}
