package entity

import "github.com/younwookim/wallhop/internal/domain/geom"

// Contact is the per-actor collision data.
//
// The directional flags, TouchingWall and GroundVelocity are cleared at the
// start of every collision pass. Facing, PrevBelow and WallJumping persist:
// they encode transitions across ticks.
type Contact struct {
	Left, Right  bool
	Below, Above bool
	TouchingWall bool

	Facing Facing

	// PrevBelow is Below from the previous pass, used to detect landings.
	PrevBelow bool

	WallJumping bool

	// GroundVelocity is the velocity of the obstacle stood on this pass.
	GroundVelocity geom.Vec2
}

// NewContact returns a contact facing right with no flags set.
func NewContact() Contact {
	return Contact{Facing: FacingRight}
}

// Reset clears the per-pass flags.
func (c *Contact) Reset() {
	c.Left = false
	c.Right = false
	c.Below = false
	c.Above = false
	c.TouchingWall = false
	c.GroundVelocity = geom.Vec2{}
}

// EitherSide reports a left or right contact.
func (c Contact) EitherSide() bool {
	return c.Left || c.Right
}

// JumpState counts the jumps left before the actor must touch ground or a wall.
type JumpState struct {
	Remaining uint
	Max       uint
}

// NewJumpState returns a full jump state.
func NewJumpState(n uint) JumpState {
	return JumpState{Remaining: n, Max: n}
}

// Reset refills the jumps.
func (j *JumpState) Reset() {
	j.Remaining = j.Max
}

// First reports whether no jump has been spent since the last reset.
func (j JumpState) First() bool {
	return j.Remaining == j.Max
}

// Consume spends one jump. It reports false, leaving the state untouched,
// when none are left.
func (j *JumpState) Consume() bool {
	if j.Remaining == 0 {
		return false
	}
	j.Remaining--
	return true
}
