package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
)

func newActor() *entity.Actor {
	return entity.NewActor(1, geom.V(0, 0), entity.ColliderBox{Width: 16, Height: 32}, 0, 2)
}

func TestMovementState_String(t *testing.T) {
	tests := []struct {
		state    MovementState
		expected string
	}{
		{StateIdle, "Idle"},
		{StateGrounded, "Grounded"},
		{StateAirborne, "Airborne"},
		{StateWallAdjacent, "WallAdjacent"},
		{MovementState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestOfAndAnimation(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(a *entity.Actor)
		state     MovementState
		animation Animation
	}{
		{"standing", func(a *entity.Actor) { a.Contact.Below = true }, StateIdle, AnimIdle},
		{"running", func(a *entity.Actor) {
			a.Contact.Below = true
			a.Body.Velocity.X = 200
		}, StateGrounded, AnimRun},
		{"riding a platform", func(a *entity.Actor) {
			a.Contact.Below = true
			a.Contact.GroundVelocity = geom.V(40, 0)
			a.Body.Velocity.X = 40
		}, StateIdle, AnimIdle},
		{"corner counts as ground", func(a *entity.Actor) {
			a.Contact.Below = true
			a.Contact.Left = true
			a.Contact.TouchingWall = true
		}, StateIdle, AnimIdle},
		{"wall slide", func(a *entity.Actor) { a.Contact.TouchingWall = true }, StateWallAdjacent, AnimWallSlide},
		{"side contact", func(a *entity.Actor) { a.Contact.Right = true }, StateWallAdjacent, AnimWallSlide},
		{"rising", func(a *entity.Actor) { a.Body.Velocity.Y = 100 }, StateAirborne, AnimJump},
		{"falling", func(a *entity.Actor) { a.Body.Velocity.Y = -100 }, StateAirborne, AnimFall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newActor()
			tt.setup(a)
			assert.Equal(t, tt.state, Of(a))
			assert.Equal(t, tt.animation, AnimationOf(a))
		})
	}
}

func TestMachine_Update(t *testing.T) {
	var m Machine
	a := newActor()

	_, changed := m.Update(a)
	assert.True(t, changed)
	assert.Equal(t, StateAirborne, m.Current())

	_, changed = m.Update(a)
	assert.False(t, changed)

	a.Contact.Below = true
	prev, changed := m.Update(a)
	assert.True(t, changed)
	assert.Equal(t, StateAirborne, prev)
	assert.Equal(t, StateIdle, m.Current())
}

func TestAnimation_String(t *testing.T) {
	assert.Equal(t, "run", AnimRun.String())
	assert.Equal(t, "wallSlide", AnimWallSlide.String())
	assert.Equal(t, "unknown", Animation(42).String())
}

func TestFlipX(t *testing.T) {
	a := newActor()
	assert.False(t, FlipX(a))
	a.Contact.Facing = entity.FacingLeft
	assert.True(t, FlipX(a))
}
