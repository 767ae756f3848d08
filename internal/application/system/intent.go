package system

import "github.com/younwookim/wallhop/internal/domain/entity"

// Intent represents an action that an entity wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent sets the desired horizontal velocity.
type MoveIntent struct {
	EntityID  entity.EntityID
	Direction int // -1 for left, 1 for right, 0 for none
	Speed     float64
}

func (MoveIntent) isIntent() {}

// JumpIntent represents a normal or double jump.
type JumpIntent struct {
	EntityID entity.EntityID
	Kind     JumpKind
}

func (JumpIntent) isIntent() {}

// WallJumpIntent represents a jump off a wall.
type WallJumpIntent struct {
	EntityID  entity.EntityID
	Direction entity.Facing // away from the wall
}

func (WallJumpIntent) isIntent() {}
