package geom

// Side names the face of a box that is in contact with another box.
type Side uint8

const (
	SideNone Side = iota
	// SideBottom means the box rests on the other one (ground contact).
	SideBottom
	// SideTop means the box hit the other one with its head.
	SideTop
	// SideLeft means the other box is on the left.
	SideLeft
	// SideRight means the other box is on the right.
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideBottom:
		return "Bottom"
	case SideTop:
		return "Top"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// Horizontal reports whether s is Left or Right.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Collide tests a against o and classifies which side of a is penetrated.
//
// The axis with the smaller penetration depth wins (minimum translation
// vector). Vertical wins only when strictly smaller, so equal depths resolve
// horizontally. Direction along the winning axis is taken from the relative
// centers; equal centers resolve to Bottom or Left.
func Collide(a, o AABB) (Side, bool) {
	if !a.Valid() || !o.Valid() || !a.Overlaps(o) {
		return SideNone, false
	}

	dx, dy := a.Penetration(o)
	if dy < dx {
		if a.Center.Y >= o.Center.Y {
			return SideBottom, true
		}
		return SideTop, true
	}
	if a.Center.X >= o.Center.X {
		return SideLeft, true
	}
	return SideRight, true
}
