package geom

// AABB is an axis-aligned box stored as center and half extents.
type AABB struct {
	Center Vec2
	Half   Vec2
}

// NewAABB creates a box centered at c with full width w and height h.
func NewAABB(c Vec2, w, h float64) AABB {
	return AABB{Center: c, Half: Vec2{X: w / 2, Y: h / 2}}
}

// Min returns the bottom-left corner.
func (b AABB) Min() Vec2 { return b.Center.Sub(b.Half) }

// Max returns the top-right corner.
func (b AABB) Max() Vec2 { return b.Center.Add(b.Half) }

// Left returns the x of the left face.
func (b AABB) Left() float64 { return b.Center.X - b.Half.X }

// Right returns the x of the right face.
func (b AABB) Right() float64 { return b.Center.X + b.Half.X }

// Top returns the y of the top face.
func (b AABB) Top() float64 { return b.Center.Y + b.Half.Y }

// Bottom returns the y of the bottom face.
func (b AABB) Bottom() float64 { return b.Center.Y - b.Half.Y }

// Size returns the full width and height.
func (b AABB) Size() Vec2 { return b.Half.Scale(2) }

// Offset returns the box moved by d.
func (b AABB) Offset(d Vec2) AABB {
	return AABB{Center: b.Center.Add(d), Half: b.Half}
}

// Expand returns the box grown by m on every side.
func (b AABB) Expand(m float64) AABB {
	return AABB{Center: b.Center, Half: Vec2{X: b.Half.X + m, Y: b.Half.Y + m}}
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	lo := Vec2{X: min(b.Left(), o.Left()), Y: min(b.Bottom(), o.Bottom())}
	hi := Vec2{X: max(b.Right(), o.Right()), Y: max(b.Top(), o.Top())}
	return AABB{
		Center: lo.Add(hi).Scale(0.5),
		Half:   hi.Sub(lo).Scale(0.5),
	}
}

// Valid reports whether the box has strictly positive, finite extents and a
// finite center. Degenerate boxes never collide with anything.
func (b AABB) Valid() bool {
	return b.Center.IsFinite() && b.Half.IsFinite() && b.Half.X > 0 && b.Half.Y > 0
}

// Overlaps reports whether the interiors of b and o intersect. Boxes that only
// share an edge do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	return b.Left() < o.Right() && b.Right() > o.Left() &&
		b.Bottom() < o.Top() && b.Top() > o.Bottom()
}

// Penetration returns the overlap depth along each axis. Both values are
// positive only when the boxes overlap.
func (b AABB) Penetration(o AABB) (dx, dy float64) {
	dx = min(b.Right(), o.Right()) - max(b.Left(), o.Left())
	dy = min(b.Top(), o.Top()) - max(b.Bottom(), o.Bottom())
	return dx, dy
}
