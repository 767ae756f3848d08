package playing

import (
	"github.com/younwookim/wallhop/internal/domain/geom"
)

// Camera maps the y-up world onto the y-down screen, centered on a target.
type Camera struct {
	Center  geom.Vec2
	ScreenW int
	ScreenH int
}

// Follow eases the camera toward target. A rate of 0 snaps.
func (c *Camera) Follow(target geom.Vec2, rate, dt float64) {
	if rate <= 0 {
		c.Center = target
		return
	}
	c.Center = c.Center.Lerp(target, geom.Clamp(rate*dt, 0, 1))
}

// ToScreen converts a world point to screen pixels.
func (c *Camera) ToScreen(p geom.Vec2) (x, y float64) {
	x = p.X - c.Center.X + float64(c.ScreenW)/2
	y = float64(c.ScreenH)/2 - (p.Y - c.Center.Y)
	return x, y
}

// Rect converts a world box to a screen rectangle given by its top-left
// corner and size.
func (c *Camera) Rect(b geom.AABB) (x, y, w, h float64) {
	x, y = c.ToScreen(geom.V(b.Left(), b.Top()))
	size := b.Size()
	return x, y, size.X, size.Y
}

// Visible reports whether any part of b is on screen.
func (c *Camera) Visible(b geom.AABB) bool {
	half := geom.V(float64(c.ScreenW)/2, float64(c.ScreenH)/2)
	return b.Overlaps(geom.AABB{Center: c.Center, Half: half})
}
