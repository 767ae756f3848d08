package system

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/wallhop/internal/domain/geom"
)

var easings = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"linear":    ease.Linear,
	"inOutSine": ease.InOutSine,
	"inOutQuad": ease.InOutQuad,
}

// ParseEasing looks up an easing curve by name. Empty means linear.
func ParseEasing(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// Mover drives a kinematic obstacle back and forth between two points.
// Velocity is derived from the displacement of each update so actors
// standing on the obstacle can inherit it.
type Mover struct {
	from, to geom.Vec2
	tween    *gween.Tween
	forward  bool
	pos      geom.Vec2
}

// NewMover creates a mover starting at from, heading to to.
func NewMover(from, to geom.Vec2, duration float64, easing string) (*Mover, error) {
	if !(duration > 0) {
		return nil, fmt.Errorf("mover duration must be positive, got %g", duration)
	}
	fn, err := ParseEasing(easing)
	if err != nil {
		return nil, err
	}
	return &Mover{
		from:    from,
		to:      to,
		tween:   gween.New(0, 1, float32(duration), fn),
		forward: true,
		pos:     from,
	}, nil
}

// Position returns the current position.
func (m *Mover) Position() geom.Vec2 {
	return m.pos
}

// Update advances the mover by dt and returns its new position and velocity.
func (m *Mover) Update(dt float64) (pos, vel geom.Vec2) {
	if !(dt > 0) {
		return m.pos, geom.Vec2{}
	}

	p, done := m.tween.Update(float32(dt))
	t := float64(p)
	if !m.forward {
		t = 1 - t
	}
	next := m.from.Lerp(m.to, t)
	vel = next.Sub(m.pos).Scale(1 / dt)
	m.pos = next

	if done {
		m.forward = !m.forward
		m.tween.Reset()
	}
	return m.pos, vel
}
