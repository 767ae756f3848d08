package playing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// Squash is the landing squash-and-stretch applied to the actor sprite.
// It only affects drawing.
type Squash struct {
	cfg    config.SquashStretchConfig
	tweenX *gween.Tween
	tweenY *gween.Tween
	x, y   float64
}

// NewSquash returns an idle squash at scale 1.
func NewSquash(cfg config.SquashStretchConfig) *Squash {
	return &Squash{cfg: cfg, x: 1, y: 1}
}

// Trigger starts the landing squash.
func (s *Squash) Trigger() {
	if !s.cfg.Enabled || !(s.cfg.Duration > 0) {
		return
	}
	d := float32(s.cfg.Duration)
	s.tweenX = gween.New(float32(s.cfg.LandSquash.X), 1, d, ease.OutQuad)
	s.tweenY = gween.New(float32(s.cfg.LandSquash.Y), 1, d, ease.OutQuad)
	s.x, s.y = s.cfg.LandSquash.X, s.cfg.LandSquash.Y
}

// Update advances the squash by dt.
func (s *Squash) Update(dt float64) {
	if s.tweenX == nil {
		return
	}
	x, doneX := s.tweenX.Update(float32(dt))
	y, doneY := s.tweenY.Update(float32(dt))
	s.x, s.y = float64(x), float64(y)
	if doneX && doneY {
		s.tweenX, s.tweenY = nil, nil
		s.x, s.y = 1, 1
	}
}

// Scale returns the current sprite scale.
func (s *Squash) Scale() (x, y float64) {
	return s.x, s.y
}

// Active reports whether a squash is playing.
func (s *Squash) Active() bool {
	return s.tweenX != nil
}
