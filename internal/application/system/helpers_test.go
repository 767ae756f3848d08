package system

import (
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

const testDT = 0.016

func createTestConfig() *config.PhysicsConfig {
	return config.Default()
}

// createTestActor builds a w x h actor centered on (x, y) with no drag.
func createTestActor(x, y, w, h float64) *entity.Actor {
	return entity.NewActor(1, geom.V(x, y), entity.ColliderBox{Width: w, Height: h}, 0, entity.DefaultMaxJumps)
}

func ground(id entity.EntityID, x, y, w, h float64) entity.Obstacle {
	return entity.Obstacle{
		ID:   id,
		Kind: entity.KindGround,
		Body: entity.Body{Position: geom.V(x, y)},
		Box:  entity.ColliderBox{Width: w, Height: h},
	}
}

func wall(id entity.EntityID, x, y, w, h float64) entity.Obstacle {
	o := ground(id, x, y, w, h)
	o.Kind = entity.KindGround | entity.KindWall
	return o
}

// groundedActor returns an actor resting on a 200x20 floor at the origin.
func groundedActor(cfg *config.PhysicsConfig) (*entity.Actor, Obstacles) {
	floor := Obstacles{ground(100, 0, 0, 200, 20)}
	a := createTestActor(0, 10+5+cfg.Collision.SnapEpsilon, 10, 10)
	a.Contact.Below = true
	a.Contact.PrevBelow = true
	a.Body.GravityActive = false
	return a, floor
}
