package ecs

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/domain/entity"
)

// Tags
var (
	ActorTag    = donburi.NewTag().SetName("Actor")
	ObstacleTag = donburi.NewTag().SetName("Obstacle")
)

// Components
var (
	Actor    = donburi.NewComponentType[entity.Actor]()
	Input    = donburi.NewComponentType[system.InputState]()
	Obstacle = donburi.NewComponentType[ObstacleData]()
	Mover    = donburi.NewComponentType[MoverData]()
)

// ObstacleData is an obstacle plus its broadphase object.
type ObstacleData struct {
	Name     string
	Obstacle entity.Obstacle
	Object   *resolv.Object
}

// MoverData drives a moving obstacle.
type MoverData struct {
	Mover *system.Mover
}

// movingObstacles matches obstacles driven by a mover. Movers only touch
// their own obstacle, so query order does not matter.
var movingObstacles = donburi.NewQuery(filter.Contains(ObstacleTag, Obstacle, Mover))
