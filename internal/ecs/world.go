package ecs

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"sort"

	"github.com/yohamta/donburi"

	"github.com/younwookim/wallhop/internal/application/state"
	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

var (
	// ErrUnknownEntity is returned for IDs that were never issued or were despawned.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrOutOfBounds is returned for obstacles that leave the world area.
	ErrOutOfBounds = errors.New("obstacle out of world bounds")
)

// World owns every actor and obstacle of a running stage.
// Actors are stepped one after another in ascending ID order, so the
// result of a tick never depends on registration or storage order.
type World struct {
	config *config.PhysicsConfig
	store  donburi.World
	broad  *broadphase
	driver *system.FrameDriver
	clock  *system.FixedStep
	logger *log.Logger

	entries   map[entity.EntityID]donburi.Entity
	actors    []entity.EntityID
	obstacles []entity.EntityID
	nextID    entity.EntityID
	tick      uint64
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for registration and config changes.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorld creates an empty world. cfg must be valid.
func NewWorld(cfg *config.PhysicsConfig, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		config:  cfg,
		store:   donburi.NewWorld(),
		driver:  system.NewFrameDriver(cfg),
		clock:   system.NewFixedStep(cfg.Physics.FixedStep, cfg.Physics.MaxSubsteps),
		logger:  log.New(io.Discard, "", 0),
		entries: make(map[entity.EntityID]donburi.Entity),
		nextID:  1,
	}
	w.broad = newBroadphase(cfg.World, w.obstacle)
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Config returns the active physics config.
func (w *World) Config() *config.PhysicsConfig {
	return w.config
}

// SetConfig swaps the physics config between ticks and re-applies the
// per-actor settings (drag, jump count, box size) to live actors. The
// world area is fixed at creation and is not resized.
func (w *World) SetConfig(cfg *config.PhysicsConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.World != w.config.World {
		w.logger.Printf("world area change ignored until restart")
	}
	w.config = cfg
	w.driver.SetConfig(cfg)
	w.clock = system.NewFixedStep(cfg.Physics.FixedStep, cfg.Physics.MaxSubsteps)

	box := entity.ColliderBox{Width: cfg.Actor.Width, Height: cfg.Actor.Height}
	for _, id := range w.actors {
		applyActorConfig(Actor.Get(w.store.Entry(w.entries[id])), box, cfg)
	}
	return nil
}

// applyActorConfig keeps the actor's feet in place when the box height
// changes, so a grounded actor stays on its ground.
func applyActorConfig(a *entity.Actor, box entity.ColliderBox, cfg *config.PhysicsConfig) {
	a.Body.Position.Y += (box.Height - a.Box.Height) / 2
	a.Box = box
	a.Body.Drag = cfg.Physics.Drag
	a.Jumps.Max = cfg.Jump.MaxJumps
	if a.Jumps.Remaining > a.Jumps.Max {
		a.Jumps.Remaining = a.Jumps.Max
	}
}

// Tick returns the number of completed steps.
func (w *World) Tick() uint64 {
	return w.tick
}

// Clock returns the fixed step accumulator driving Advance.
func (w *World) Clock() *system.FixedStep {
	return w.clock
}

func (w *World) issue() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

func (w *World) entry(id entity.EntityID) (*donburi.Entry, error) {
	e, ok := w.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	entry := w.store.Entry(e)
	if !entry.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	return entry, nil
}

// AddObstacle validates o, assigns it an ID and registers it. A non-nil
// path makes the obstacle move back and forth between its position and
// path.To. Both ends of the path must lie inside the world.
func (w *World) AddObstacle(name string, o entity.Obstacle, path *system.Path) (entity.EntityID, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if !w.broad.contains(o.Bounds()) {
		return 0, fmt.Errorf("%w: %s at (%g,%g)", ErrOutOfBounds, name, o.Body.Position.X, o.Body.Position.Y)
	}

	var mover *system.Mover
	if path != nil {
		end := o.Box.At(path.To)
		if !w.broad.contains(end) {
			return 0, fmt.Errorf("%w: %s path end (%g,%g)", ErrOutOfBounds, name, path.To.X, path.To.Y)
		}
		m, err := system.NewMover(o.Body.Position, path.To, path.Duration, path.Easing)
		if err != nil {
			return 0, fmt.Errorf("obstacle %s: %w", name, err)
		}
		mover = m
		o.Body.Velocity = geom.Vec2{}
	}

	o.ID = w.issue()
	var e donburi.Entity
	if mover != nil {
		e = w.store.Create(ObstacleTag, Obstacle, Mover)
	} else {
		e = w.store.Create(ObstacleTag, Obstacle)
	}
	entry := w.store.Entry(e)
	Obstacle.SetValue(entry, ObstacleData{Name: name, Obstacle: o, Object: w.broad.add(o)})
	if mover != nil {
		Mover.SetValue(entry, MoverData{Mover: mover})
	}

	w.entries[o.ID] = e
	w.obstacles = append(w.obstacles, o.ID)
	w.logger.Printf("obstacle %d %q kind=%s at (%g,%g) %gx%g", o.ID, name, o.Kind, o.Body.Position.X, o.Body.Position.Y, o.Box.Width, o.Box.Height)
	return o.ID, nil
}

// SpawnActor places a new actor at pos using the configured actor size.
func (w *World) SpawnActor(pos geom.Vec2) entity.EntityID {
	c := w.config
	id := w.issue()
	a := entity.NewActor(id, pos, entity.ColliderBox{Width: c.Actor.Width, Height: c.Actor.Height}, c.Physics.Drag, c.Jump.MaxJumps)

	e := w.store.Create(ActorTag, Actor, Input)
	entry := w.store.Entry(e)
	Actor.SetValue(entry, *a)

	w.entries[id] = e
	w.actors = append(w.actors, id)
	w.logger.Printf("actor %d spawned at (%g,%g)", id, pos.X, pos.Y)
	return id
}

// Despawn removes an actor or obstacle.
func (w *World) Despawn(id entity.EntityID) error {
	entry, err := w.entry(id)
	if err != nil {
		return err
	}
	if entry.HasComponent(Obstacle) {
		w.broad.remove(Obstacle.Get(entry).Object)
		w.obstacles = without(w.obstacles, id)
	} else {
		w.actors = without(w.actors, id)
	}
	w.store.Remove(entry.Entity())
	delete(w.entries, id)
	return nil
}

// LoadStage registers every obstacle of stage in order.
func (w *World) LoadStage(stage *system.Stage) error {
	for _, p := range stage.Obstacles {
		if _, err := w.AddObstacle(p.Name, p.Obstacle, p.Path); err != nil {
			return fmt.Errorf("stage %s: %w", stage.ID, err)
		}
	}
	return nil
}

// SetInput sets the input read by the actor's next step. JumpPressed is
// latched until a step consumes it, so a press set on a frame that runs
// no step is not lost.
func (w *World) SetInput(id entity.EntityID, in system.InputState) error {
	entry, err := w.entry(id)
	if err != nil {
		return err
	}
	if !entry.HasComponent(Input) {
		return fmt.Errorf("%w: %d is not an actor", ErrUnknownEntity, id)
	}
	in.JumpPressed = in.JumpPressed || Input.Get(entry).JumpPressed
	Input.SetValue(entry, in)
	return nil
}

// Step advances the world by dt. Moving obstacles update first, then each
// actor in ascending ID order. Events come back in the same order.
func (w *World) Step(dt float64) []system.Event {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil
	}

	movingObstacles.Each(w.store, func(entry *donburi.Entry) {
		pos, vel := Mover.Get(entry).Mover.Update(dt)
		data := Obstacle.Get(entry)
		data.Obstacle.Body.Position = pos
		data.Obstacle.Body.Velocity = vel
		w.broad.move(data.Object, data.Obstacle)
	})

	var events []system.Event
	for _, id := range w.actors {
		entry := w.store.Entry(w.entries[id])
		actor := Actor.Get(entry)
		in := Input.Get(entry)
		res := w.driver.Step(actor, w.broad, *in, dt)
		in.JumpPressed = false
		events = append(events, res.Events...)
	}
	w.tick++
	return events
}

// Advance feeds elapsed wall time to the fixed step clock and runs as many
// steps as it yields.
func (w *World) Advance(elapsed float64) []system.Event {
	var events []system.Event
	w.clock.Advance(elapsed, func(dt float64) {
		events = append(events, w.Step(dt)...)
	})
	return events
}

func (w *World) obstacle(id entity.EntityID) (entity.Obstacle, bool) {
	e, ok := w.entries[id]
	if !ok {
		return entity.Obstacle{}, false
	}
	entry := w.store.Entry(e)
	if !entry.Valid() || !entry.HasComponent(Obstacle) {
		return entity.Obstacle{}, false
	}
	return Obstacle.Get(entry).Obstacle, true
}

// Actor returns a copy of the actor with the given ID.
func (w *World) Actor(id entity.EntityID) (entity.Actor, error) {
	entry, err := w.entry(id)
	if err != nil {
		return entity.Actor{}, err
	}
	if !entry.HasComponent(Actor) {
		return entity.Actor{}, fmt.Errorf("%w: %d is not an actor", ErrUnknownEntity, id)
	}
	return *Actor.Get(entry), nil
}

// Actors returns the actor IDs in ascending order.
func (w *World) Actors() []entity.EntityID {
	return append([]entity.EntityID(nil), w.actors...)
}

// Obstacles returns every obstacle in ascending ID order.
func (w *World) Obstacles() []entity.Obstacle {
	var out []entity.Obstacle
	ObstacleTag.Each(w.store, func(entry *donburi.Entry) {
		out = append(out, Obstacle.Get(entry).Obstacle)
	})
	sortByID(out)
	return out
}

// Snapshot is the observable state of one actor after a step.
type Snapshot struct {
	ID             entity.EntityID
	Position       geom.Vec2
	Velocity       geom.Vec2
	Facing         entity.Facing
	Grounded       bool
	TouchingWall   bool
	WallJumping    bool
	JumpsRemaining uint
	State          state.MovementState
	Animation      state.Animation
}

// Snapshot returns the observable state of an actor.
func (w *World) Snapshot(id entity.EntityID) (Snapshot, error) {
	a, err := w.Actor(id)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ID:             a.ID,
		Position:       a.Body.Position,
		Velocity:       a.Body.Velocity,
		Facing:         a.Contact.Facing,
		Grounded:       a.Contact.Below,
		TouchingWall:   a.Contact.TouchingWall,
		WallJumping:    a.Contact.WallJumping,
		JumpsRemaining: a.Jumps.Remaining,
		State:          state.Of(&a),
		Animation:      state.AnimationOf(&a),
	}, nil
}

// Snapshots returns the state of every actor in ascending ID order.
func (w *World) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(w.actors))
	for _, id := range w.actors {
		s, err := w.Snapshot(id)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func sortByID(obstacles []entity.Obstacle) {
	sort.Slice(obstacles, func(i, j int) bool { return obstacles[i].ID < obstacles[j].ID })
}

func without(ids []entity.EntityID, id entity.EntityID) []entity.EntityID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
