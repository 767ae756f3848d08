package playing

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wallhop/internal/application/replay"
	"github.com/younwookim/wallhop/internal/application/scene"
	"github.com/younwookim/wallhop/internal/application/state"
	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

const frame = 1.0 / 60.0

func createTestStage() *system.Stage {
	return &system.Stage{
		ID:    "test",
		Spawn: geom.V(0, 60),
		Obstacles: []system.PlacedObstacle{
			{Name: "floor", Obstacle: entity.Obstacle{
				Kind: entity.KindGround,
				Box:  entity.ColliderBox{Width: 400, Height: 20},
			}},
			{Name: "wall", Obstacle: entity.Obstacle{
				Kind: entity.KindGround | entity.KindWall,
				Body: entity.Body{Position: geom.V(120, 110)},
				Box:  entity.ColliderBox{Width: 20, Height: 200},
			}},
		},
	}
}

// scripted replays a fixed list of inputs.
type scripted struct {
	inputs []system.InputState
	i      int
}

func (s *scripted) Read() (system.InputState, bool) {
	if s.i >= len(s.inputs) {
		return system.InputState{}, false
	}
	in := s.inputs[s.i]
	s.i++
	return in, true
}

func repeat(in system.InputState, n int) []system.InputState {
	out := make([]system.InputState, n)
	for i := range out {
		out[i] = in
	}
	return out
}

func newTestPlaying(t *testing.T, src InputSource, opts Options) *Playing {
	t.Helper()
	p, err := New(config.Default(), createTestStage(), src, opts)
	require.NoError(t, err)
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
	var _ scene.Reloadable = (*Playing)(nil)
}

func TestNew(t *testing.T) {
	p := newTestPlaying(t, &scripted{}, Options{})

	require.NotNil(t, p.World())
	assert.Len(t, p.World().Obstacles(), 2)
	assert.Equal(t, []entity.EntityID{p.Actor()}, p.World().Actors())
	assert.Equal(t, geom.V(0, 60), p.camera.Center)
}

func TestNew_RejectsBadStage(t *testing.T) {
	stage := createTestStage()
	stage.Obstacles = append(stage.Obstacles, system.PlacedObstacle{Name: "far", Obstacle: entity.Obstacle{
		Kind: entity.KindGround,
		Body: entity.Body{Position: geom.V(1e6, 0)},
		Box:  entity.ColliderBox{Width: 10, Height: 10},
	}})
	_, err := New(config.Default(), stage, &scripted{}, Options{})
	assert.Error(t, err)
}

func TestPlaying_Tick(t *testing.T) {
	p := newTestPlaying(t, &scripted{}, Options{})

	for i := 0; i < 90; i++ {
		require.NoError(t, p.tick(system.InputState{}, frame))
	}
	a, err := p.World().Actor(p.Actor())
	require.NoError(t, err)
	assert.True(t, a.Grounded())
	assert.Contains(t, p.status, "landed")
	assert.Equal(t, state.StateIdle, p.machine.Current())

	require.NoError(t, p.tick(system.InputState{Jump: true, JumpPressed: true}, frame))
	assert.Equal(t, "normal jump", p.status)
	assert.Equal(t, state.StateAirborne, p.machine.Current())

	hud := p.hud(&a)
	assert.True(t, strings.HasPrefix(hud, "A/D: Move"))
	assert.Contains(t, hud, "stage test")
}

func TestPlaying_LandingTriggersSquash(t *testing.T) {
	p := newTestPlaying(t, &scripted{}, Options{})

	landedAt := -1
	for i := 0; i < 90 && landedAt < 0; i++ {
		require.NoError(t, p.tick(system.InputState{}, frame))
		if p.squash.Active() {
			landedAt = i
		}
	}
	require.GreaterOrEqual(t, landedAt, 0)

	a, err := p.World().Actor(p.Actor())
	require.NoError(t, err)
	box := p.actorBox(&a)
	assert.InDelta(t, a.Feet().Y, box.Bottom(), 1e-9, "squash keeps the feet in place")
	assert.Greater(t, box.Size().X, a.Box.Width)
	assert.Less(t, box.Size().Y, a.Box.Height)
}

func TestPlaying_SlidesAndWallJumps(t *testing.T) {
	p := newTestPlaying(t, &scripted{}, Options{})

	for i := 0; i < 60; i++ {
		require.NoError(t, p.tick(system.InputState{}, frame))
	}
	// Jump up against the wall at x=110.
	require.NoError(t, p.tick(system.InputState{Right: true, Jump: true, JumpPressed: true}, frame))
	touched := false
	for i := 0; i < 60 && !touched; i++ {
		require.NoError(t, p.tick(system.InputState{Right: true, Jump: true}, frame))
		a, err := p.World().Actor(p.Actor())
		require.NoError(t, err)
		touched = a.Contact.TouchingWall
	}
	require.True(t, touched)

	require.NoError(t, p.tick(system.InputState{Jump: true, JumpPressed: true}, frame))
	assert.Equal(t, "wall jump left", p.status)
}

func TestPlaying_Records(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := newTestPlaying(t, &scripted{}, Options{RecordPath: path})

	inputs := append(repeat(system.InputState{}, 30), repeat(system.InputState{Right: true}, 30)...)
	for _, in := range inputs {
		require.NoError(t, p.tick(in, frame))
	}
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "test", data.Stage)
	assert.InDelta(t, frame, data.Step, 1e-12)
	assert.Len(t, data.Frames, len(inputs))
}

func TestPlaying_ReplayMatchesLiveRun(t *testing.T) {
	inputs := append(repeat(system.InputState{}, 40), system.InputState{Left: true, Jump: true, JumpPressed: true})
	inputs = append(inputs, repeat(system.InputState{Left: true, Jump: true}, 20)...)
	inputs = append(inputs, repeat(system.InputState{Right: true}, 40)...)

	path := filepath.Join(t.TempDir(), "live.json")
	live := newTestPlaying(t, &scripted{inputs: inputs}, Options{RecordPath: path})
	for range inputs {
		_, err := live.Update(frame)
		require.NoError(t, err)
	}
	live.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	played := newTestPlaying(t, NewReplaySource(*data), Options{})
	for i := 0; i <= len(inputs); i++ {
		_, err := played.Update(0.5) // replays run at the recorded step
		require.NoError(t, err)
	}
	assert.True(t, played.finished)

	want, err := live.World().Snapshot(live.Actor())
	require.NoError(t, err)
	got, err := played.World().Snapshot(played.Actor())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, live.World().Tick(), played.World().Tick())
}

func TestPlaying_SetConfig(t *testing.T) {
	p := newTestPlaying(t, &scripted{}, Options{})

	bad := config.Default()
	bad.Jump.MaxJumps = 0
	assert.Error(t, p.SetConfig(bad))

	next := config.Default()
	next.Display.ScreenWidth = 320
	require.NoError(t, p.SetConfig(next))
	assert.Same(t, next, p.World().Config())
	assert.Equal(t, 320, p.camera.ScreenW)
}

func TestPlaying_SetStage(t *testing.T) {
	p := newTestPlaying(t, &scripted{}, Options{})
	for i := 0; i < 10; i++ {
		require.NoError(t, p.tick(system.InputState{}, frame))
	}

	next := createTestStage()
	next.ID = "other"
	next.Obstacles = next.Obstacles[:1]
	require.NoError(t, p.SetStage(next))
	assert.Len(t, p.World().Obstacles(), 1)
	assert.Equal(t, uint64(0), p.World().Tick())

	bad := createTestStage()
	bad.Obstacles[0].Obstacle.Box.Width = 0
	assert.Error(t, p.SetStage(bad))
	assert.Equal(t, "other", p.stage.ID, "failed reload keeps the previous stage")
}

func TestCamera(t *testing.T) {
	c := Camera{Center: geom.V(100, 50), ScreenW: 320, ScreenH: 240}

	x, y := c.ToScreen(geom.V(100, 50))
	assert.Equal(t, 160.0, x)
	assert.Equal(t, 120.0, y)

	x, y = c.ToScreen(geom.V(110, 60))
	assert.Equal(t, 170.0, x)
	assert.Equal(t, 110.0, y, "up in the world is up on screen")

	x, y, w, h := c.Rect(geom.NewAABB(geom.V(100, 50), 20, 10))
	assert.Equal(t, []float64{150, 115, 20, 10}, []float64{x, y, w, h})

	assert.True(t, c.Visible(geom.NewAABB(geom.V(260, 50), 10, 10)))
	assert.False(t, c.Visible(geom.NewAABB(geom.V(300, 50), 10, 10)))

	c.Follow(geom.V(200, 50), 0, frame)
	assert.Equal(t, geom.V(200, 50), c.Center)
	c.Follow(geom.V(300, 50), 30, 1)
	assert.Equal(t, geom.V(300, 50), c.Center, "rate*dt is clamped to 1")
}

func TestSquash(t *testing.T) {
	cfg := config.Default().Feedback.SquashStretch
	s := NewSquash(cfg)

	x, y := s.Scale()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)

	s.Trigger()
	require.True(t, s.Active())
	x, y = s.Scale()
	assert.Equal(t, cfg.LandSquash.X, x)
	assert.Equal(t, cfg.LandSquash.Y, y)

	s.Update(cfg.Duration / 2)
	x, y = s.Scale()
	assert.Less(t, x, cfg.LandSquash.X)
	assert.Greater(t, y, cfg.LandSquash.Y)

	s.Update(cfg.Duration)
	assert.False(t, s.Active())
	x, y = s.Scale()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)

	t.Run("disabled", func(t *testing.T) {
		cfg.Enabled = false
		s := NewSquash(cfg)
		s.Trigger()
		assert.False(t, s.Active())
	})
}

type fixedReader struct{ in system.InputState }

func (f fixedReader) Read() system.InputState { return f.in }

func TestLive(t *testing.T) {
	src := Live(fixedReader{in: system.InputState{Left: true}})
	in, ok := src.Read()
	assert.True(t, ok)
	assert.True(t, in.Left)
}
