package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
	"github.com/younwookim/wallhop/internal/ecs"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

const step = 1.0 / 60.0

func TestFrameInput_OmitsReleasedKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, R: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":3,"r":true}`, string(data))
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder("demo", step)
	assert.True(t, rec.IsRecording())

	rec.RecordFrame(system.InputState{Right: true})
	rec.RecordFrame(system.InputState{Right: true, Jump: true, JumpPressed: true})
	rec.Stop()
	rec.RecordFrame(system.InputState{Left: true})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "demo", data.Stage)
	assert.Equal(t, step, data.Step)
	assert.Equal(t, []FrameInput{{F: 0, R: true}, {F: 1, R: true, J: true, JP: true}}, data.Frames)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("demo", step)
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrEmptyRecording)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder("tower", step)
	inputs := []system.InputState{
		{},
		{Left: true},
		{Left: true, Jump: true, JumpPressed: true},
		{Left: true, Jump: true},
		{Right: true},
	}
	for _, in := range inputs {
		rec.RecordFrame(in)
	}

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data(), *data)

	r := NewReplayer(*data)
	assert.Equal(t, "tower", r.Stage())
	assert.Equal(t, step, r.Step())
	assert.Equal(t, len(inputs), r.TotalFrames())

	for i, want := range inputs {
		got, ok := r.GetInput()
		require.True(t, ok)
		assert.Equal(t, want, got, "frame %d", i)
	}
	_, ok := r.GetInput()
	assert.False(t, ok)
	assert.Equal(t, len(inputs), r.CurrentFrame())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{frames"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)
}

// play runs a recording against a fresh arena and returns one snapshot per tick.
func play(t *testing.T, data ReplayData) []ecs.Snapshot {
	t.Helper()
	w, err := ecs.NewWorld(config.Default())
	require.NoError(t, err)

	arena := []entity.Obstacle{
		{Kind: entity.KindGround, Box: entity.ColliderBox{Width: 600, Height: 20}},
		{Kind: entity.KindGround | entity.KindWall, Body: entity.Body{Position: geom.V(-290, 150)}, Box: entity.ColliderBox{Width: 20, Height: 300}},
		{Kind: entity.KindGround | entity.KindWall, Body: entity.Body{Position: geom.V(290, 150)}, Box: entity.ColliderBox{Width: 20, Height: 300}},
		{Kind: entity.KindGround, Body: entity.Body{Position: geom.V(0, 90)}, Box: entity.ColliderBox{Width: 120, Height: 10}},
	}
	for _, o := range arena {
		_, err := w.AddObstacle("", o, nil)
		require.NoError(t, err)
	}
	_, err = w.AddObstacle("lift", entity.Obstacle{
		Kind: entity.KindGround,
		Body: entity.Body{Position: geom.V(-150, 60)},
		Box:  entity.ColliderBox{Width: 60, Height: 10},
	}, &system.Path{To: geom.V(-150, 180), Duration: 2, Easing: "inOutSine"})
	require.NoError(t, err)

	id := w.SpawnActor(geom.V(0, 40))
	r := NewReplayer(data)
	var out []ecs.Snapshot
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		require.NoError(t, w.SetInput(id, in))
		w.Step(data.Step)
		snap, err := w.Snapshot(id)
		require.NoError(t, err)
		out = append(out, snap)
	}
	return out
}

func TestReplay_IsDeterministic(t *testing.T) {
	rec := NewRecorder("arena", step)
	for i := 0; i < 900; i++ {
		phase := (i / 45) % 6
		in := system.InputState{
			Left:  phase == 1 || phase == 2,
			Right: phase == 4 || phase == 5,
			Jump:  i%30 < 12,
		}
		in.JumpPressed = i%30 == 0 || i%30 == 8
		rec.RecordFrame(in)
	}

	path := filepath.Join(t.TempDir(), "arena.json")
	require.NoError(t, rec.Save(path))
	loaded, err := LoadReplay(path)
	require.NoError(t, err)

	live := play(t, rec.Data())
	replayed := play(t, *loaded)
	require.Len(t, replayed, len(live))
	for i := range live {
		require.Equal(t, live[i], replayed[i], "tick %d", i)
	}
}
