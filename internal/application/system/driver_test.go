package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
)

func TestFrameDriver_LandingScenario(t *testing.T) {
	d := NewFrameDriver(createTestConfig())
	floor := Obstacles{ground(1, 0, 0, 100, 20)}
	a := createTestActor(0, 10, 10, 10)
	a.Body.Velocity = geom.V(0, -50)
	a.Jumps.Remaining = 0

	res := d.Step(a, floor, InputState{}, testDT)

	assert.InDelta(t, 15.1, a.Body.Position.Y, 1e-9)
	assert.True(t, a.Contact.Below)
	assert.Equal(t, uint(2), a.Jumps.Remaining)
	assert.False(t, a.Body.GravityActive)
	assert.Equal(t, 0.0, a.Body.Velocity.Y)
	require.Len(t, res.Events, 1)
	landed, ok := res.Events[0].(Landed)
	require.True(t, ok)
	assert.Equal(t, a.ID, landed.ActorID())
	assert.InDelta(t, 10.1, landed.Position.Y, 1e-9)

	t.Run("stays put without gravity", func(t *testing.T) {
		y := a.Body.Position.Y
		for i := 0; i < 30; i++ {
			res := d.Step(a, floor, InputState{}, testDT)
			assert.Empty(t, res.Events)
			assert.Equal(t, y, a.Body.Position.Y)
			assert.False(t, a.Body.GravityActive)
		}
	})

	t.Run("jump turns gravity back on", func(t *testing.T) {
		res := d.Step(a, floor, InputState{Jump: true, JumpPressed: true}, testDT)

		assert.True(t, a.Body.GravityActive)
		assert.False(t, a.Contact.Below)
		assert.Greater(t, a.Body.Velocity.Y, 0.0)
		assert.Greater(t, a.Body.Position.Y, 15.1)
		require.Len(t, res.Events, 1)
		assert.IsType(t, Jumped{}, res.Events[0])
	})
}

func TestFrameDriver_LowJumpOnlyOnRelease(t *testing.T) {
	cfg := createTestConfig()
	g := cfg.Physics.Gravity

	arc := func(release int) (rising, falling []float64) {
		d := NewFrameDriver(cfg)
		a := createTestActor(0, 500, 10, 10)
		a.Body.Velocity.Y = 200

		for tick := 0; a.Body.Velocity.Y > -100; tick++ {
			in := InputState{Jump: release < 0 || tick < release}
			before := a.Body.Velocity.Y
			d.Step(a, Obstacles{}, in, testDT)
			delta := before - a.Body.Velocity.Y
			switch {
			case before > g*testDT:
				rising = append(rising, delta)
			case before < 0:
				falling = append(falling, delta)
			}
		}
		return rising, falling
	}

	t.Run("held through the arc", func(t *testing.T) {
		rising, falling := arc(-1)
		require.NotEmpty(t, rising)
		for _, delta := range rising {
			assert.InDelta(t, g*testDT, delta, 1e-9)
		}
		for _, delta := range falling {
			assert.InDelta(t, g*testDT*cfg.Jump.FallMultiplier, delta, 1e-9)
		}
	})

	t.Run("released early", func(t *testing.T) {
		rising, falling := arc(5)
		require.Greater(t, len(rising), 5)
		for i, delta := range rising {
			want := g * testDT
			if i >= 5 {
				want *= cfg.Jump.LowJumpMultiplier
			}
			assert.InDelta(t, want, delta, 1e-9, "tick %d", i)
		}
		for _, delta := range falling {
			assert.InDelta(t, g*testDT*cfg.Jump.FallMultiplier, delta, 1e-9)
		}
	})
}

func TestFrameDriver_WallSlideAndJump(t *testing.T) {
	d := NewFrameDriver(createTestConfig())
	src := Obstacles{wall(1, 50, 100, 20, 200)}
	a := createTestActor(32, 100, 10, 10)
	a.Body.Velocity.Y = -10
	a.Jumps.Remaining = 0

	d.Step(a, src, InputState{}, testDT)
	require.True(t, a.Contact.TouchingWall)
	require.True(t, a.Contact.Right)
	assert.False(t, a.Body.GravityActive)

	y := a.Body.Position.Y
	for i := 0; i < 5; i++ {
		d.Step(a, src, InputState{}, testDT)
		assert.Equal(t, y, a.Body.Position.Y)
	}

	res := d.Step(a, src, InputState{Jump: true, JumpPressed: true}, testDT)
	require.NotEmpty(t, res.Events)
	wj, ok := res.Events[0].(WallJumped)
	require.True(t, ok)
	assert.Equal(t, entity.FacingLeft, wj.Direction)
	assert.Equal(t, a.Jumps.Max, a.Jumps.Remaining)
	assert.Less(t, a.Body.Velocity.X, 0.0)
	assert.Greater(t, a.Body.Position.Y, y)
	assert.False(t, a.Contact.TouchingWall)
}

func TestFrameDriver_IgnoresBadDT(t *testing.T) {
	d := NewFrameDriver(createTestConfig())
	a := createTestActor(0, 0, 10, 10)
	a.Body.Velocity = geom.V(10, 10)
	before := *a

	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		res := d.Step(a, nil, InputState{Right: true}, dt)
		assert.Empty(t, res.Intents)
		assert.Equal(t, before, *a)
	}
}

// randomInputs returns a reproducible input sequence.
func randomInputs(seed int64, n int) []InputState {
	rng := rand.New(rand.NewSource(seed))
	out := make([]InputState, n)
	for i := range out {
		out[i] = InputState{
			Left:        rng.Float64() < 0.3,
			Right:       rng.Float64() < 0.3,
			Jump:        rng.Float64() < 0.5,
			JumpPressed: rng.Float64() < 0.15,
		}
	}
	return out
}

func arena() Obstacles {
	return Obstacles{
		ground(1, 0, 0, 400, 20),
		wall(2, -200, 150, 20, 300),
		wall(3, 200, 150, 20, 300),
		wall(4, 60, 80, 30, 60),
		ground(5, -80, 90, 60, 10),
	}
}

func TestFrameDriver_JumpCountInvariant(t *testing.T) {
	d := NewFrameDriver(createTestConfig())
	a := createTestActor(0, 40, 16, 32)

	for i, in := range randomInputs(1, 3000) {
		d.Step(a, arena(), in, 1.0/60.0)
		require.LessOrEqual(t, a.Jumps.Remaining, a.Jumps.Max, "tick %d", i)
		require.True(t, a.Body.Position.IsFinite(), "tick %d", i)
	}
}

func TestFrameDriver_Deterministic(t *testing.T) {
	run := func() (entity.Actor, []Event) {
		d := NewFrameDriver(createTestConfig())
		a := createTestActor(0, 40, 16, 32)
		var events []Event
		for _, in := range randomInputs(99, 1500) {
			events = append(events, d.Step(a, arena(), in, 1.0/60.0).Events...)
		}
		return *a, events
	}

	a1, e1 := run()
	a2, e2 := run()
	assert.Equal(t, a1, a2)
	assert.Equal(t, e1, e2)
	assert.NotEmpty(t, e1)
}
