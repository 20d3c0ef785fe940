package sim

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(Options{Width: CanvasWidth, Height: CanvasHeight, Handling: DefaultHandling()})
	require.NoError(t, err)
	return s
}

func TestClampDt(t *testing.T) {
	assert.Equal(t, 0.016, ClampDt(0.016))
	assert.Equal(t, MaxFrameDt, ClampDt(MaxFrameDt))
	assert.Equal(t, MaxFrameDt, ClampDt(5))
	assert.Equal(t, 0.0, ClampDt(-0.2))
	assert.Equal(t, 0.0, ClampDt(math.NaN()))
	assert.Equal(t, 0.0, ClampDt(math.Inf(1)))
}

func TestDriverFrame(t *testing.T) {
	s := newTestSession(t)
	var keys Keys
	s.Input.Add(&keys)
	keys.Set(ActionThrottle, true)
	d := NewDriver(s)
	start := s.Vehicle.Pos

	d.Frame(100)
	assert.Equal(t, start, s.Vehicle.Pos, "first frame only primes the clock")

	// A long stall (backgrounded window) is clamped to one MaxFrameDt step.
	tel := d.Frame(130)
	assert.InDelta(t, DefaultHandling().Engine*MaxFrameDt, tel.Speed, 1e-9)
	assert.Equal(t, uint64(2), s.Ticks())
	assert.Same(t, s, d.Session())
}

func TestSessionWallHitEvent(t *testing.T) {
	s := newTestSession(t)
	var hits []Event
	s.Events.Subscribe(EventWallHit, func(e Event) { hits = append(hits, e) })

	// Aim straight down into the bottom boundary wall.
	s.Vehicle.Angle = math.Pi
	s.Vehicle.Vel = mgl64.Vec2{0, 400}
	for i := 0; i < 60 && len(hits) == 0; i++ {
		s.Step(1.0 / 60)
	}
	require.NotEmpty(t, hits)
	assert.Greater(t, hits[0].Magnitude, 0.0)
	require.NotEmpty(t, s.Contacts())
	assert.Equal(t, AxisY, s.Contacts()[0].Axis)
	assert.Equal(t, 0.0, s.Vehicle.Vel.Y())
	assert.True(t, s.Vehicle.Finite())
}

func TestSessionSkidEvents(t *testing.T) {
	s := newTestSession(t)
	var seen []EventType
	rec := func(e Event) { seen = append(seen, e.Type) }
	s.Events.Subscribe(EventSkidStart, rec)
	s.Events.Subscribe(EventSkidStop, rec)

	// Spawn faces left, so a downward velocity is pure lateral slide.
	s.Vehicle.Vel = mgl64.Vec2{0, -150}
	s.Step(1.0 / 60)
	require.True(t, s.Skidding())
	assert.Equal(t, 1, s.Skids.Left.Len())

	s.Vehicle.Vel = mgl64.Vec2{}
	s.Step(1.0 / 60)
	assert.False(t, s.Skidding())
	assert.Equal(t, []EventType{EventSkidStart, EventSkidStop}, seen)
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t)
	resets := 0
	s.Events.Subscribe(EventReset, func(Event) { resets++ })
	s.Vehicle.Vel = mgl64.Vec2{0, 200}
	for i := 0; i < 5; i++ {
		s.Step(1.0 / 60)
	}
	require.Positive(t, s.Skids.Left.Len())

	s.Reset()
	assert.Equal(t, 0, s.Skids.Left.Len())
	assert.Equal(t, 0, s.Skids.Right.Len())
	assert.Equal(t, SpawnVehicle(CanvasWidth, CanvasHeight), s.Vehicle)
	assert.Equal(t, 1, resets)
}

func TestNewSessionValidation(t *testing.T) {
	t.Run("bad handling", func(t *testing.T) {
		h := DefaultHandling()
		h.SpeedForMaxSteer = 0
		_, err := NewSession(Options{Width: 100, Height: 100, Handling: h})
		assert.ErrorIs(t, err, ErrBadHandling)
	})

	t.Run("bad wall", func(t *testing.T) {
		_, err := NewSession(Options{
			Width: 100, Height: 100, Handling: DefaultHandling(),
			Track: Track{Walls: []Rect{{X: 0, Y: 0, W: -1, H: 5}}},
		})
		assert.ErrorIs(t, err, ErrBadWall)
	})

	t.Run("bad canvas", func(t *testing.T) {
		_, err := NewSession(Options{Handling: DefaultHandling()})
		assert.Error(t, err)
	})

	t.Run("logs to given logger", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := NewSession(Options{
			Width: CanvasWidth, Height: CanvasHeight, Handling: DefaultHandling(),
			Logger: NewLoggerTo(&buf, "sim"),
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "[sim] ")
		assert.Contains(t, buf.String(), "9 walls")
	})
}
