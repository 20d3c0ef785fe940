package term

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift/internal/sim"
)

func newTestGame(t *testing.T) (*Game, *fakeClock, *bytes.Buffer) {
	t.Helper()
	screen := newScreen(t, 96, 28)
	var logs bytes.Buffer
	g, err := NewGame(screen, Options{
		Handling: sim.DefaultHandling(),
		Mute:     true,
		Logger:   sim.NewLoggerTo(&logs, "term"),
	})
	require.NoError(t, err)
	clk := &fakeClock{t: time.Unix(1000, 0)}
	g.start = clk.t
	g.now = clk.now
	g.keys.now = clk.now
	return g, clk, &logs
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestGame_QuitKeys(t *testing.T) {
	g, _, _ := newTestGame(t)
	assert.False(t, g.HandleEvent(key('q')))
	assert.False(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.True(t, g.HandleEvent(key('w')))
}

func TestGame_ThrottleAccelerates(t *testing.T) {
	g, clk, _ := newTestGame(t)

	g.Tick() // primes the clock
	for i := 0; i < 20; i++ {
		g.HandleEvent(key('w'))
		clk.advance(TickInterval)
		g.Tick()
	}
	assert.Greater(t, g.Session().Last.ForwardSpeed, 0.0)
	assert.Greater(t, g.Session().Ticks(), uint64(20))
}

func TestGame_LatchExpiresWithoutRepeats(t *testing.T) {
	g, clk, _ := newTestGame(t)

	g.HandleEvent(key('w'))
	g.Tick()
	clk.advance(FirstHold + TickInterval)
	in := g.Session().Input.Frame()
	assert.False(t, in.Throttle)
}

func TestGame_ResetKey(t *testing.T) {
	g, clk, logs := newTestGame(t)

	var resets int
	g.Session().Events.Subscribe(sim.EventReset, func(sim.Event) { resets++ })

	g.Tick()
	for i := 0; i < 10; i++ {
		g.HandleEvent(key('w'))
		clk.advance(TickInterval)
		g.Tick()
	}
	require.NotEqual(t, sim.SpawnVehicle(sim.CanvasWidth, sim.CanvasHeight).Pos, g.Session().Vehicle.Pos)

	assert.True(t, g.HandleEvent(key('r')))
	assert.Equal(t, 1, resets)
	assert.Equal(t, sim.SpawnVehicle(sim.CanvasWidth, sim.CanvasHeight).Pos, g.Session().Vehicle.Pos)
	assert.False(t, g.keys.Held(sim.ActionThrottle), "reset drops latched keys")
	assert.Contains(t, logs.String(), "reset after")
}

func TestGame_MuteToggle(t *testing.T) {
	g, _, logs := newTestGame(t)
	require.True(t, g.sound.Muted(), "-mute starts muted")

	g.HandleEvent(key('m'))
	assert.False(t, g.sound.Muted())
	assert.Contains(t, logs.String(), "muted: false")
	assert.NotContains(t, g.status(sim.Readout{}), "muted")
}

func TestGame_ResizeRebuildsView(t *testing.T) {
	g, _, _ := newTestGame(t)
	scr := g.screen.(tcell.SimulationScreen)

	scr.SetSize(60, 20)
	g.HandleEvent(tcell.NewEventResize(60, 20))
	assert.Equal(t, 60, g.view.Cols)
	assert.Equal(t, 20, g.view.Rows)
}

func TestGame_TickDrawsStatus(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Tick()
	status := rowText(g.screen, g.view.Rows-1, g.view.Cols)
	assert.Contains(t, status, "SPEED 0  SLIDE 0  HB OFF")
	assert.Contains(t, status, "muted")
}
