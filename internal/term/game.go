// Package term is a terminal frontend for the drift simulation.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"drift/internal/sim"
)

const TickInterval = 16 * time.Millisecond

// Options configures the terminal frontend.
type Options struct {
	Handling sim.Handling
	Mute     bool
	Logger   *sim.Logger
}

type Game struct {
	screen tcell.Screen
	view   View

	session *sim.Session
	driver  *sim.Driver
	keys    *LatchKeys
	sound   *Sound
	log     *sim.Logger

	start time.Time
	now   func() time.Time
}

// NewGame builds a game on an already initialised screen.
func NewGame(screen tcell.Screen, opts Options) (*Game, error) {
	lg := opts.Logger
	if lg == nil {
		lg = sim.NewLogger("term")
	}
	session, err := sim.NewSession(sim.Options{
		Width:    sim.CanvasWidth,
		Height:   sim.CanvasHeight,
		Handling: opts.Handling,
		Logger:   lg,
	})
	if err != nil {
		return nil, err
	}
	g := &Game{
		screen:  screen,
		session: session,
		driver:  sim.NewDriver(session),
		keys:    NewLatchKeys(nil),
		sound:   NewSound(),
		log:     lg,
		start:   time.Now(),
		now:     time.Now,
	}
	session.Input.Add(g.keys)
	g.resize()

	session.Events.Subscribe(sim.EventWallHit, func(e sim.Event) {
		g.sound.Thud(e.Magnitude)
	})
	session.Events.Subscribe(sim.EventSkidStart, func(sim.Event) { g.sound.Squeal(true) })
	session.Events.Subscribe(sim.EventSkidStop, func(sim.Event) { g.sound.Squeal(false) })
	session.Events.Subscribe(sim.EventReset, func(sim.Event) { g.sound.Squeal(false) })

	if !opts.Mute {
		if err := g.sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			lg.Printf("audio initialization failed: %v", err)
		}
	} else {
		g.sound.ToggleMute()
	}
	return g, nil
}

func (g *Game) Session() *sim.Session { return g.session }

func (g *Game) resize() {
	cols, rows := g.screen.Size()
	w, h := g.session.Size()
	g.view = NewView(cols, rows, w, h)
}

// HandleEvent applies one terminal event and reports whether to keep running.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				g.keys.Release()
				g.session.Reset()
				return true
			case 'm', 'M':
				g.log.Printf("muted: %v", g.sound.ToggleMute())
				return true
			}
		}
		if a, ok := ActionFor(ev); ok {
			g.keys.Press(a)
		}
	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	}
	return true
}

// Tick advances the simulation to the current clock and redraws.
func (g *Game) Tick() sim.Telemetry {
	tel := g.driver.Frame(g.now().Sub(g.start).Seconds())
	ro := sim.NewReadout(tel)
	g.view.Draw(g.screen, g.session, g.status(ro), ro.Handbrake)
	g.screen.Show()
	return tel
}

func (g *Game) status(ro sim.Readout) string {
	s := " " + ro.String()
	if g.sound.Muted() {
		s += "  |  muted"
	}
	return s + "  |  WASD/arrows drive  SPACE handbrake  R reset  M mute  Q quit"
}

// Run drives the game from a ticker until the player quits.
func (g *Game) Run() {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				g.log.Printf("quit after %d ticks", g.session.Ticks())
				return
			}
		case <-ticker.C:
			g.Tick()
		}
	}
}

func (g *Game) Close() {
	g.sound.Close()
}
