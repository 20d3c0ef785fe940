package sim

import (
	"fmt"
	"io"
	"math"
)

// Options configures a Session.
type Options struct {
	Width, Height float64
	Handling      Handling
	// Track overrides DefaultTrack(Width, Height) when it has walls.
	Track  Track
	Logger *Logger
}

// Session is the simulation context: everything a tick reads or writes. It is
// owned by a single goroutine and needs no locking.
type Session struct {
	Vehicle  *Vehicle
	Handling Handling
	Track    Track
	Skids    Skids
	Input    *Aggregator
	Events   *EventBus
	// Last is the telemetry of the most recent tick.
	Last Telemetry

	width, height float64
	contacts      []Contact
	skidding      bool
	ticks         uint64
	log           *Logger
}

func NewSession(opts Options) (*Session, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("canvas %vx%v: size must be positive", opts.Width, opts.Height)
	}
	if err := opts.Handling.Validate(); err != nil {
		return nil, err
	}
	track := opts.Track
	if len(track.Walls) == 0 {
		track = DefaultTrack(opts.Width, opts.Height)
	}
	if err := track.Validate(); err != nil {
		return nil, err
	}
	lg := opts.Logger
	if lg == nil {
		lg = NewLoggerTo(io.Discard, "sim")
	}
	s := &Session{
		Handling: opts.Handling,
		Track:    track,
		Input:    NewAggregator(),
		Events:   NewEventBus(),
		width:    opts.Width,
		height:   opts.Height,
		log:      lg,
	}
	s.Vehicle = SpawnVehicle(opts.Width, opts.Height)
	s.log.Printf("session ready: %d walls, canvas %.0fx%.0f", len(track.Walls), opts.Width, opts.Height)
	return s, nil
}

// Step runs one tick: input, dynamics, collision, skid marks.
func (s *Session) Step(dt float64) Telemetry {
	in := s.Input.Frame()
	t := Advance(s.Vehicle, in, s.Handling, dt)

	s.contacts = Resolve(s.Vehicle, s.Track, s.contacts[:0])
	for _, c := range s.contacts {
		s.Events.Emit(Event{
			Type:      EventWallHit,
			X:         s.Vehicle.Pos.X(),
			Y:         s.Vehicle.Pos.Y(),
			Magnitude: math.Abs(c.Speed),
		})
	}

	laid := s.Skids.Update(s.Vehicle, t.LateralSpeed)
	if laid != s.skidding {
		s.skidding = laid
		typ := EventSkidStop
		if laid {
			typ = EventSkidStart
		}
		s.Events.Emit(Event{Type: typ, X: s.Vehicle.Pos.X(), Y: s.Vehicle.Pos.Y(), Magnitude: math.Abs(t.LateralSpeed)})
	}

	s.Last = t
	s.ticks++
	return t
}

// Contacts returns the wall contacts of the last tick. The slice is reused.
func (s *Session) Contacts() []Contact { return s.contacts }

// Skidding reports whether the last tick laid skid marks.
func (s *Session) Skidding() bool { return s.skidding }

func (s *Session) Ticks() uint64 { return s.ticks }

func (s *Session) Size() (w, h float64) { return s.width, s.height }

// Reset puts the car back on the grid and wipes the skid marks.
func (s *Session) Reset() {
	s.Vehicle = SpawnVehicle(s.width, s.height)
	s.Skids.Clear()
	s.Last = Telemetry{}
	s.skidding = false
	s.contacts = s.contacts[:0]
	s.Events.Emit(Event{Type: EventReset, X: s.Vehicle.Pos.X(), Y: s.Vehicle.Pos.Y()})
	s.log.Printf("reset after %d ticks", s.ticks)
}

// Driver turns wall-clock frame callbacks into clamped simulation steps.
type Driver struct {
	s      *Session
	last   float64
	primed bool
}

func NewDriver(s *Session) *Driver {
	return &Driver{s: s}
}

// ClampDt bounds the elapsed time between frames to [0, MaxFrameDt].
func ClampDt(elapsed float64) float64 {
	if !finite(elapsed) || elapsed < 0 {
		return 0
	}
	return math.Min(MaxFrameDt, elapsed)
}

// Frame advances the session to time now (seconds). The first call only
// primes the clock and steps with dt = 0.
func (d *Driver) Frame(now float64) Telemetry {
	if !d.primed {
		d.primed = true
		d.last = now
	}
	dt := ClampDt(now - d.last)
	d.last = now
	return d.s.Step(dt)
}

func (d *Driver) Session() *Session { return d.s }
