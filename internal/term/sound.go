package term

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	squealHz   = 1760.0
	thudHz     = 110.0
)

// Sound plays a tyre squeal while the car lays skid marks and a short thud
// on wall hits.
type Sound struct {
	mu          sync.Mutex
	initialized bool
	muted       bool

	mixer  *beep.Mixer
	squeal *beep.Ctrl
}

func NewSound() *Sound {
	return &Sound{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Without it every call is a no-op.
func (s *Sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	tone, err := generators.SineTone(sampleRate, squealHz)
	if err != nil {
		return err
	}
	s.squeal = &beep.Ctrl{
		Streamer: &effects.Volume{Streamer: tone, Base: 2, Volume: -4},
		Paused:   true,
	}
	s.mixer.Add(s.squeal)
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Squeal starts or stops the squeal loop.
func (s *Sound) Squeal(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.squeal.Paused = !on || s.muted
	speaker.Unlock()
}

// Thud plays a knock whose loudness follows the impact speed.
func (s *Sound) Thud(impact float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.muted {
		return
	}
	tone, err := generators.SineTone(sampleRate, thudHz)
	if err != nil {
		return
	}
	vol := -3.0
	if impact < 150 {
		vol = -5
	}
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(80*time.Millisecond),
		&effects.Volume{Streamer: tone, Base: 2, Volume: vol}))
	speaker.Unlock()
}

// ToggleMute flips mute and reports the new state.
func (s *Sound) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = !s.muted
	if s.initialized && s.muted {
		speaker.Lock()
		s.squeal.Paused = true
		speaker.Unlock()
	}
	return s.muted
}

func (s *Sound) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}
