package game

import (
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Loop mixing.
const (
	squealMinSlide = 20.0 // readout slide at which the squeal starts
	engineBaseHz   = 48.0 // idle hum
	engineHzPerPx  = 0.16 // extra Hz per px/s of speed
	engineMaxGain  = 0.10
	squealMaxGain  = 0.22
	gainSlewPerSec = 6.0 // how fast loop gains chase their targets
)

// SoundKind identifies one-shot sound effects.
type SoundKind int

const (
	SoundThud SoundKind = iota
	SoundReset
)

// AudioSystem plays the engine/squeal loop and one-shot effects. Gains are
// set from the frame loop and read on oto's goroutine, so they are atomic.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}

	mu   sync.Mutex
	loop oto.Player

	engineHz   atomic.Uint64 // float64 bits
	engineGain atomic.Uint64
	squealGain atomic.Uint64
	muted      atomic.Bool

	sfxVolume float64
	activeSFX atomic.Int32
}

// NewAudioSystem opens the output device. The loop starts once the device
// reports ready.
func NewAudioSystem() (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	a := &AudioSystem{ctx: ctx, ready: ready, sfxVolume: 0.8}
	a.engineHz.Store(math.Float64bits(engineBaseHz))
	go func() {
		<-ready
		a.mu.Lock()
		defer a.mu.Unlock()
		a.loop = ctx.NewPlayer(&loopReader{a: a})
		a.loop.Play()
	}()
	return a, nil
}

func (a *AudioSystem) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// SetDriving updates the loop from the latest readout.
func (a *AudioSystem) SetDriving(speed float64, slide int) {
	if a == nil {
		return
	}
	a.engineHz.Store(math.Float64bits(engineBaseHz + speed*engineHzPerPx))
	a.engineGain.Store(math.Float64bits(engineMaxGain * clampF(0.25+speed/400, 0, 1)))
	sq := 0.0
	if float64(slide) > squealMinSlide {
		sq = squealMaxGain * clampF((float64(slide)-squealMinSlide)/50, 0, 1)
	}
	a.squealGain.Store(math.Float64bits(sq))
}

func (a *AudioSystem) ToggleMute() bool {
	if a == nil {
		return true
	}
	m := !a.muted.Load()
	a.muted.Store(m)
	return m
}

func (a *AudioSystem) Muted() bool {
	return a == nil || a.muted.Load()
}

// Play fires a one-shot effect at the given gain (0..1).
func (a *AudioSystem) Play(kind SoundKind, gain float64) {
	if !a.isReady() || gain <= 0 || a.muted.Load() {
		return
	}
	// More than two overlapping hits just clips.
	if a.activeSFX.Load() >= 2 {
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	a.activeSFX.Add(1)
	go func() {
		defer a.activeSFX.Add(-1)
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func (a *AudioSystem) Close() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loop != nil {
		a.loop.Close()
		a.loop = nil
	}
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// loopReader synthesizes the engine hum and tyre squeal forever.
type loopReader struct {
	a           *AudioSystem
	t           float64
	phase       float64
	eng, sq     float64 // smoothed gains
	seed        uint64
	noiseLowest float64
}

func (r *loopReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	dt := 1.0 / SampleRate
	slew := gainSlewPerSec * dt
	hz := math.Float64frombits(r.a.engineHz.Load())
	engTarget := math.Float64frombits(r.a.engineGain.Load())
	sqTarget := math.Float64frombits(r.a.squealGain.Load())
	if r.a.muted.Load() {
		engTarget, sqTarget = 0, 0
	}
	for i := 0; i < frames; i++ {
		r.eng += clampF(engTarget-r.eng, -slew, slew)
		r.sq += clampF(sqTarget-r.sq, -slew, slew)

		r.phase += hz * dt
		if r.phase > 1 {
			r.phase -= math.Floor(r.phase)
		}
		// Engine: saw + sub sine, softened.
		saw := 2*r.phase - 1
		engine := softSat(0.6*saw+0.5*math.Sin(2*math.Pi*r.phase*0.5)) * r.eng

		// Squeal: narrow band noise around a wobbling whistle.
		n := lcg(&r.seed)
		r.noiseLowest += (n - r.noiseLowest) * 0.35
		whistle := math.Sin(2 * math.Pi * (1900 + 140*math.Sin(2*math.Pi*7*r.t)) * r.t)
		squeal := (0.55*whistle + 0.45*r.noiseLowest) * r.sq

		putStereoF32(p, i, softSat(engine+squeal))
		r.t += dt
	}
	return frames * 8, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundThud:
		return genThud()
	case SoundReset:
		return genReset()
	}
	return nil
}

// genThud is a short low body-panel knock with a noise transient.
func genThud() []byte {
	dur := 0.22
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x7A11)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		prog := float64(i) / float64(n)
		env := adsr(prog, 0.01, 0.25, 0.3, 0.6)
		freq := 90 - 40*prog
		body := math.Sin(2*math.Pi*freq*t) * env
		click := lcg(&seed) * math.Exp(-t*80)
		putStereoF32(buf, i, softSat(0.8*body+0.35*click))
	}
	return buf
}

// genReset is a rising two-tone chirp.
func genReset() []byte {
	dur := 0.18
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		prog := float64(i) / float64(n)
		env := adsr(prog, 0.05, 0.2, 0.6, 0.3)
		freq := 660.0
		if prog > 0.5 {
			freq = 990
		}
		putStereoF32(buf, i, 0.4*math.Sin(2*math.Pi*freq*t)*env)
	}
	return buf
}
