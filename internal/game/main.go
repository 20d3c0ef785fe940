package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"drift/internal/sim"
)

// Options configures the desktop frontend.
type Options struct {
	Handling      sim.Handling
	Width, Height int // initial window size
	Mute          bool
	Logger        *sim.Logger
}

// RunDesktop opens a window and drives the simulation until it is closed.
func RunDesktop(opts Options) error {
	runtime.LockOSThread()

	lg := opts.Logger
	if lg == nil {
		lg = sim.NewLogger("desktop")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = WindowWidth, WindowHeight
	}

	session, err := sim.NewSession(sim.Options{
		Width:    sim.CanvasWidth,
		Height:   sim.CanvasHeight,
		Handling: opts.Handling,
		Logger:   lg,
	})
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	window, err := initWindow(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	audio, err := NewAudioSystem()
	if err != nil {
		lg.Printf("audio init failed (continuing without sound): %v", err)
	}
	defer audio.Close()
	if opts.Mute {
		audio.ToggleMute()
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()
	for _, src := range input.Sources() {
		session.Input.Add(src)
	}

	seed := uint64(time.Now().UnixNano())
	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)

	var cam Camera
	session.Events.Subscribe(sim.EventWallHit, func(e sim.Event) {
		if mag := ShakeForImpact(e.Magnitude); mag > 0 {
			cam.AddShake(mag, ShakeDuration)
		}
		particles.SpawnSparks(e.X, e.Y, e.Magnitude)
		audio.Play(SoundThud, e.Magnitude/300)
	})
	session.Events.Subscribe(sim.EventReset, func(sim.Event) {
		particles.Clear()
		audio.Play(SoundReset, 1)
	})

	driver := sim.NewDriver(session)
	var skidBuf, glowBuf, smokeBuf []float32
	var titleTimer float64
	prevNow := glfw.GetTime()

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyR) {
			session.Reset()
		}
		if input.JustPressed(window, glfw.KeyM) {
			lg.Printf("muted: %v", audio.ToggleMute())
		}
		input.Sync(window)

		now := glfw.GetTime()
		tel := driver.Frame(now)
		ro := sim.NewReadout(tel)
		audio.SetDriving(tel.Speed, ro.Slide)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimized.
			prevNow = now
			continue
		}
		frameDt := sim.ClampDt(now - prevNow)
		prevNow = now
		w, h := session.Size()
		cam.FitCanvas(w, h, fbW, fbH)
		seed = splitmix64(seed)
		cam.UpdateShake(frameDt, seed)
		if session.Skidding() {
			particles.SpawnTyreSmoke(session.Vehicle, tel.LateralSpeed)
		}
		particles.Update(frameDt)
		glowBuf, smokeBuf = particles.ParticleRenderData(glowBuf, smokeBuf)

		rend.BeginFrame(cam, fbW, fbH, Palette.Asphalt)
		rend.DrawTrack(session.Track)
		skidBuf = session.Skids.RenderData(skidBuf[:0])
		rend.DrawDots(skidBuf, cam, fbW, fbH)
		rend.DrawDots(smokeBuf, cam, fbW, fbH)
		rend.DrawCar(session.Vehicle, cam, fbW, fbH)
		rend.DrawGlowSprites(glowBuf, cam, fbW, fbH)
		RenderHUD(rend, ro, fbW, fbH)

		titleTimer -= frameDt
		if titleTimer <= 0 {
			titleTimer = HudTitleRefresh
			window.SetTitle(HUDTitle(ro, audio.Muted()))
		}

		window.SwapBuffers()
	}
	lg.Printf("window closed after %d ticks", session.Ticks())
	return nil
}
