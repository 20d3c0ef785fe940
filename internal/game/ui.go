package game

import (
	"fmt"

	"drift/internal/sim"
)

// HUD gauge layout in screen pixels.
const (
	hudX         = 12.0
	hudY         = 12.0
	hudBarW      = 160.0
	hudBarH      = 8.0
	hudGap       = 6.0
	hudLampSz    = 14.0
	hudSpeedFull = 1800.0 // readout value that fills the speed bar
)

// RenderHUD draws the speed and slide gauges and the handbrake lamp. It
// switches the rect program to screen space.
func RenderHUD(r *Renderer, ro sim.Readout, fbW, fbH int) {
	r.SetView(ScreenCamera(fbW, fbH), fbW, fbH)

	back := Palette.HudBack.F32(0.8)
	panelH := 2*hudBarH + hudGap + 2*hudGap
	r.DrawBox(hudX-hudGap, hudY-hudGap, hudBarW+hudLampSz+3*hudGap, panelH, back)

	speedFrac := clampF(float64(ro.Speed)/hudSpeedFull, 0, 1)
	slideFrac := clampF(float64(ro.Slide)/sim.SlideReadoutMax, 0, 1)
	gauge(r, hudX, hudY, speedFrac, Palette.HudSpeed)
	gauge(r, hudX, hudY+hudBarH+hudGap, slideFrac, Palette.HudSlide)

	lamp := Palette.HudHBOff
	if ro.Handbrake {
		lamp = Palette.HudHBOn
	}
	r.DrawBox(hudX+hudBarW+hudGap, hudY+1, hudLampSz, hudLampSz, lamp.F32(1))
}

func gauge(r *Renderer, x, y, frac float64, col RGB) {
	r.DrawBox(x, y, hudBarW, hudBarH, col.Mul(70).F32(1))
	if frac > 0 {
		r.DrawBox(x, y, hudBarW*frac, hudBarH, col.F32(1))
	}
}

// HUDTitle is the window title carrying the numeric readouts.
func HUDTitle(ro sim.Readout, muted bool) string {
	title := fmt.Sprintf("%s  |  %s  |  Hold SPACE for handbrake", WindowTitle, ro)
	if muted {
		title += "  |  muted"
	}
	return title
}
