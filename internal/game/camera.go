package game

import "math"

type Camera struct {
	X, Y float64 // canvas-pixel space, camera centre
	Zoom float64 // screen pixels per canvas pixel

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in canvas pixels
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// ShakeForImpact maps a wall impact speed to a shake magnitude, 0 for taps.
func ShakeForImpact(speed float64) float64 {
	if speed < ShakeMinImpact {
		return 0
	}
	return math.Min(ShakeMaxOffset, speed*ShakePerImpact)
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// FitCanvas centres the camera on a w x h canvas and zooms so the whole
// canvas fits the framebuffer.
func (c *Camera) FitCanvas(w, h float64, fbW, fbH int) {
	c.Zoom = clampF(math.Min(float64(fbW)/w, float64(fbH)/h), MinZoom, MaxZoom)
	c.X = w / 2
	c.Y = h / 2
}

// ScreenCamera maps canvas units 1:1 onto framebuffer pixels, for the HUD.
func ScreenCamera(fbW, fbH int) Camera {
	return Camera{X: float64(fbW) / 2, Y: float64(fbH) / 2, Zoom: 1}
}
