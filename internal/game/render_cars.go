package game

import (
	"math"

	"drift/internal/sim"
)

// carPart is a body-local rectangle; the nose points toward local -y.
type carPart struct {
	x, y, w, h float64
	col        RGB
}

// carParts lays out the car for a w x l footprint, back to front in draw order.
func carParts(w, l float64) []carPart {
	return []carPart{
		{x: -w / 2, y: -l/2 + 15, w: 12, h: 18, col: Palette.Wheel},
		{x: w / 2, y: -l/2 + 15, w: 12, h: 18, col: Palette.Wheel},
		{x: -w / 2, y: l/2 - 15, w: 12, h: 18, col: Palette.Wheel},
		{x: w / 2, y: l/2 - 15, w: 12, h: 18, col: Palette.Wheel},
		{x: 0, y: 0, w: w, h: l, col: Palette.Body},
		{x: 0, y: 0, w: w - 12, h: 20, col: Palette.Roof},
	}
}

// DrawCar draws the player car at its current pose plus a glow on the nose.
func (rend *Renderer) DrawCar(v *sim.Vehicle, cam Camera, fbW, fbH int) {
	rend.SetView(cam, fbW, fbH)
	for _, p := range carParts(v.Width(), v.Length()) {
		c := v.LocalToWorld(p.x, p.y)
		rend.DrawRect(c.X(), c.Y(), p.w, p.h, v.Angle, p.col.F32(1))
	}

	// Nose: a diamond whose front corner pokes past the bumper.
	nose := v.LocalToWorld(0, -v.Length()/2+2)
	side := 8 * math.Sqrt2
	rend.DrawRect(nose.X(), nose.Y(), side, side, v.Angle+math.Pi/4, Palette.Nose.F32(1))

	tip := v.LocalToWorld(0, -v.Length()/2-4)
	n := Palette.Nose.F32(0.35)
	rend.DrawGlowSprites([]float32{
		float32(tip.X()), float32(tip.Y()), 26, n[0] * n[3], n[1] * n[3], n[2] * n[3], 1, 0,
	}, cam, fbW, fbH)
}
