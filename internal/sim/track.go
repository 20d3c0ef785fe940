package sim

import "fmt"

// Rect is an axis-aligned rectangle in screen-space pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects is the strict AABB overlap test; touching edges do not overlap.
func (a Rect) Intersects(b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Track is the static wall set of a circuit, immutable for a session.
type Track struct {
	Width, Height float64
	Walls         []Rect
}

// DefaultTrack lays out the loop course inside a w x h canvas: four boundary
// walls followed by the inner straights, hairpin posts and chicane.
func DefaultTrack(w, h float64) Track {
	return Track{
		Width:  w,
		Height: h,
		Walls: []Rect{
			// Outer bounds.
			{X: 20, Y: 20, W: w - 40, H: 10},
			{X: 20, Y: h - 30, W: w - 40, H: 10},
			{X: 20, Y: 20, W: 10, H: h - 40},
			{X: w - 30, Y: 20, W: 10, H: h - 40},
			// Inner pieces.
			{X: 200, Y: 160, W: w - 400, H: 10},     // top straight
			{X: 200, Y: h - 180, W: w - 400, H: 10}, // bottom straight
			{X: 200, Y: 160, W: 10, H: 120},         // hairpin post (left)
			{X: w - 210, Y: h - 300, W: 10, H: 120}, // hairpin post (right)
			{X: 350, Y: 325, W: w - 600, H: 10},     // mid chicane
		},
	}
}

// Validate reports the first wall that is not a well-formed rectangle.
func (t Track) Validate() error {
	for i, r := range t.Walls {
		if !finite(r.X) || !finite(r.Y) || !finite(r.W) || !finite(r.H) || r.W <= 0 || r.H <= 0 {
			return fmt.Errorf("%w: wall %d %+v", ErrBadWall, i, r)
		}
	}
	return nil
}
