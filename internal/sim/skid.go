package sim

import "math"

// SkidPoint is one mark left by a rear wheel.
type SkidPoint struct {
	X, Y  float64
	Alpha float64
}

// Rail is a bounded FIFO of skid points for one wheel. When full, pushing
// overwrites the oldest point.
type Rail struct {
	pts  [MaxSkidPoints]SkidPoint
	head int // index of the oldest point
	n    int
}

func (r *Rail) Len() int { return r.n }

func (r *Rail) Push(p SkidPoint) {
	if r.n < len(r.pts) {
		r.pts[(r.head+r.n)%len(r.pts)] = p
		r.n++
		return
	}
	r.pts[r.head] = p
	r.head = (r.head + 1) % len(r.pts)
}

// At returns the i-th point, oldest first.
func (r *Rail) At(i int) SkidPoint {
	return r.pts[(r.head+i)%len(r.pts)]
}

// Each visits points oldest first.
func (r *Rail) Each(fn func(SkidPoint)) {
	for i := 0; i < r.n; i++ {
		fn(r.At(i))
	}
}

func (r *Rail) fade(k float64) {
	for i := 0; i < r.n; i++ {
		r.pts[(r.head+i)%len(r.pts)].Alpha *= k
	}
}

func (r *Rail) Clear() {
	r.head, r.n = 0, 0
}

// Skids holds the two rear-wheel rails.
type Skids struct {
	Left, Right Rail
}

// Update fades every existing mark, then lays a fresh pair at the rear
// wheels if the car is sliding harder than SkidThreshold. Marks are only
// ever dropped by capacity, never for being faint. It reports whether a pair
// was laid.
func (s *Skids) Update(v *Vehicle, lateralSpeed float64) bool {
	s.Left.fade(SkidFade)
	s.Right.fade(SkidFade)

	if math.Abs(lateralSpeed) <= SkidThreshold {
		return false
	}
	wx := v.Width()/2 - WheelInset
	ry := v.Length()/2 - RearAxleInset
	l := v.LocalToWorld(-wx, ry)
	r := v.LocalToWorld(wx, ry)
	s.Left.Push(SkidPoint{X: l.X(), Y: l.Y(), Alpha: SkidAlpha})
	s.Right.Push(SkidPoint{X: r.X(), Y: r.Y(), Alpha: SkidAlpha})
	return true
}

func (s *Skids) Clear() {
	s.Left.Clear()
	s.Right.Clear()
}

// SkidColor is the tyre-rubber tint, 0..1 per channel.
var SkidColor = [3]float32{20.0 / 255, 22.0 / 255, 30.0 / 255}

// RenderData appends both rails as point sprites and returns the buffer.
// Format: [x, y, size, r, g, b, a, rotation] * N. Rails are not modified.
func (s *Skids) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	emit := func(p SkidPoint) {
		buf = append(buf, float32(p.X), float32(p.Y), 2*SkidDotRadius,
			SkidColor[0], SkidColor[1], SkidColor[2], float32(p.Alpha), 0)
	}
	s.Left.Each(emit)
	s.Right.Each(emit)
	return buf
}
