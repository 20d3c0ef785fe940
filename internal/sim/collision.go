package sim

// Axis names the direction a collision was resolved along.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Contact records one wall push-out.
type Contact struct {
	Wall  int     // index into Track.Walls
	Axis  Axis    // axis the car was moved along
	Push  float64 // signed displacement applied, epsilon included
	Speed float64 // velocity component zeroed on Axis
}

// Resolve pushes the car out of every wall its footprint overlaps, one wall
// at a time in track order. The footprint box is taken once before any push,
// so a car wedged in a corner is corrected against each wall from the same
// starting box. Contacts are appended to out and returned.
func Resolve(v *Vehicle, t Track, out []Contact) []Contact {
	box := v.Bounds()
	for i, wall := range t.Walls {
		if !box.Intersects(wall) {
			continue
		}
		pushRight := wall.X + wall.W - box.X
		pushLeft := box.X + box.W - wall.X
		pushDown := wall.Y + wall.H - box.Y
		pushUp := box.Y + box.H - wall.Y

		minX := min(pushRight, pushLeft)
		minY := min(pushDown, pushUp)

		if minX < minY {
			dir := -1.0
			if pushRight < pushLeft {
				dir = 1
			}
			d := dir * (minX + CollisionEpsilon)
			v.Pos[0] += d
			out = append(out, Contact{Wall: i, Axis: AxisX, Push: d, Speed: v.Vel.X()})
			v.Vel[0] = 0
		} else {
			dir := -1.0
			if pushDown < pushUp {
				dir = 1
			}
			d := dir * (minY + CollisionEpsilon)
			v.Pos[1] += d
			out = append(out, Contact{Wall: i, Axis: AxisY, Push: d, Speed: v.Vel.Y()})
			v.Vel[1] = 0
		}
	}
	return out
}
