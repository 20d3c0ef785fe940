package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vehicle is the player car. Angle is in radians with 0 facing up the screen
// and is never wrapped. The footprint is fixed at construction.
type Vehicle struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Angle  float64
	AngVel float64

	width, length float64
}

func NewVehicle(x, y, angle, width, length float64) *Vehicle {
	return &Vehicle{
		Pos:    mgl64.Vec2{x, y},
		Angle:  angle,
		width:  width,
		length: length,
	}
}

// SpawnVehicle places the default car near the bottom-right of the canvas,
// pointing left along the bottom straight.
func SpawnVehicle(canvasW, canvasH float64) *Vehicle {
	return NewVehicle(canvasW-SpawnInsetX, canvasH-SpawnInsetY, -math.Pi/2, CarWidth, CarLength)
}

func (v *Vehicle) Width() float64  { return v.width }
func (v *Vehicle) Length() float64 { return v.length }

// Axes returns the forward (nose) and right unit vectors for the current angle.
func (v *Vehicle) Axes() (forward, right mgl64.Vec2) {
	s, c := math.Sincos(v.Angle)
	return mgl64.Vec2{s, -c}, mgl64.Vec2{c, s}
}

// LocalToWorld maps a body-local point to world space. Local -y is the nose,
// so positive y runs toward the rear bumper.
func (v *Vehicle) LocalToWorld(x, y float64) mgl64.Vec2 {
	fwd, right := v.Axes()
	return v.Pos.Add(right.Mul(x)).Sub(fwd.Mul(y))
}

// Bounds is the footprint as an unrotated box centred on the position.
func (v *Vehicle) Bounds() Rect {
	return Rect{
		X: v.Pos.X() - v.width/2,
		Y: v.Pos.Y() - v.length/2,
		W: v.width,
		H: v.length,
	}
}

// Finite reports whether every mutable field is a finite real.
func (v *Vehicle) Finite() bool {
	return finite(v.Pos.X()) && finite(v.Pos.Y()) &&
		finite(v.Vel.X()) && finite(v.Vel.Y()) &&
		finite(v.Angle) && finite(v.AngVel)
}
