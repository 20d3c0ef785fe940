package sim

import "math"

// Telemetry is the per-tick byproduct of Advance that readouts and the skid
// tracker consume.
type Telemetry struct {
	Speed        float64 // |velocity| after throttle/brake, before grip and damping
	ForwardSpeed float64 // along the nose at the start of the tick
	LateralSpeed float64 // along the right axis at the start of the tick
	Handbrake    bool
}

// SteeringAuthority scales steering by speed: SteerFloor at rest, 1 once
// speed reaches SpeedForMaxSteer.
func SteeringAuthority(speed float64, p Handling) float64 {
	return SteerFloor + (1-SteerFloor)*math.Min(1, speed/p.SpeedForMaxSteer)
}

// TargetAngularVelocity is the yaw rate the car is steering toward.
func TargetAngularVelocity(steerAxis, speed float64, p Handling) float64 {
	return steerAxis * p.MaxSteerRate * SteeringAuthority(speed, p)
}

// EffectiveGrip is the lateral grip after the handbrake multiplier.
func EffectiveGrip(handbrake bool, p Handling) float64 {
	if handbrake {
		return p.BaseGrip * p.HandbrakeGripMul
	}
	return p.BaseGrip
}

// Advance steps the car by dt seconds. dt must already be clamped by the
// frame driver.
func Advance(v *Vehicle, in InputFrame, p Handling, dt float64) Telemetry {
	fwd, right := v.Axes()

	forwardSpeed := v.Vel.Dot(fwd)
	lateralSpeed := v.Vel.Dot(right)

	if in.Throttle {
		v.Vel = v.Vel.Add(fwd.Mul(p.Engine * dt))
	}
	if in.Brake {
		v.Vel = v.Vel.Sub(fwd.Mul(p.Brake * dt))
	}

	// Steering: low-pass the yaw rate toward the target for a weighty feel.
	speed := v.Vel.Len()
	target := TargetAngularVelocity(in.SteerAxis(), speed, p)
	blend := math.Min(1, SteerSmoothing*dt)
	v.AngVel += (target - v.AngVel) * blend
	v.Angle += v.AngVel * dt

	// Grip only bleeds the sideways component; less grip leaves more slide.
	lateralKill := lateralSpeed * p.SideFriction * EffectiveGrip(in.Handbrake, p) * dt
	v.Vel = v.Vel.Sub(right.Mul(lateralKill))

	v.Vel = v.Vel.Mul(p.TyreDrag)
	v.Vel = v.Vel.Mul(p.AirFriction)
	v.Vel = v.Vel.Mul(p.RollResist)

	v.Pos = v.Pos.Add(v.Vel.Mul(dt))

	return Telemetry{
		Speed:        speed,
		ForwardSpeed: forwardSpeed,
		LateralSpeed: lateralSpeed,
		Handbrake:    in.Handbrake,
	}
}
