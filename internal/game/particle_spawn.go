package game

import (
	"math"

	"drift/internal/sim"
)

// SpawnTyreSmoke puffs smoke behind both rear wheels, denser the harder the
// car slides.
func (ps *ParticleSystem) SpawnTyreSmoke(v *sim.Vehicle, lateralSpeed float64) {
	slide := math.Abs(lateralSpeed)
	if slide <= sim.SkidThreshold {
		return
	}
	r := ps.rng
	n := 1
	if slide > 2*sim.SkidThreshold {
		n = 2
	}
	rearY := v.Length()/2 - sim.RearAxleInset
	for _, side := range []float64{-1, 1} {
		wheel := v.LocalToWorld(side*(v.Width()/2-sim.WheelInset), rearY)
		for range n {
			ang := r.RangeF(0, 2*math.Pi)
			spd := r.RangeF(4, 18)
			ps.Add(Particle{
				X: wheel.X() + r.RangeF(-2, 2), Y: wheel.Y() + r.RangeF(-2, 2),
				VX: v.Vel.X()*0.15 + math.Cos(ang)*spd, VY: v.Vel.Y()*0.15 + math.Sin(ang)*spd,
				Size: r.RangeF(6, 10), MaxLife: r.RangeF(0.45, 0.8),
				Col: Palette.Smoke, Kind: ParticleSmoke,
			})
		}
	}
}

// SpawnSparks throws a fan of sparks from an impact point. Gentle taps make
// none.
func (ps *ParticleSystem) SpawnSparks(x, y, impact float64) {
	if impact < ShakeMinImpact {
		return
	}
	r := ps.rng
	count := int(math.Min(24, impact/12))
	for range count {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(60, 160) * math.Min(2, impact/200)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(3, 6), MaxLife: r.RangeF(0.12, 0.3),
			Col: Palette.Spark, Kind: ParticleSpark,
		})
	}
}
