package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift/internal/sim"
)

func TestParticleSystem_OverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(3, 1)
	for i := range 5 {
		ps.Add(Particle{X: float64(i), MaxLife: 1})
	}
	require.Len(t, ps.P, 3)
	// Slots 0 and 1 were overwritten by the 4th and 5th particles.
	assert.Equal(t, []float64{3, 4, 2}, []float64{ps.P[0].X, ps.P[1].X, ps.P[2].X})
}

func TestParticleSystem_UpdateExpiresAndMoves(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	ps.Add(Particle{VX: 100, MaxLife: 1, Kind: ParticleSmoke})
	ps.Add(Particle{MaxLife: 0.05, Kind: ParticleSpark})

	ps.Update(0.1)
	require.Len(t, ps.P, 1, "short-lived spark expired")
	assert.Greater(t, ps.P[0].X, 0.0)
	assert.Less(t, ps.P[0].VX, 100.0, "drag slows particles")

	ps.Update(0)
	assert.Len(t, ps.P, 1, "zero dt is a no-op")
}

func TestParticleRenderData_SplitsByKind(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	ps.Add(Particle{Size: 8, MaxLife: 1, Life: 0.5, Col: Palette.Smoke, Kind: ParticleSmoke})
	ps.Add(Particle{Size: 4, MaxLife: 1, Life: 0.5, Col: Palette.Spark, Kind: ParticleSpark})
	ps.Add(Particle{Size: 4, MaxLife: 1, Life: 0.25, Col: Palette.Spark, Kind: ParticleSpark})

	glow, norm := ps.ParticleRenderData(nil, nil)
	assert.Len(t, glow, 16)
	assert.Len(t, norm, 8)
	assert.InDelta(t, 0.5, glow[6], 1e-6, "spark alpha fades linearly")
	assert.Greater(t, norm[2], float32(8), "smoke grows as it ages")
}

func TestSpawnTyreSmoke_OnlyWhileSliding(t *testing.T) {
	ps := NewParticleSystem(64, 7)
	car := sim.SpawnVehicle(sim.CanvasWidth, sim.CanvasHeight)

	ps.SpawnTyreSmoke(car, sim.SkidThreshold)
	assert.Empty(t, ps.P)

	ps.SpawnTyreSmoke(car, sim.SkidThreshold+1)
	assert.Len(t, ps.P, 2, "one puff per rear wheel")

	ps.SpawnTyreSmoke(car, -3*sim.SkidThreshold)
	assert.Len(t, ps.P, 6, "hard slides puff twice per wheel")
}

func TestSpawnSparks_ScalesWithImpact(t *testing.T) {
	ps := NewParticleSystem(64, 7)
	ps.SpawnSparks(100, 100, ShakeMinImpact-1)
	assert.Empty(t, ps.P)

	ps.SpawnSparks(100, 100, 120)
	assert.Len(t, ps.P, 10)

	ps.Clear()
	ps.SpawnSparks(100, 100, 5000)
	assert.Len(t, ps.P, 24)
}
