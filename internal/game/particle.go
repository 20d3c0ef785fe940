package game

import "math"

type ParticleKind uint8

const (
	ParticleSmoke ParticleKind = iota
	ParticleSpark
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// ParticleSystem holds short-lived tyre smoke and wall sparks. It is purely
// cosmetic and never feeds back into the simulation.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update ages and moves every particle, dropping expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	smokeDrag := math.Exp(-smokeDragRate * dt)
	sparkDrag := math.Exp(-sparkDragRate * dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		drag := smokeDrag
		if p.Kind == ParticleSpark {
			drag = sparkDrag
		}
		p.VX *= drag
		p.VY *= drag
		p.X += p.VX * dt
		p.Y += p.VY * dt
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// ParticleRenderData splits particles into glow (additive) and normal (alpha blend) buffers.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) ParticleRenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range ps.P {
		t := clampF(p.Life/p.MaxLife, 0, 1)
		rc := float32(p.Col.R) / 255.0
		gc := float32(p.Col.G) / 255.0
		bc := float32(p.Col.B) / 255.0

		switch p.Kind {
		case ParticleSmoke:
			fadeIn := math.Min(1, t/0.18)
			a := float32((1.0 - t) * fadeIn * smokeAlpha)
			size := float32(p.Size * (1.0 + t*1.6))
			normBuf = append(normBuf, float32(p.X), float32(p.Y), size, rc, gc, bc, a, 0)
		case ParticleSpark:
			// Additive: pre-multiply color by alpha.
			a := float32(1.0 - t)
			glowBuf = append(glowBuf, float32(p.X), float32(p.Y), float32(p.Size), rc*a, gc*a, bc*a, a, 0)
		}
	}
	return glowBuf, normBuf
}
