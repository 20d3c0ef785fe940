package game

import "drift/internal/sim"

// Window defaults.
const (
	WindowTitle  = "Drift"
	WindowWidth  = sim.CanvasWidth
	WindowHeight = sim.CanvasHeight
)

// Camera.
const (
	MinZoom = 0.25
	MaxZoom = 4.0
)

// Screen shake on wall impacts.
const (
	ShakeMinImpact = 60.0  // px/s below which hits don't shake
	ShakePerImpact = 0.012 // world px of shake per px/s of impact
	ShakeMaxOffset = 6.0
	ShakeDuration  = 0.18
)

// Rendering.
const (
	MaxSpriteRender = 2*sim.MaxSkidPoints + 64
	LaneLineAlpha   = 0.06
	LaneMargin      = 60.0
	LaneSpacingY    = 40.0
	LaneSpacingX    = 60.0
	LaneWidth       = 2.0
	HudTitleRefresh = 0.1 // seconds between window title updates
)

// Particles.
const (
	MaxParticles  = 512
	smokeDragRate = 1.2
	sparkDragRate = 2.4
	smokeAlpha    = 0.35
)

// Steering pad: mouse x offset from window centre, in window pixels, for full lock.
const PadRadius = 200.0
