package sim

// Canvas defaults (screen-space pixels).
const (
	CanvasWidth  = 960
	CanvasHeight = 540
)

// Frame timing.
const (
	MaxFrameDt     = 0.032 // seconds; longer gaps are clamped
	SteerSmoothing = 12.0  // angular velocity low-pass gain, 1/s
	SteerFloor     = 0.35  // minimum steering authority
)

// Car footprint and spawn.
const (
	CarWidth    = 28.0
	CarLength   = 54.0
	SpawnInsetX = 260.0
	SpawnInsetY = 90.0
)

// Collision.
const CollisionEpsilon = 0.5

// Skid marks.
const (
	MaxSkidPoints = 600
	SkidFade      = 0.98
	SkidAlpha     = 0.5  // opacity of a freshly laid mark
	SkidThreshold = 40.0 // lateral speed, px/s
	SkidDotRadius = 2.0
	WheelInset    = 6.0  // from the side edge
	RearAxleInset = 18.0 // from the rear edge
)

// HUD readout scaling.
const (
	SpeedReadoutScale = 3.6
	SlideReadoutScale = 0.5
	SlideReadoutMax   = 99
)
