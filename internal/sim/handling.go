package sim

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Handling is the tunable arcade handling profile. It is loaded once and
// never mutated while a session runs.
type Handling struct {
	Engine           float64 `toml:"engine"`             // px/s^2 forward acceleration
	Brake            float64 `toml:"brake"`              // px/s^2, reverses once moving back
	BaseGrip         float64 `toml:"base_grip"`          // lower = more slide
	HandbrakeGripMul float64 `toml:"handbrake_grip_mul"` // grip multiplier while handbrake held
	SideFriction     float64 `toml:"side_friction"`      // lateral velocity kill strength
	TyreDrag         float64 `toml:"tyre_drag"`
	AirFriction      float64 `toml:"air_friction"`
	RollResist       float64 `toml:"roll_resist"`
	MaxSteerRate     float64 `toml:"max_steer_rate"`      // rad/s at full authority
	SpeedForMaxSteer float64 `toml:"speed_for_max_steer"` // px/s
}

func DefaultHandling() Handling {
	return Handling{
		Engine:           200,
		Brake:            100,
		BaseGrip:         0.2,
		HandbrakeGripMul: 1,
		SideFriction:     5,
		TyreDrag:         1,
		AirFriction:      1,
		RollResist:       1,
		MaxSteerRate:     3.5,
		SpeedForMaxSteer: 500,
	}
}

// Validate rejects profiles that could introduce NaN or runaway velocity.
func (h Handling) Validate() error {
	nonNeg := []struct {
		name string
		v    float64
	}{
		{"engine", h.Engine},
		{"brake", h.Brake},
		{"base_grip", h.BaseGrip},
		{"handbrake_grip_mul", h.HandbrakeGripMul},
		{"side_friction", h.SideFriction},
		{"max_steer_rate", h.MaxSteerRate},
	}
	for _, f := range nonNeg {
		if !finite(f.v) || f.v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrBadHandling, f.name, f.v)
		}
	}
	damping := []struct {
		name string
		v    float64
	}{
		{"tyre_drag", h.TyreDrag},
		{"air_friction", h.AirFriction},
		{"roll_resist", h.RollResist},
	}
	for _, f := range damping {
		if !finite(f.v) || f.v <= 0 || f.v > 1 {
			return fmt.Errorf("%w: %s = %v, want 0 < v <= 1", ErrBadHandling, f.name, f.v)
		}
	}
	if !finite(h.SpeedForMaxSteer) || h.SpeedForMaxSteer <= 0 {
		return fmt.Errorf("%w: speed_for_max_steer = %v, want > 0", ErrBadHandling, h.SpeedForMaxSteer)
	}
	return nil
}

// HandlingEnv names the environment variable consulted when no profile path
// is given on the command line.
const HandlingEnv = "DRIFT_HANDLING"

// HandlingPath picks the profile path: the flag value if set, else
// $DRIFT_HANDLING. Empty means built-in defaults.
func HandlingPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(HandlingEnv)
}

// ResolveHandling loads the profile at path, or returns the defaults when
// path is empty.
func ResolveHandling(path string) (Handling, error) {
	if path == "" {
		return DefaultHandling(), nil
	}
	return LoadHandling(path)
}

// LoadHandling reads a TOML profile on top of DefaultHandling. Keys absent
// from the file keep their default values.
func LoadHandling(path string) (Handling, error) {
	h := DefaultHandling()
	md, err := toml.DecodeFile(path, &h)
	if err != nil {
		return Handling{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Handling{}, fmt.Errorf("%w: unknown key %q in %s", ErrBadHandling, undec[0].String(), path)
	}
	if err := h.Validate(); err != nil {
		return Handling{}, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}
