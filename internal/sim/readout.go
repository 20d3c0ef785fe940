package sim

import (
	"fmt"
	"math"
)

// Readout is the HUD view of one tick's telemetry.
type Readout struct {
	Speed     int
	Slide     int
	Handbrake bool
}

func NewReadout(t Telemetry) Readout {
	return Readout{
		Speed:     int(math.Round(t.Speed * SpeedReadoutScale)),
		Slide:     min(SlideReadoutMax, int(math.Round(math.Abs(t.LateralSpeed)*SlideReadoutScale))),
		Handbrake: t.Handbrake,
	}
}

func (r Readout) HandbrakeLabel() string {
	if r.Handbrake {
		return "ON"
	}
	return "OFF"
}

func (r Readout) String() string {
	return fmt.Sprintf("SPEED %d  SLIDE %d  HB %s", r.Speed, r.Slide, r.HandbrakeLabel())
}
