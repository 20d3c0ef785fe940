package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadout(t *testing.T) {
	r := NewReadout(Telemetry{Speed: 100, LateralSpeed: -61, Handbrake: true})
	assert.Equal(t, 360, r.Speed)
	assert.Equal(t, 31, r.Slide)
	assert.Equal(t, "ON", r.HandbrakeLabel())
	assert.Equal(t, "SPEED 360  SLIDE 31  HB ON", r.String())

	r = NewReadout(Telemetry{LateralSpeed: 1000})
	assert.Equal(t, SlideReadoutMax, r.Slide)
	assert.Equal(t, "OFF", r.HandbrakeLabel())
}
