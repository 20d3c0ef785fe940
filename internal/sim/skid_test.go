package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkidCapacity(t *testing.T) {
	var s Skids
	v := NewVehicle(400, 300, 0, CarWidth, CarLength)
	for i := 0; i < 2*MaxSkidPoints+17; i++ {
		v.Pos[0] = float64(i)
		require.True(t, s.Update(v, 120))
		require.LessOrEqual(t, s.Left.Len(), MaxSkidPoints)
		require.LessOrEqual(t, s.Right.Len(), MaxSkidPoints)
	}
	assert.Equal(t, MaxSkidPoints, s.Left.Len())
	assert.Equal(t, MaxSkidPoints, s.Right.Len())

	// Oldest surviving mark is the first one not evicted.
	first := float64(2*MaxSkidPoints + 17 - MaxSkidPoints)
	wx := CarWidth/2 - WheelInset
	assert.InDelta(t, first-wx, s.Left.At(0).X, 1e-9)
	assert.InDelta(t, float64(2*MaxSkidPoints+16)-wx, s.Left.At(MaxSkidPoints-1).X, 1e-9)
}

func TestSkidFadeIsExact(t *testing.T) {
	var s Skids
	s.Left.Push(SkidPoint{X: 1, Y: 1, Alpha: 0.5})
	s.Left.Push(SkidPoint{X: 2, Y: 2, Alpha: 0.37})
	s.Right.Push(SkidPoint{X: 3, Y: 3, Alpha: 0.9})
	v := NewVehicle(0, 0, 0, CarWidth, CarLength)

	t.Run("no new marks", func(t *testing.T) {
		laid := s.Update(v, 0)
		assert.False(t, laid)
		assert.Equal(t, 0.5*SkidFade, s.Left.At(0).Alpha)
		assert.Equal(t, 0.37*SkidFade, s.Left.At(1).Alpha)
		assert.Equal(t, 0.9*SkidFade, s.Right.At(0).Alpha)
	})

	t.Run("new marks appended", func(t *testing.T) {
		before := []float64{s.Left.At(0).Alpha, s.Left.At(1).Alpha, s.Right.At(0).Alpha}
		laid := s.Update(v, -75)
		require.True(t, laid)
		require.Equal(t, 3, s.Left.Len())
		require.Equal(t, 2, s.Right.Len())
		assert.Equal(t, before[0]*SkidFade, s.Left.At(0).Alpha)
		assert.Equal(t, before[1]*SkidFade, s.Left.At(1).Alpha)
		assert.Equal(t, before[2]*SkidFade, s.Right.At(0).Alpha)
		assert.Equal(t, SkidAlpha, s.Left.At(2).Alpha)
		assert.Equal(t, SkidAlpha, s.Right.At(1).Alpha)
	})

	t.Run("faint marks are kept", func(t *testing.T) {
		for i := 0; i < 2000; i++ {
			s.Update(v, 0)
		}
		assert.Equal(t, 3, s.Left.Len())
		assert.Greater(t, s.Left.At(0).Alpha, 0.0)
	})
}

func TestSkidThreshold(t *testing.T) {
	var s Skids
	v := NewVehicle(0, 0, 0, CarWidth, CarLength)
	assert.False(t, s.Update(v, SkidThreshold))
	assert.False(t, s.Update(v, -SkidThreshold))
	assert.Equal(t, 0, s.Left.Len())
	assert.True(t, s.Update(v, SkidThreshold+0.01))
	assert.Equal(t, 1, s.Left.Len())
}

func TestSkidWheelPositions(t *testing.T) {
	var s Skids
	v := NewVehicle(100, 100, 0, CarWidth, CarLength)
	require.True(t, s.Update(v, 50))

	wx := CarWidth/2 - WheelInset
	ry := CarLength/2 - RearAxleInset
	l, r := s.Left.At(0), s.Right.At(0)
	assert.InDelta(t, 100-wx, l.X, 1e-9)
	assert.InDelta(t, 100+ry, l.Y, 1e-9, "rear axle sits behind the centre")
	assert.InDelta(t, 100+wx, r.X, 1e-9)
	assert.InDelta(t, 100+ry, r.Y, 1e-9)

	t.Run("rotated", func(t *testing.T) {
		var s Skids
		v := NewVehicle(100, 100, -1.5707963267948966, CarWidth, CarLength) // nose pointing left
		require.True(t, s.Update(v, 50))
		l := s.Left.At(0)
		assert.InDelta(t, 100+ry, l.X, 1e-9)
		assert.InDelta(t, 100+wx, l.Y, 1e-9)
	})
}

func TestSkidRenderDataIsReadOnly(t *testing.T) {
	var s Skids
	v := NewVehicle(0, 0, 0, CarWidth, CarLength)
	s.Update(v, 100)
	s.Update(v, 100)

	buf := s.RenderData(nil)
	require.Len(t, buf, 4*8)
	assert.Equal(t, float32(SkidAlpha), buf[8+6])
	assert.InDelta(t, SkidAlpha*SkidFade, buf[6], 1e-6)

	first := append([]float32(nil), buf...)
	again := s.RenderData(buf)
	assert.Equal(t, first, again)
	assert.Equal(t, 2, s.Left.Len())
}
