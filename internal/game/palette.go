package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// F32 returns the colour as 0..1 floats with the given alpha.
func (c RGB) F32(a float32) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, a}
}

var Palette = struct {
	Asphalt  RGB
	Lane     RGB
	Wall     RGB
	WallEdge RGB
	Body     RGB
	Roof     RGB
	Nose     RGB
	Wheel    RGB
	HudBack  RGB
	HudSpeed RGB
	HudSlide RGB
	HudHBOn  RGB
	HudHBOff RGB
	Smoke    RGB
	Spark    RGB
}{
	Asphalt:  RGB{R: 51, G: 51, B: 51},
	Lane:     RGB{R: 255, G: 255, B: 255},
	Wall:     RGB{R: 10, G: 13, B: 24},
	WallEdge: RGB{R: 0, G: 0, B: 0},
	Body:     RGB{R: 83, G: 255, B: 163},
	Roof:     RGB{R: 11, G: 13, B: 18},
	Nose:     RGB{R: 103, G: 232, B: 249},
	Wheel:    RGB{R: 26, G: 31, B: 46},
	HudBack:  RGB{R: 12, G: 14, B: 22},
	HudSpeed: RGB{R: 201, G: 215, B: 255},
	HudSlide: RGB{R: 255, G: 170, B: 60},
	HudHBOn:  RGB{R: 255, G: 80, B: 80},
	HudHBOff: RGB{R: 70, G: 74, B: 90},
	Smoke:    RGB{R: 200, G: 200, B: 205},
	Spark:    RGB{R: 255, G: 196, B: 90},
}
