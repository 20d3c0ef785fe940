package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"drift/internal/sim"
)

// DesktopKeys binds keyboard keys to driving actions. Arrows and WASD both
// work.
var DesktopKeys = sim.KeyMap[glfw.Key]{
	glfw.KeyW:     sim.ActionThrottle,
	glfw.KeyUp:    sim.ActionThrottle,
	glfw.KeyS:     sim.ActionBrake,
	glfw.KeyDown:  sim.ActionBrake,
	glfw.KeyA:     sim.ActionSteerLeft,
	glfw.KeyLeft:  sim.ActionSteerLeft,
	glfw.KeyD:     sim.ActionSteerRight,
	glfw.KeyRight: sim.ActionSteerRight,
	glfw.KeySpace: sim.ActionHandbrake,
}

// Input feeds the session from the window. Holding the left mouse button
// acts as an analog steering pad centred on the window.
type Input struct {
	Keys sim.Keys
	Pad  sim.Pad

	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

// Sources returns the input sources to register with the session.
func (in *Input) Sources() []sim.Source {
	return []sim.Source{&in.Keys, &in.Pad}
}

// Sync samples held keys and the pointer for this frame.
func (in *Input) Sync(window *glfw.Window) {
	DesktopKeys.Sync(&in.Keys, func(k glfw.Key) bool {
		return window.GetKey(k) == glfw.Press
	})

	if window.GetMouseButton(glfw.MouseButtonLeft) != glfw.Press {
		in.Pad.Release()
		return
	}
	cx, _ := window.GetCursorPos()
	winW, _ := window.GetSize()
	in.Pad.Set(sim.NormalizePad(cx-float64(winW)/2, PadRadius))
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}
