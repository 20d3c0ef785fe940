package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Rect program: walls, car body parts, HUD bars.
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32

	uCentre     int32
	uSize       int32
	uRotation   int32
	uCamera     int32
	uZoom       int32
	uResolution int32
	uColor      int32

	// Point sprite programs share one streaming VAO.
	spriteVAO uint32
	spriteVBO uint32

	dotProg        uint32
	dotUCamera     int32
	dotUZoom       int32
	dotUResolution int32

	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32
}

func NewRenderer() (*Renderer, error) {
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	dotProg, err := linkProgram(spriteVertSrc, dotFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("dot program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		gl.DeleteProgram(dotProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		rectProg: rectProg,
		dotProg:  dotProg,
		glowProg: glowProg,
	}

	// Rect VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var rVAO, rVBO uint32
	gl.GenVertexArrays(1, &rVAO)
	gl.GenBuffers(1, &rVBO)
	gl.BindVertexArray(rVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.rectVAO = rVAO
	r.rectVBO = rVBO

	gl.UseProgram(rectProg)
	r.uCentre = gl.GetUniformLocation(rectProg, gl.Str("uCentre\x00"))
	r.uSize = gl.GetUniformLocation(rectProg, gl.Str("uSize\x00"))
	r.uRotation = gl.GetUniformLocation(rectProg, gl.Str("uRotation\x00"))
	r.uCamera = gl.GetUniformLocation(rectProg, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(rectProg, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))
	r.uColor = gl.GetUniformLocation(rectProg, gl.Str("uColor\x00"))

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(dotProg)
	r.dotUCamera = gl.GetUniformLocation(dotProg, gl.Str("uCamera\x00"))
	r.dotUZoom = gl.GetUniformLocation(dotProg, gl.Str("uZoom\x00"))
	r.dotUResolution = gl.GetUniformLocation(dotProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.dotProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears to col and binds the rect program with cam as the view.
func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int, col RGB) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	c := col.F32(1)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.SetView(cam, fbW, fbH)
}

// SetView binds the rect program and points it at cam. The HUD switches to a
// screen-space camera with this.
func (r *Renderer) SetView(cam Camera, fbW, fbH int) {
	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.rectVAO)
	x, y := cam.EffectivePos()
	gl.Uniform2f(r.uCamera, float32(x), float32(y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
}

// DrawRect fills a w x h rectangle centred on (cx, cy) and rotated by rot
// radians. The rect program must be bound (BeginFrame/SetView).
func (r *Renderer) DrawRect(cx, cy, w, h, rot float64, col [4]float32) {
	if col[3] < 1 {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.Uniform2f(r.uCentre, float32(cx), float32(cy))
	gl.Uniform2f(r.uSize, float32(w), float32(h))
	gl.Uniform1f(r.uRotation, float32(rot))
	gl.Uniform4f(r.uColor, col[0], col[1], col[2], col[3])
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	if col[3] < 1 {
		gl.Disable(gl.BLEND)
	}
}

// DrawBox fills an axis-aligned box given by its top-left corner.
func (r *Renderer) DrawBox(x, y, w, h float64, col [4]float32) {
	r.DrawRect(x+w/2, y+h/2, w, h, 0, col)
}
