package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"drift/internal/sim"
)

const (
	wallRune = '█'
	bodyRune = '▒'
)

// headingRunes are indexed by heading octant, clockwise from north.
var headingRunes = []rune("↑↗→↘↓↙←↖")

// skidRunes go from faint to fresh.
var skidRunes = []rune("·•●")

var (
	styleAsphalt = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 24, 28))
	styleWall    = styleAsphalt.Foreground(tcell.NewRGBColor(90, 96, 120))
	styleBody    = styleAsphalt.Foreground(tcell.NewRGBColor(83, 255, 163))
	styleNose    = styleAsphalt.Foreground(tcell.NewRGBColor(103, 232, 249)).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(201, 215, 255)).Background(tcell.NewRGBColor(12, 14, 22))
	styleHBOn    = styleStatus.Foreground(tcell.NewRGBColor(255, 80, 80)).Bold(true)
)

// View maps the canvas onto a grid of terminal cells. The bottom row is kept
// for the status line.
type View struct {
	Cols, Rows int
	w, h       float64
}

func NewView(cols, rows int, canvasW, canvasH float64) View {
	return View{Cols: cols, Rows: rows, w: canvasW, h: canvasH}
}

// FieldRows is the number of rows showing the track.
func (v View) FieldRows() int { return max(0, v.Rows-1) }

func (v View) cellSize() (sx, sy float64) {
	return v.w / float64(max(1, v.Cols)), v.h / float64(max(1, v.FieldRows()))
}

// Cell returns the cell containing canvas point (x, y) and whether it lies on
// the field.
func (v View) Cell(x, y float64) (col, row int, ok bool) {
	sx, sy := v.cellSize()
	col = int(math.Floor(x / sx))
	row = int(math.Floor(y / sy))
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.FieldRows()
	return col, row, ok
}

// centre returns the canvas point at the middle of a cell.
func (v View) centre(col, row int) (x, y float64) {
	sx, sy := v.cellSize()
	return (float64(col) + 0.5) * sx, (float64(row) + 0.5) * sy
}

// span returns the inclusive cell range covered by [lo, lo+size) along an
// axis with the given cell size. Thin spans still cover one cell.
func span(lo, size, cell float64) (first, last int) {
	first = int(math.Floor(lo / cell))
	last = int(math.Ceil((lo+size)/cell)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// HeadingRune picks an arrow for the car's heading.
func HeadingRune(angle float64) rune {
	n := len(headingRunes)
	i := int(math.Round(angle/(math.Pi/4))) % n
	if i < 0 {
		i += n
	}
	return headingRunes[i]
}

// SkidRune picks a glyph for a skid point by how faded it is.
func SkidRune(alpha float64) rune {
	r := alpha / sim.SkidAlpha
	switch {
	case r >= 0.66:
		return skidRunes[2]
	case r >= 0.33:
		return skidRunes[1]
	default:
		return skidRunes[0]
	}
}

func skidStyle(alpha float64) tcell.Style {
	k := int32(70 + 150*math.Min(1, alpha/sim.SkidAlpha))
	return styleAsphalt.Foreground(tcell.NewRGBColor(k, k, k))
}

// Draw renders the session and the status line. It does not call Show.
func (v View) Draw(screen tcell.Screen, s *sim.Session, status string, hb bool) {
	screen.Fill(' ', styleAsphalt)
	v.drawSkids(screen, &s.Skids)
	v.drawWalls(screen, s.Track)
	v.drawCar(screen, s.Vehicle)
	v.drawStatus(screen, status, hb)
}

func (v View) set(screen tcell.Screen, col, row int, r rune, st tcell.Style) {
	if col < 0 || col >= v.Cols || row < 0 || row >= v.FieldRows() {
		return
	}
	screen.SetContent(col, row, r, nil, st)
}

func (v View) drawWalls(screen tcell.Screen, t sim.Track) {
	sx, sy := v.cellSize()
	for _, w := range t.Walls {
		c0, c1 := span(w.X, w.W, sx)
		r0, r1 := span(w.Y, w.H, sy)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				v.set(screen, col, row, wallRune, styleWall)
			}
		}
	}
}

func (v View) drawSkids(screen tcell.Screen, sk *sim.Skids) {
	plot := func(p sim.SkidPoint) {
		if col, row, ok := v.Cell(p.X, p.Y); ok {
			v.set(screen, col, row, SkidRune(p.Alpha), skidStyle(p.Alpha))
		}
	}
	// Oldest first so fresher marks win shared cells.
	sk.Left.Each(plot)
	sk.Right.Each(plot)
}

func (v View) drawCar(screen tcell.Screen, car *sim.Vehicle) {
	fwd, right := car.Axes()
	hw, hl := car.Width()/2, car.Length()/2
	// Extent of the rotated footprint.
	ex := math.Abs(fwd.X())*hl + math.Abs(right.X())*hw
	ey := math.Abs(fwd.Y())*hl + math.Abs(right.Y())*hw
	sx, sy := v.cellSize()
	c0, c1 := span(car.Pos.X()-ex, 2*ex, sx)
	r0, r1 := span(car.Pos.Y()-ey, 2*ey, sy)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := v.centre(col, row)
			dx, dy := x-car.Pos.X(), y-car.Pos.Y()
			lx := dx*right.X() + dy*right.Y()
			ly := -(dx*fwd.X() + dy*fwd.Y())
			if math.Abs(lx) <= hw && math.Abs(ly) <= hl {
				v.set(screen, col, row, bodyRune, styleBody)
			}
		}
	}
	nose := car.LocalToWorld(0, -hl*0.75)
	if col, row, ok := v.Cell(nose.X(), nose.Y()); ok {
		v.set(screen, col, row, HeadingRune(car.Angle), styleNose)
	}
}

func (v View) drawStatus(screen tcell.Screen, status string, hb bool) {
	row := v.Rows - 1
	if row < 0 {
		return
	}
	for col := 0; col < v.Cols; col++ {
		screen.SetContent(col, row, ' ', nil, styleStatus)
	}
	col := 0
	for _, r := range status {
		if col >= v.Cols {
			break
		}
		screen.SetContent(col, row, r, nil, styleStatus)
		col++
	}
	if hb && v.Cols > 0 {
		screen.SetContent(v.Cols-1, row, '●', nil, styleHBOn)
	}
}
