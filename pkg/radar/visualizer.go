package radar

import (
	"math"

	"moonlander/pkg/sim"
	"moonlander/pkg/terrain"
)

const (
	// GridWidth and GridHeight are the fixed dimensions of the radar view.
	GridWidth  = 61
	GridHeight = 16

	// Altitude below which the view switches to the tight landing window.
	landingModeAltitude = 60.0

	landingWindowMin    = -15.0
	landingWindowHeight = 40.0
	approachWindowSpan  = 150.0
	approachHeadroom    = 30.0
)

const (
	glyphGround  = '#'
	glyphFlat    = '_'
	glyphRising  = '/'
	glyphFalling = '\\'
	glyphLander  = 'A'
	glyphExhaust = '*'
)

// View is a rendered radar frame: a fixed character grid plus the world
// window it projects. Rendering never mutates game state.
type View struct {
	Grid [GridHeight][GridWidth]rune

	WindowMin    float64 // World altitude at the bottom edge
	WindowHeight float64 // World height covered by the grid
}

// RowLabel returns the world altitude of the given grid row (row 0 is the top).
func (v *View) RowLabel(row int) float64 {
	return (v.WindowMin + v.WindowHeight) - float64(row)/float64(GridHeight-1)*v.WindowHeight
}

// Rows returns the grid as strings, top row first.
func (v *View) Rows() []string {
	rows := make([]string, GridHeight)
	for i := range v.Grid {
		rows[i] = string(v.Grid[i][:])
	}
	return rows
}

// Render projects the terrain and the lander onto the radar grid. The
// vertical window follows altitude: close to the ground it locks onto a
// fixed landing window, higher up it tracks the lander near the top of frame.
func Render(l *sim.Lander, p *terrain.Profile) *View {
	v := &View{}
	for y := range v.Grid {
		for x := range v.Grid[y] {
			v.Grid[y][x] = ' '
		}
	}

	if l.Altitude < landingModeAltitude {
		v.WindowHeight = landingWindowHeight
		v.WindowMin = landingWindowMin
	} else {
		v.WindowHeight = approachWindowSpan
		v.WindowMin = (l.Altitude + approachHeadroom) - approachWindowSpan
	}

	prevHeight := 0.0
	for x := 0; x < GridWidth; x++ {
		worldX := terrain.WorldMin + float64(x)/float64(GridWidth-1)*(terrain.WorldMax-terrain.WorldMin)
		pos := (worldX - terrain.WorldMin) / terrain.Spacing
		h := p.Interpolate(pos)

		row := (GridHeight - 1) - int(math.Round((h-v.WindowMin)/v.WindowHeight*float64(GridHeight-1)))
		if row < 0 || row >= GridHeight {
			continue
		}

		glyph := glyphFlat
		if x > 0 {
			if h > prevHeight+0.5 {
				glyph = glyphRising
			}
			if h < prevHeight-0.5 {
				glyph = glyphFalling
			}
		}
		prevHeight = h

		v.Grid[row][x] = glyph
		for fill := row + 1; fill < GridHeight; fill++ {
			v.Grid[fill][x] = glyphGround
		}
	}

	landerX := int(math.Round((l.X - terrain.WorldMin) / (terrain.WorldMax - terrain.WorldMin) * float64(GridWidth-1)))
	landerY := (GridHeight - 1) - int(math.Round((l.Altitude-v.WindowMin)/v.WindowHeight*float64(GridHeight-1)))

	// Off-grid lander is simply not drawn.
	if landerY >= 0 && landerY < GridHeight && landerX >= 0 && landerX < GridWidth {
		if v.Grid[landerY][landerX] == ' ' {
			v.Grid[landerY][landerX] = glyphLander
		}
		if l.EnginesOn && landerY < GridHeight-1 && v.Grid[landerY+1][landerX] == ' ' {
			v.Grid[landerY+1][landerX] = glyphExhaust
		}
	}

	return v
}
