package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BodyChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
	GroundMark    = '╪'
	GroundFill    = '░'
)

// groundPatternWidth is the spacing of the scrolling marks on the ground line.
const groundPatternWidth = 6

// Render draws a snapshot onto a character screen, scaling world units to
// cells. It is a presenter: it reads the snapshot and never touches the engine.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.World.X <= 0 || s.World.Y <= 0 {
		return
	}

	sx := float64(dst.Width()) / s.World.X
	sy := float64(dst.Height()) / s.World.Y

	drawPipeRect(dst, s.Pipe.Top, sx, sy, PipeCapTop, false)
	drawPipeRect(dst, s.Pipe.Bottom, sx, sy, PipeCapBottom, true)
	drawGround(dst, s, sx, sy)
	drawBody(dst, s.Body, sx, sy)
	drawHUD(dst, s)
}

// drawPipeRect fills the cells covered by a barrier, capping the edge that
// faces the gap.
func drawPipeRect(dst *core.Screen, r core.Rect, sx, sy float64, capChar rune, capOnTop bool) {
	x0 := int(math.Floor(r.X * sx))
	x1 := int(math.Ceil(r.Right() * sx))
	y0 := int(math.Floor(r.Y * sy))
	y1 := int(math.Ceil(r.Bottom() * sy))
	if x1 <= x0 || y1 <= y0 {
		return
	}

	dst.FillRect(x0, y0, x1-x0, y1-y0, PipeChar, core.ColorGreen)

	capY := y1 - 1
	if capOnTop {
		capY = y0
	}
	for x := x0; x < x1; x++ {
		dst.SetColored(x, capY, capChar, core.ColorGreen)
	}
}

// drawGround draws the ground band with marks that scroll with the offset.
func drawGround(dst *core.Screen, s Snapshot, sx, sy float64) {
	top := int(math.Floor(s.GroundY * sy))
	if top >= dst.Height() {
		top = dst.Height() - 1
	}

	shift := int(math.Round(-s.GroundOffset * sx))
	for x := 0; x < dst.Width(); x++ {
		ch := GroundChar
		if (x+shift)%groundPatternWidth == 0 {
			ch = GroundMark
		}
		dst.SetColored(x, top, ch, core.ColorOrange)
	}
	dst.FillRect(0, top+1, dst.Width(), dst.Height()-top-1, GroundFill, core.ColorOrange)
}

// drawBody draws the body cell plus a heading glyph derived from its tilt.
func drawBody(dst *core.Screen, b BodyState, sx, sy float64) {
	x := int(math.Floor(b.X * sx))
	y := int(math.Floor(b.Y * sy))
	dst.SetColored(x, y, BodyChar, core.ColorYellow)
	dst.SetColored(x+1, y, headingGlyph(b.Tilt), core.ColorYellow)
}

// headingGlyph picks an arrow for the body's rotation.
func headingGlyph(tilt float64) rune {
	switch {
	case tilt < -0.25:
		return '↗'
	case tilt > 0.5:
		return '↘'
	default:
		return '→'
	}
}

// drawHUD draws the score and the phase prompt.
func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", s.Score), core.ColorBrightWhite)

	switch s.Phase {
	case PhaseReady:
		drawCenteredMessage(dst, "GET READY", "Tap to flap")
	case PhaseEnded:
		prompt := "Tap to reset"
		if s.RestartOnTap {
			prompt = "Tap to play again"
		}
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  %s", s.Score, prompt))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorGray)
}
