package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/sim"
)

// Visual characters for the game elements.
const (
	HeadChar = 'O'
	BodyChar = 'o'
	FoodChar = '*'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escapes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Draw renders a simulation snapshot into the screen buffer: HUD on top,
// the toroidal playfield below, overlays for the non-running states.
func Draw(dst *core.Screen, snap sim.Snapshot) {
	dst.Clear()

	drawHUD(dst, snap)
	drawField(dst, snap)

	switch snap.State {
	case sim.StateIdle:
		drawOverlay(dst, "SLITHER", "Press space or drag the mouse to start")
	case sim.StatePaused:
		drawOverlay(dst, "Paused", "Press space to continue")
	case sim.StateGameOver:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawHUD draws the top status bar and separator.
func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	hud := fmt.Sprintf(" slither — Score: %d  Best: %d  Speed: %.0f", snap.Score, snap.Best, snap.Speed)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawField maps world coordinates onto the playfield cells and draws
// food and snake. Axes scale independently so the whole torus stays
// visible regardless of the terminal shape.
func drawField(dst *core.Screen, snap sim.Snapshot) {
	fieldW := dst.Width()
	fieldH := dst.Height() - hudRows
	if fieldW <= 0 || fieldH <= 0 || snap.GridSize <= 0 {
		return
	}

	g := float64(snap.GridSize)
	toCell := func(p core.Vec2) (int, int) {
		x := int(p.X / g * float64(fieldW))
		y := int(p.Y/g*float64(fieldH)) + hudRows
		return x, y
	}

	fx, fy := toCell(snap.Food)
	dst.SetColored(fx, fy, FoodChar, core.ColorBrightRed)

	// Tail first so the head wins when segments share a cell.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := toCell(snap.Snake[i])
		if i == 0 {
			dst.SetColored(x, y, HeadChar, core.ColorBrightGreen)
		} else {
			dst.SetColored(x, y, BodyChar, core.ColorGreen)
		}
	}
}

// drawOverlay draws a centered message box over the playfield.
func drawOverlay(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
