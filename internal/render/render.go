// Package render draws cube states as colored terminal nets.
//
// The face identity to display color table lives here, on the rendering
// side: the engine itself never interprets colors.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Eggplant203/cubik"
)

// cell is the printed width of one sticker.
const cell = "  "

// colorStyles maps each token to its terminal color.
var colorStyles = map[cubik.Color]lipgloss.Style{
	cubik.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")),
	cubik.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")),
	cubik.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")),
	cubik.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")),
	cubik.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")),
	cubik.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")),
}

// sticker renders one colored cell.
func sticker(c cubik.Color) string {
	style, ok := colorStyles[c]
	if !ok {
		return cell
	}
	return style.Render(cell)
}

// Net renders the unfolded cube net: U on top, L F R B in a row, D at
// the bottom.
func Net(s *cubik.State) string {
	var b strings.Builder
	n := s.Size()
	indent := strings.Repeat(cell, n) + " "

	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeFaceRow(&b, s, cubik.FaceU, row)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for row := 0; row < n; row++ {
		for _, face := range []cubik.Face{cubik.FaceL, cubik.FaceF, cubik.FaceR, cubik.FaceB} {
			writeFaceRow(&b, s, face, row)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeFaceRow(&b, s, cubik.FaceD, row)
		b.WriteString("\n")
	}

	return b.String()
}

func writeFaceRow(b *strings.Builder, s *cubik.State, face cubik.Face, row int) {
	for col := 0; col < s.Size(); col++ {
		b.WriteString(sticker(s.At(face, row, col)))
	}
}

// Orientation renders the orientation map as a compact label line,
// e.g. "up:U front:F".
func Orientation(s *cubik.State) string {
	return "up:" + s.Orientation(cubik.FaceU).String() +
		" front:" + s.Orientation(cubik.FaceF).String()
}
