package netview

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubepuzzle"
)

// stickerColors maps sticker colors to terminal background colors.
var stickerColors = map[cubepuzzle.Color]lipgloss.Color{
	cubepuzzle.White:  lipgloss.Color("15"),
	cubepuzzle.Yellow: lipgloss.Color("226"),
	cubepuzzle.Green:  lipgloss.Color("34"),
	cubepuzzle.Blue:   lipgloss.Color("27"),
	cubepuzzle.Red:    lipgloss.Color("196"),
	cubepuzzle.Orange: lipgloss.Color("208"),
	cubepuzzle.Blank:  lipgloss.Color("236"),
}

// State is the interaction state overlaid on the net.
type State struct {
	Selected map[cubepuzzle.Coord]bool // slots of the layer being turned
	Hover    *Sticker                  // sticker under the pointer
}

// SelectedSlots collects the grid slots of the selected cells.
func SelectedSlots(cells []cubepuzzle.CellView) map[cubepuzzle.Coord]bool {
	slots := make(map[cubepuzzle.Coord]bool)
	for _, c := range cells {
		if c.Selected {
			slots[c.Grid] = true
		}
	}
	return slots
}

// Render draws the net with one styled block per sticker.
func (l Layout) Render(f cubepuzzle.Facelets, st State) string {
	var b strings.Builder
	pad := strings.Repeat(" ", l.OriginX)

	for netRow := 0; netRow < 3; netRow++ {
		faces := facesInRow(netRow)
		for row := 0; row < faceHeight; row++ {
			b.WriteString(pad)
			col := 0
			for _, face := range faces {
				fx := facePositions[face][0]
				for ; col < fx; col++ {
					b.WriteString(strings.Repeat(" ", faceWidth+gapX))
				}
				for i := row * 3; i < row*3+3; i++ {
					b.WriteString(renderSticker(f, Sticker{Face: face, Index: i}, st))
				}
				b.WriteString(strings.Repeat(" ", gapX))
				col++
			}
			b.WriteString("\n")
		}
		if netRow < 2 {
			b.WriteString(strings.Repeat("\n", gapY))
		}
	}
	return b.String()
}

func facesInRow(netRow int) []cubepuzzle.CubeFace {
	var faces []cubepuzzle.CubeFace
	for face, p := range facePositions {
		if p[1] == netRow {
			faces = append(faces, face)
		}
	}
	sort.Slice(faces, func(i, j int) bool {
		return facePositions[faces[i]][0] < facePositions[faces[j]][0]
	})
	return faces
}

func renderSticker(f cubepuzzle.Facelets, s Sticker, st State) string {
	style := lipgloss.NewStyle().
		Background(stickerColors[f[s.Face][s.Index]]).
		Foreground(lipgloss.Color("0"))

	text := strings.Repeat(" ", StickerWidth)
	switch {
	case st.Hover != nil && *st.Hover == s:
		text = "<>"
	case st.Selected[s.Coord()]:
		text = strings.Repeat("░", StickerWidth)
	}
	return style.Render(text)
}
