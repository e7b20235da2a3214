package cubepuzzle

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
	Blank  Color = 6 // Inner surface, no sticker
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "."
	}
}

// CubeFace indexes the six faces of a facelet net.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// Side returns the outer side the face lies on.
func (f CubeFace) Side() Side {
	switch f {
	case CubeFaceU:
		return SideUp
	case CubeFaceD:
		return SideBottom
	case CubeFaceF:
		return SideFront
	case CubeFaceB:
		return SideBack
	case CubeFaceR:
		return SideRight
	case CubeFaceL:
		return SideLeft
	default:
		return SideNone
	}
}

// sideColor returns the sticker color printed on a cell's home side.
func sideColor(s Side) Color {
	switch s {
	case SideUp:
		return White
	case SideBottom:
		return Yellow
	case SideFront:
		return Green
	case SideBack:
		return Blue
	case SideRight:
		return Red
	case SideLeft:
		return Orange
	default:
		return Blank
	}
}

// FaceletCoord returns the grid slot shown at index of face, with faces
// viewed from outside and indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U has B at its top edge, D has F at its top edge, and the four side faces
// have U at their top edge.
func FaceletCoord(face CubeFace, index int) Coord {
	row, col := index/3, index%3
	switch face {
	case CubeFaceU:
		return Coord{col - 1, 1, row - 1}
	case CubeFaceD:
		return Coord{col - 1, -1, 1 - row}
	case CubeFaceF:
		return Coord{col - 1, 1 - row, 1}
	case CubeFaceB:
		return Coord{1 - col, 1 - row, -1}
	case CubeFaceR:
		return Coord{1, 1 - row, 1 - col}
	case CubeFaceL:
		return Coord{-1, 1 - row, col - 1}
	default:
		return Coord{}
	}
}

// Facelets is the sticker colors of the cube as an unfolded net.
// Facelets[face][position] = color
type Facelets [6][9]Color

// Facelets projects the committed cell orientations into a sticker net.
func (g *Grid) Facelets() Facelets {
	var f Facelets
	for face := CubeFace(0); face < 6; face++ {
		normal, _ := Normal(face.Side())
		for i := 0; i < 9; i++ {
			f[face][i] = Blank
			cell := g.CellAt(FaceletCoord(face, i))
			if cell == nil {
				continue
			}
			f[face][i] = cell.StickerColor(normal)
		}
	}
	return f
}

// StickerColor returns the color of the sticker the cell shows towards the
// world direction normal, or Blank when that surface faced the inside of
// the cube at home.
func (c *Cell) StickerColor(normal mgl64.Vec3) Color {
	local := c.orientation.Inverse().Rotate(normal)
	side := Classify(local)
	axis, value, ok := fixedAxis(side)
	if !ok || c.home.Component(axis) != value {
		return Blank
	}
	return sideColor(side)
}

// IsSolved returns true if every face shows a single color.
func (f Facelets) IsSolved() bool {
	for face := 0; face < 6; face++ {
		for i := 1; i < 9; i++ {
			if f[face][i] != f[face][0] {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the net.
func (f Facelets) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[CubeFaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(f[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[CubeFaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
