package cubepuzzle

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// SidesContaining returns every side whose layer covers coord, in side
// enumeration order. A corner belongs to three outer sides, an edge to two
// outer sides and one slice, a face centre to one outer side and two
// slices. Coordinates outside the grid yield []Side{SideNone}.
func (m Membership) SidesContaining(coord Coord) []Side {
	var sides []Side
	for _, side := range AllSides() {
		if m.Contains(side, coord) {
			sides = append(sides, side)
		}
	}
	if len(sides) == 0 {
		return []Side{SideNone}
	}
	return sides
}

// ResolveHoverSide classifies the picked surface normal into the face under
// the pointer.
func ResolveHoverSide(normal mgl64.Vec3) Side {
	return Classify(normal)
}

// Candidates returns sides with the hover side removed. A drag across a face
// turns a layer orthogonal to that face, never the face itself.
func Candidates(sides []Side, hover Side) []Side {
	return slices.DeleteFunc(slices.Clone(sides), func(s Side) bool {
		return s == hover
	})
}
