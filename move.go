package cubepuzzle

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// DragDirection is a pointer drag reduced to one of four screen directions.
type DragDirection int

const (
	DragNone DragDirection = iota
	DragLeft
	DragRight
	DragUp
	DragDown
)

func (d DragDirection) String() string {
	switch d {
	case DragLeft:
		return "Left"
	case DragRight:
		return "Right"
	case DragUp:
		return "Up"
	case DragDown:
		return "Down"
	default:
		return "None"
	}
}

// ClassifyDrag reduces a pointer delta to a drag direction. Screen y grows
// downward. The delta is normalized and each component rounded, so exact
// diagonals classify as DragNone.
func ClassifyDrag(delta mgl64.Vec2) DragDirection {
	if delta == (mgl64.Vec2{}) {
		return DragNone
	}
	n := delta.Normalize()
	x, y := math.Round(n[0]), math.Round(n[1])

	switch {
	case x < 0 && x < y:
		return DragLeft
	case x > 0 && x > y:
		return DragRight
	case y > 0 && y > x:
		return DragDown
	case y < 0 && y < x:
		return DragUp
	}
	return DragNone
}

// Candidate priority per drag axis. The first candidate present wins.
var (
	verticalDragPriority = []Side{
		SideLeft, SideRight, SideBack, SideFront,
		SideMidFrontBack, SideMidLeftRight,
	}
	horizontalDragPriority = []Side{
		SideUp, SideBottom, SideMidHorizontal,
	}
)

// ResolveMove picks the layer a drag should turn. candidates are the sides
// containing the picked cell with the hover side already removed.
//
// Drags on the Up or Bottom face never resolve to a layer.
func ResolveMove(hover Side, drag DragDirection, candidates []Side) Side {
	if hover == SideUp || hover == SideBottom {
		return SideNone
	}

	var priority []Side
	switch drag {
	case DragUp, DragDown:
		priority = verticalDragPriority
	case DragLeft, DragRight:
		priority = horizontalDragPriority
	default:
		return SideNone
	}

	for _, side := range priority {
		if slices.Contains(candidates, side) {
			return side
		}
	}
	return SideNone
}

type sidePair struct {
	hover, target Side
}

// invertedPairs lists the (hover, target) combinations whose visual turn
// runs against the drag's base sign.
var invertedPairs = map[sidePair]bool{
	{SideRight, SideFront}:        true,
	{SideRight, SideBack}:         true,
	{SideRight, SideMidLeftRight}: true,
	{SideBack, SideLeft}:          true,
	{SideBack, SideRight}:         true,
	{SideBack, SideMidFrontBack}:  true,
}

// RotationSign returns +1 or -1: positive for Down and Right drags, negative
// for Up and Left, flipped for the pairs in invertedPairs.
func RotationSign(hover, target Side, drag DragDirection) int {
	sign := -1
	if drag == DragDown || drag == DragRight {
		sign = 1
	}
	if invertedPairs[sidePair{hover, target}] {
		sign = -sign
	}
	return sign
}
