package cubepuzzle

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Side names a face of the cube or one of its three middle slices.
// Each side denotes a layer of 9 cells that rotate together.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideUp
	SideBottom
	SideBack
	SideFront
	SideMidFrontBack  // x = 0 slice
	SideMidLeftRight  // z = 0 slice
	SideMidHorizontal // y = 0 slice
)

// numSides counts every Side value including SideNone.
const numSides = int(SideMidHorizontal) + 1

func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideUp:
		return "Up"
	case SideBottom:
		return "Bottom"
	case SideBack:
		return "Back"
	case SideFront:
		return "Front"
	case SideMidFrontBack:
		return "MidFrontBack"
	case SideMidLeftRight:
		return "MidLeftRight"
	case SideMidHorizontal:
		return "MidHorizontal"
	default:
		return "?"
	}
}

// ParseSide parses a side name as printed by String. Matching is case-insensitive.
func ParseSide(name string) (Side, error) {
	for s := SideNone; int(s) < numSides; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return SideNone, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}

// AllSides returns every side that denotes a layer, in enumeration order.
func AllSides() []Side {
	return []Side{
		SideLeft, SideRight,
		SideUp, SideBottom,
		SideBack, SideFront,
		SideMidFrontBack, SideMidLeftRight, SideMidHorizontal,
	}
}

// IsOuter reports whether s is one of the six outer faces.
func (s Side) IsOuter() bool {
	return s >= SideLeft && s <= SideFront
}

// IsMid reports whether s is one of the three middle slices.
func (s Side) IsMid() bool {
	return s >= SideMidFrontBack && s <= SideMidHorizontal
}

// Axis identifies a principal rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Vec returns the unit vector along a.
func (a Axis) Vec() mgl64.Vec3 {
	var v mgl64.Vec3
	v[a] = 1
	return v
}

// SideAxis returns the axis a layer rotates about.
func SideAxis(s Side) (Axis, error) {
	switch s {
	case SideRight, SideLeft, SideMidFrontBack:
		return AxisX, nil
	case SideUp, SideBottom, SideMidHorizontal:
		return AxisY, nil
	case SideBack, SideFront, SideMidLeftRight:
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("%w: no rotation axis for %v", ErrUnknownSide, s)
	}
}

type faceNormal struct {
	side   Side
	normal mgl64.Vec3
}

// faceNormals is searched in order; the first of two equally near normals wins.
var faceNormals = [6]faceNormal{
	{SideUp, mgl64.Vec3{0, 1, 0}},
	{SideBottom, mgl64.Vec3{0, -1, 0}},
	{SideLeft, mgl64.Vec3{-1, 0, 0}},
	{SideRight, mgl64.Vec3{1, 0, 0}},
	{SideFront, mgl64.Vec3{0, 0, 1}},
	{SideBack, mgl64.Vec3{0, 0, -1}},
}

// Classify returns the outer side whose outward normal is nearest to normal.
// The zero vector classifies as SideNone. Middle slices are never returned.
func Classify(normal mgl64.Vec3) Side {
	if normal == (mgl64.Vec3{}) {
		return SideNone
	}

	side := SideNone
	minDistance := math.MaxFloat64
	for _, fn := range faceNormals {
		distance := normal.Sub(fn.normal).Len()
		if distance < minDistance {
			side = fn.side
			minDistance = distance
		}
	}
	return side
}

// Normal returns the outward unit normal of an outer side.
func Normal(s Side) (mgl64.Vec3, bool) {
	if !s.IsOuter() {
		return mgl64.Vec3{}, false
	}
	for _, fn := range faceNormals {
		if fn.side == s {
			return fn.normal, true
		}
	}
	return mgl64.Vec3{}, false
}

// fixedAxis returns the axis a side's cells share and the value they share on it.
func fixedAxis(s Side) (axis Axis, value int, ok bool) {
	switch s {
	case SideLeft:
		return AxisX, -1, true
	case SideRight:
		return AxisX, 1, true
	case SideMidFrontBack:
		return AxisX, 0, true
	case SideBottom:
		return AxisY, -1, true
	case SideUp:
		return AxisY, 1, true
	case SideMidHorizontal:
		return AxisY, 0, true
	case SideBack:
		return AxisZ, -1, true
	case SideFront:
		return AxisZ, 1, true
	case SideMidLeftRight:
		return AxisZ, 0, true
	default:
		return 0, 0, false
	}
}
