package cubepuzzle

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Coord is a grid coordinate. Each component is -1, 0 or 1.
type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Vec returns the coordinate as a vector.
func (c Coord) Vec() mgl64.Vec3 {
	return mgl64.Vec3{float64(c.X), float64(c.Y), float64(c.Z)}
}

// Component returns the coordinate's value on axis a.
func (c Coord) Component(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// Valid reports whether every component lies in {-1, 0, 1}.
func (c Coord) Valid() bool {
	return c.X >= -1 && c.X <= 1 && c.Y >= -1 && c.Y <= 1 && c.Z >= -1 && c.Z <= 1
}

// CoordFromVec rounds each component of v to the nearest integer.
func CoordFromVec(v mgl64.Vec3) Coord {
	return Coord{
		X: int(math.Round(v[0])),
		Y: int(math.Round(v[1])),
		Z: int(math.Round(v[2])),
	}
}

// AllCoords returns the 27 grid coordinates, x outermost and z innermost.
func AllCoords() []Coord {
	coords := make([]Coord, 0, 27)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				coords = append(coords, Coord{x, y, z})
			}
		}
	}
	return coords
}

// Cell is one of the 27 logical cubies.
//
// Home never changes and identifies the cell. Position and Orientation are
// the committed transform; while the cell is part of an active rotation its
// rendered transform additionally carries the centre axis rotation.
type Cell struct {
	home        Coord
	position    mgl64.Vec3
	orientation mgl64.Quat
	grid        Coord
	selected    bool
}

func newCell(home Coord) *Cell {
	c := &Cell{home: home}
	c.reset()
	return c
}

func (c *Cell) reset() {
	c.position = c.home.Vec()
	c.orientation = mgl64.QuatIdent()
	c.grid = c.home
	c.selected = false
}

// Home returns the cell's identity slot.
func (c *Cell) Home() Coord { return c.home }

// Position returns the committed position, an exact grid coordinate at rest.
func (c *Cell) Position() mgl64.Vec3 { return c.position }

// Orientation returns the committed orientation.
func (c *Cell) Orientation() mgl64.Quat { return c.orientation }

// GridPosition returns the grid slot the cell occupied when last refreshed.
func (c *Cell) GridPosition() Coord { return c.grid }

// Selected reports whether the cell belongs to the active rotation layer.
func (c *Cell) Selected() bool { return c.selected }

// WorldTransform returns the rendered position and rotation of the cell
// relative to the cube centre, given the current centre axis rotation.
func (c *Cell) WorldTransform(axis mgl64.Quat) (mgl64.Vec3, mgl64.Quat) {
	if !c.selected {
		return c.position, c.orientation
	}
	return axis.Rotate(c.position), axis.Mul(c.orientation).Normalize()
}

// refresh maps the rendered position back into the unrotated frame and
// rounds it to find the grid slot the cell visually occupies.
func (c *Cell) refresh(axis mgl64.Quat) {
	world, _ := c.WorldTransform(axis)
	if c.selected {
		world = axis.Inverse().Rotate(world)
	}
	c.grid = CoordFromVec(world)
}

// commit bakes a finished quarter turn into the cell and snaps its
// position back onto the grid.
func (c *Cell) commit(turn mgl64.Quat) {
	c.orientation = turn.Mul(c.orientation).Normalize()
	c.grid = CoordFromVec(turn.Rotate(c.position))
	c.position = c.grid.Vec()
	c.selected = false
}
