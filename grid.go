package cubepuzzle

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Membership maps every layer side to the 9 grid coordinates it covers.
// It is computed from the unrotated grid and never changes afterwards.
type Membership map[Side][9]Coord

// BuildSideMembership computes the membership table for all nine layer sides.
func BuildSideMembership() Membership {
	m := make(Membership, len(AllSides()))
	for _, side := range AllSides() {
		m[side] = sideCoords(side)
	}
	return m
}

// sideCoords fixes the side's axis and iterates the remaining two axes,
// lower axis outermost.
func sideCoords(side Side) [9]Coord {
	var coords [9]Coord
	axis, value, ok := fixedAxis(side)
	if !ok {
		return coords
	}

	index := 0
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			var c Coord
			switch axis {
			case AxisX:
				c = Coord{value, i, j}
			case AxisY:
				c = Coord{i, value, j}
			case AxisZ:
				c = Coord{i, j, value}
			}
			coords[index] = c
			index++
		}
	}
	return coords
}

// Contains reports whether side covers coord.
func (m Membership) Contains(side Side, coord Coord) bool {
	coords, ok := m[side]
	if !ok {
		return false
	}
	return slices.Contains(coords[:], coord)
}

// Grid owns the 27 cells of the cube, addressed by home coordinate.
type Grid struct {
	cells      [3][3][3]*Cell
	membership Membership
}

// NewGrid creates a grid with every cell at rest in its home slot.
func NewGrid() *Grid {
	g := &Grid{membership: BuildSideMembership()}
	for _, coord := range AllCoords() {
		g.cells[coord.X+1][coord.Y+1][coord.Z+1] = newCell(coord)
	}
	return g
}

// Membership returns the side membership table.
func (g *Grid) Membership() Membership {
	return g.membership
}

// Reset restores every cell to its home coordinate and identity orientation.
func (g *Grid) Reset() {
	for _, c := range g.Cells() {
		c.reset()
	}
}

// Cells returns all 27 cells in home coordinate order.
func (g *Grid) Cells() []*Cell {
	cells := make([]*Cell, 0, 27)
	for _, coord := range AllCoords() {
		cells = append(cells, g.cells[coord.X+1][coord.Y+1][coord.Z+1])
	}
	return cells
}

// Home returns the cell whose identity slot is coord.
func (g *Grid) Home(coord Coord) *Cell {
	if !coord.Valid() {
		return nil
	}
	return g.cells[coord.X+1][coord.Y+1][coord.Z+1]
}

// CellAt returns the cell currently occupying grid slot coord.
func (g *Grid) CellAt(coord Coord) *Cell {
	for _, c := range g.Cells() {
		if c.grid == coord {
			return c
		}
	}
	return nil
}

// Layer returns the cells currently occupying the slots covered by side.
func (g *Grid) Layer(side Side) []*Cell {
	var layer []*Cell
	for _, c := range g.Cells() {
		if g.membership.Contains(side, c.grid) {
			layer = append(layer, c)
		}
	}
	return layer
}

// Refresh recomputes the grid slot of every cell under the given centre
// axis rotation.
func (g *Grid) Refresh(axis mgl64.Quat) {
	for _, c := range g.Cells() {
		c.refresh(axis)
	}
}

// Select marks the cells of side as part of the active rotation and clears
// the flag everywhere else.
func (g *Grid) Select(side Side) {
	for _, c := range g.Cells() {
		c.selected = side != SideNone && g.membership.Contains(side, c.grid)
	}
}

// Commit bakes turn into every selected cell.
func (g *Grid) Commit(turn mgl64.Quat) {
	for _, c := range g.Cells() {
		if c.selected {
			c.commit(turn)
		}
	}
}
