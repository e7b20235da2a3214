// Package netview draws the cube as an unfolded net in the terminal and maps
// terminal cells back to the stickers under them.
package netview

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/cubepuzzle"
)

// Sticker geometry in terminal cells.
const (
	StickerWidth = 2
	faceWidth    = 3 * StickerWidth
	faceHeight   = 3
	gapX         = 1
	gapY         = 1
)

// facePositions places each face on the net grid:
//
//	  U
//	L F R B
//	  D
var facePositions = map[cubepuzzle.CubeFace][2]int{
	cubepuzzle.CubeFaceU: {1, 0},
	cubepuzzle.CubeFaceL: {0, 1},
	cubepuzzle.CubeFaceF: {1, 1},
	cubepuzzle.CubeFaceR: {2, 1},
	cubepuzzle.CubeFaceB: {3, 1},
	cubepuzzle.CubeFaceD: {1, 2},
}

// Sticker identifies one facelet of the net.
type Sticker struct {
	Face  cubepuzzle.CubeFace
	Index int
}

// Coord returns the grid slot the sticker belongs to.
func (s Sticker) Coord() cubepuzzle.Coord {
	return cubepuzzle.FaceletCoord(s.Face, s.Index)
}

// Normal returns the outward normal of the sticker's face.
func (s Sticker) Normal() mgl64.Vec3 {
	n, _ := cubepuzzle.Normal(s.Face.Side())
	return n
}

// Layout positions the net on screen. Origin is the top-left terminal cell.
type Layout struct {
	OriginX, OriginY int
}

// Width returns the net width in terminal cells.
func (l Layout) Width() int {
	return 4*faceWidth + 3*gapX
}

// Height returns the net height in terminal cells.
func (l Layout) Height() int {
	return 3*faceHeight + 2*gapY
}

// faceOrigin returns the top-left terminal cell of face relative to the net.
func faceOrigin(face cubepuzzle.CubeFace) (int, int) {
	p := facePositions[face]
	return p[0] * (faceWidth + gapX), p[1] * (faceHeight + gapY)
}

// HitTest returns the sticker drawn at terminal cell (x, y).
func (l Layout) HitTest(x, y int) (Sticker, bool) {
	x -= l.OriginX
	y -= l.OriginY
	for face := range facePositions {
		fx, fy := faceOrigin(face)
		if x < fx || x >= fx+faceWidth || y < fy || y >= fy+faceHeight {
			continue
		}
		col := (x - fx) / StickerWidth
		row := y - fy
		return Sticker{Face: face, Index: row*3 + col}, true
	}
	return Sticker{}, false
}

// Caster picks the cell under a sticker. It satisfies cubepuzzle.RayCaster:
// a terminal has no depth, so the only hit is the cell in the sticker's
// slot, at distance zero.
type Caster struct {
	sticker Sticker
	ok      bool
}

// CasterAt returns a caster for the sticker at terminal cell (x, y).
func (l Layout) CasterAt(x, y int) Caster {
	s, ok := l.HitTest(x, y)
	return Caster{sticker: s, ok: ok}
}

// CastRay implements cubepuzzle.RayCaster.
func (c Caster) CastRay(cell cubepuzzle.CellView) (cubepuzzle.Hit, bool) {
	if !c.ok || cell.Grid != c.sticker.Coord() {
		return cubepuzzle.Hit{}, false
	}
	return cubepuzzle.Hit{Distance: 0, Normal: c.sticker.Normal()}, true
}
