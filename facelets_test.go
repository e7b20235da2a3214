package cubepuzzle

import (
	"strings"
	"testing"
)

func TestNewGridIsSolved(t *testing.T) {
	f := NewGrid().Facelets()
	if !f.IsSolved() {
		t.Error("new grid should be solved")
		t.Log(f.String())
	}
	for face := CubeFace(0); face < 6; face++ {
		want := sideColor(face.Side())
		if f[face][4] != want {
			t.Errorf("%v centre = %v, want %v", face, f[face][4], want)
		}
	}
}

func TestFaceletCoordsLieOnFace(t *testing.T) {
	m := BuildSideMembership()
	for face := CubeFace(0); face < 6; face++ {
		seen := make(map[Coord]bool)
		for i := 0; i < 9; i++ {
			coord := FaceletCoord(face, i)
			if !m.Contains(face.Side(), coord) {
				t.Errorf("FaceletCoord(%v, %d) = %v, not on %v", face, i, coord, face.Side())
			}
			if seen[coord] {
				t.Errorf("FaceletCoord(%v, %d) = %v repeats", face, i, coord)
			}
			seen[coord] = true
		}
		if c := FaceletCoord(face, 4); c.Component(mustAxis(t, face.Side())) == 0 {
			t.Errorf("%v centre %v is not on the outer layer", face, c)
		}
	}
}

func mustAxis(t *testing.T, s Side) Axis {
	t.Helper()
	a, err := SideAxis(s)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestRFaceMovesFrontUp(t *testing.T) {
	c := New()
	turn(t, c, SideRight, -1) // R

	f := c.Facelets()
	if f.IsSolved() {
		t.Fatal("cube should not be solved after R")
	}
	for _, i := range []int{2, 5, 8} {
		if f[CubeFaceU][i] != Green {
			t.Errorf("U[%d] = %v, want G", i, f[CubeFaceU][i])
		}
		if f[CubeFaceF][i] != Yellow {
			t.Errorf("F[%d] = %v, want Y", i, f[CubeFaceF][i])
		}
	}
	for _, i := range []int{0, 3, 6} {
		if f[CubeFaceU][i] != White {
			t.Errorf("U[%d] = %v, want W", i, f[CubeFaceU][i])
		}
	}
	for i := 0; i < 9; i++ {
		if f[CubeFaceR][i] != Red {
			t.Errorf("R[%d] = %v, want R", i, f[CubeFaceR][i])
		}
	}
}

func TestQuarterTurnsReturnToSolvedAllLayers(t *testing.T) {
	for _, side := range AllSides() {
		for _, sign := range []int{1, -1} {
			c := New()
			for i := 0; i < 4; i++ {
				turn(t, c, side, sign)
				if i < 3 && c.IsSolved() {
					t.Errorf("%v sign %d solved after %d turns", side, sign, i+1)
				}
			}
			if !c.IsSolved() {
				t.Errorf("%v x 4 (sign %d) should return to solved", side, sign)
				t.Log(c.Facelets().String())
			}
		}
	}
}

func TestInverseTurnUndoes(t *testing.T) {
	c := New()
	turn(t, c, SideFront, -1)
	turn(t, c, SideMidHorizontal, 1)
	turn(t, c, SideMidHorizontal, -1)
	turn(t, c, SideFront, 1)
	if !c.IsSolved() {
		t.Error("F E E' F' should return to solved")
		t.Log(c.Facelets().String())
	}
	if got := FormatMoves(c.Moves()); got != "F E E' F'" {
		t.Errorf("moves = %q", got)
	}
}

func TestStickerColorInnerSurface(t *testing.T) {
	g := NewGrid()
	core := g.Home(Coord{0, 0, 0})
	for _, s := range []Side{SideUp, SideBottom, SideLeft, SideRight, SideFront, SideBack} {
		n, _ := Normal(s)
		if got := core.StickerColor(n); got != Blank {
			t.Errorf("core shows %v towards %v", got, s)
		}
	}

	corner := g.Home(Coord{1, 1, 1})
	up, _ := Normal(SideUp)
	left, _ := Normal(SideLeft)
	if got := corner.StickerColor(up); got != White {
		t.Errorf("corner up = %v, want W", got)
	}
	if got := corner.StickerColor(left); got != Blank {
		t.Errorf("corner left = %v, want blank", got)
	}
}

func TestFaceletsString(t *testing.T) {
	s := NewGrid().Facelets().String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("net has %d lines, want 9", len(lines))
	}
	if !strings.HasPrefix(lines[0], "      W W W") {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[4] != "O O O G G G R R R B B B " {
		t.Errorf("middle line = %q", lines[4])
	}
}
