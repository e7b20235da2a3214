package cubepuzzle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClassifyDrag(t *testing.T) {
	tests := []struct {
		delta mgl64.Vec2
		want  DragDirection
	}{
		{mgl64.Vec2{5, 0}, DragRight},
		{mgl64.Vec2{-3, 0}, DragLeft},
		{mgl64.Vec2{0, 4}, DragDown},
		{mgl64.Vec2{0, -2}, DragUp},
		{mgl64.Vec2{3, 1}, DragRight},
		{mgl64.Vec2{1, -3}, DragUp},
		{mgl64.Vec2{1, 1}, DragNone},
		{mgl64.Vec2{0, 0}, DragNone},
	}
	for _, tt := range tests {
		if got := ClassifyDrag(tt.delta); got != tt.want {
			t.Errorf("ClassifyDrag(%v) = %v, want %v", tt.delta, got, tt.want)
		}
	}
}

func TestResolveMoveTopAndBottomNeverTurn(t *testing.T) {
	drags := []DragDirection{DragNone, DragLeft, DragRight, DragUp, DragDown}
	for _, hover := range []Side{SideUp, SideBottom} {
		for _, drag := range drags {
			if got := ResolveMove(hover, drag, AllSides()); got != SideNone {
				t.Errorf("ResolveMove(%v, %v, all) = %v, want None", hover, drag, got)
			}
		}
	}
}

func TestResolveMovePriority(t *testing.T) {
	tests := []struct {
		name       string
		hover      Side
		drag       DragDirection
		candidates []Side
		want       Side
	}{
		{"vertical picks left first", SideFront, DragUp, []Side{SideUp, SideRight, SideLeft}, SideLeft},
		{"vertical picks right", SideFront, DragDown, []Side{SideUp, SideRight}, SideRight},
		{"vertical picks back over front", SideLeft, DragDown, []Side{SideFront, SideBack}, SideBack},
		{"vertical slice before other slice", SideFront, DragUp, []Side{SideMidLeftRight, SideMidFrontBack}, SideMidFrontBack},
		{"vertical ignores horizontal layers", SideFront, DragUp, []Side{SideUp, SideMidHorizontal}, SideNone},
		{"horizontal picks up", SideFront, DragLeft, []Side{SideRight, SideUp}, SideUp},
		{"horizontal picks bottom", SideRight, DragRight, []Side{SideBottom, SideFront}, SideBottom},
		{"horizontal slice", SideBack, DragLeft, []Side{SideMidHorizontal, SideMidFrontBack}, SideMidHorizontal},
		{"horizontal ignores vertical layers", SideFront, DragRight, []Side{SideRight, SideMidFrontBack}, SideNone},
		{"no drag", SideFront, DragNone, []Side{SideRight, SideUp}, SideNone},
		{"no candidates", SideFront, DragDown, nil, SideNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMove(tt.hover, tt.drag, tt.candidates); got != tt.want {
				t.Errorf("ResolveMove(%v, %v, %v) = %v, want %v", tt.hover, tt.drag, tt.candidates, got, tt.want)
			}
		})
	}
}

func TestRotationSignBase(t *testing.T) {
	tests := []struct {
		drag DragDirection
		want int
	}{
		{DragDown, 1},
		{DragRight, 1},
		{DragUp, -1},
		{DragLeft, -1},
	}
	for _, tt := range tests {
		if got := RotationSign(SideFront, SideRight, tt.drag); got != tt.want {
			t.Errorf("RotationSign(Front, Right, %v) = %d, want %d", tt.drag, got, tt.want)
		}
	}
}

func TestRotationSignInvertedPairs(t *testing.T) {
	inverted := [][2]Side{
		{SideRight, SideFront},
		{SideRight, SideBack},
		{SideRight, SideMidLeftRight},
		{SideBack, SideLeft},
		{SideBack, SideRight},
		{SideBack, SideMidFrontBack},
	}
	for _, p := range inverted {
		if got := RotationSign(p[0], p[1], DragDown); got != -1 {
			t.Errorf("RotationSign(%v, %v, Down) = %d, want -1", p[0], p[1], got)
		}
		if got := RotationSign(p[0], p[1], DragLeft); got != 1 {
			t.Errorf("RotationSign(%v, %v, Left) = %d, want 1", p[0], p[1], got)
		}
	}

	// Everything outside the table keeps the base sign.
	count := 0
	for _, hover := range AllSides() {
		for _, target := range AllSides() {
			if RotationSign(hover, target, DragDown) == -1 {
				count++
			}
		}
	}
	if count != len(inverted) {
		t.Errorf("%d pairs invert the sign, want %d", count, len(inverted))
	}
}

func TestDragOnFrontTurnsRight(t *testing.T) {
	hover := SideFront
	target := ResolveMove(hover, DragDown, []Side{SideRight})
	if target != SideRight {
		t.Fatalf("target = %v, want Right", target)
	}
	if sign := RotationSign(hover, target, DragDown); sign != 1 {
		t.Errorf("sign = %d, want +1", sign)
	}
}

func TestDragOnRightTurnsFrontInverted(t *testing.T) {
	hover := SideRight
	target := ResolveMove(hover, DragDown, []Side{SideFront})
	if target != SideFront {
		t.Fatalf("target = %v, want Front", target)
	}
	if sign := RotationSign(hover, target, DragDown); sign != -1 {
		t.Errorf("sign = %d, want -1", sign)
	}
}

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		side Side
		sign int
		want string
	}{
		{SideRight, -1, "R"},
		{SideRight, 1, "R'"},
		{SideLeft, 1, "L"},
		{SideUp, -1, "U"},
		{SideBottom, -1, "D'"},
		{SideFront, -1, "F"},
		{SideBack, -1, "B'"},
		{SideMidFrontBack, 1, "M"},
		{SideMidHorizontal, -1, "E'"},
		{SideMidLeftRight, -1, "S"},
		{SideNone, 1, "?"},
	}
	for _, tt := range tests {
		m := Move{Side: tt.side, Sign: tt.sign}
		if got := m.Notation(); got != tt.want {
			t.Errorf("Move{%v, %d}.Notation() = %q, want %q", tt.side, tt.sign, got, tt.want)
		}
	}
	moves := []Move{{Side: SideRight, Sign: -1}, {Side: SideUp, Sign: 1}}
	if got := FormatMoves(moves); got != "R U'" {
		t.Errorf("FormatMoves = %q", got)
	}
}
