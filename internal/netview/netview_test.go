package netview

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/cubepuzzle"
)

func TestHitTest(t *testing.T) {
	l := Layout{}
	tests := []struct {
		x, y  int
		want  Sticker
		found bool
	}{
		{7, 4, Sticker{cubepuzzle.CubeFaceF, 0}, true},
		{8, 4, Sticker{cubepuzzle.CubeFaceF, 0}, true},
		{9, 4, Sticker{cubepuzzle.CubeFaceF, 1}, true},
		{12, 6, Sticker{cubepuzzle.CubeFaceF, 8}, true},
		{7, 0, Sticker{cubepuzzle.CubeFaceU, 0}, true},
		{0, 4, Sticker{cubepuzzle.CubeFaceL, 0}, true},
		{21, 5, Sticker{cubepuzzle.CubeFaceB, 3}, true},
		{7, 10, Sticker{cubepuzzle.CubeFaceD, 6}, true},
		{6, 4, Sticker{}, false},
		{0, 0, Sticker{}, false},
		{7, 3, Sticker{}, false},
	}
	for _, tt := range tests {
		got, ok := l.HitTest(tt.x, tt.y)
		if ok != tt.found || got != tt.want {
			t.Errorf("HitTest(%d, %d) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.found)
		}
	}
}

func TestHitTestOrigin(t *testing.T) {
	l := Layout{OriginX: 2, OriginY: 1}
	got, ok := l.HitTest(9, 5)
	if !ok || got != (Sticker{cubepuzzle.CubeFaceF, 0}) {
		t.Errorf("HitTest with origin = %v, %v", got, ok)
	}
}

func TestCasterPicksStickerSlot(t *testing.T) {
	ctrl := cubepuzzle.New()
	l := Layout{}

	pick := ctrl.Pick(l.CasterAt(9, 4))
	if pick == nil {
		t.Fatal("expected a pick over F[1]")
	}
	if pick.Grid != (cubepuzzle.Coord{X: 0, Y: 1, Z: 1}) {
		t.Errorf("picked slot %v, want (0, 1, 1)", pick.Grid)
	}
	if !pick.Normal.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("normal = %v, want front", pick.Normal)
	}

	if pick := ctrl.Pick(l.CasterAt(0, 0)); pick != nil {
		t.Errorf("pick over empty space = %+v", pick)
	}
}

func TestDragOnNetTurnsLayer(t *testing.T) {
	ctrl := cubepuzzle.New(cubepuzzle.WithRotationSpeed(1e6))
	l := Layout{}

	frame, err := ctrl.Update(cubepuzzle.Input{
		Delta:     mgl64.Vec2{0, 3},
		Held:      true,
		DeltaTime: 1.0 / 60,
		Pick:      ctrl.Pick(l.CasterAt(11, 4)),
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if frame.Target != cubepuzzle.SideRight || frame.Commit == nil {
		t.Fatalf("frame target = %v commit = %v", frame.Target, frame.Commit)
	}
	if got := ctrl.Facelets()[cubepuzzle.CubeFaceF][2]; got != cubepuzzle.White {
		t.Errorf("F[2] after R' = %v, want W", got)
	}
}

func TestRender(t *testing.T) {
	l := Layout{}
	hover := Sticker{cubepuzzle.CubeFaceF, 4}
	out := l.Render(cubepuzzle.NewGrid().Facelets(), State{Hover: &hover})

	if n := strings.Count(out, "\n"); n != l.Height() {
		t.Errorf("rendered %d lines, want %d", n, l.Height())
	}
	if strings.Count(out, "<>") != 1 {
		t.Error("hovered sticker should be marked once")
	}
}

func TestSelectedSlots(t *testing.T) {
	ctrl := cubepuzzle.New()
	ctrl.Update(cubepuzzle.Input{
		Delta:     mgl64.Vec2{5, 0},
		Held:      true,
		DeltaTime: 1.0 / 60,
		Pick:      ctrl.Pick(Layout{}.CasterAt(7, 4)),
	})
	slots := SelectedSlots(ctrl.Cells())
	if len(slots) != 9 {
		t.Fatalf("selected %d slots, want 9", len(slots))
	}
	for c := range slots {
		if c.Y != 1 {
			t.Errorf("slot %v is not in the Up layer", c)
		}
	}

	out := Layout{}.Render(ctrl.Facelets(), State{Selected: slots})
	if !strings.Contains(out, "░░") {
		t.Error("selected stickers should be shaded")
	}
}
