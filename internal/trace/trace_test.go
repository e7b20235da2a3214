package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/cubepuzzle"
)

// gesture returns the inputs of a downward drag on the front face of slot
// grid followed by idle frames and a release.
func gesture(ctrl *cubepuzzle.Controller, grid cubepuzzle.Coord) []cubepuzzle.Input {
	cell := ctrl.Grid().CellAt(grid)
	inputs := []cubepuzzle.Input{{
		Delta:     mgl64.Vec2{0, 4},
		Held:      true,
		DeltaTime: 1.0 / 60,
		Pick: &cubepuzzle.Pick{
			Home: cell.Home(),
			Grid: grid,
			Hit:  cubepuzzle.Hit{Normal: mgl64.Vec3{0, 0, 1}},
		},
	}}
	for i := 0; i < 25; i++ {
		inputs = append(inputs, cubepuzzle.Input{DeltaTime: 1.0 / 60})
	}
	return append(inputs, cubepuzzle.Input{Released: true, DeltaTime: 1.0 / 60})
}

func TestRecordAndReplay(t *testing.T) {
	dir := t.TempDir()
	rec, err := Start(dir)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	live := cubepuzzle.New()
	run := func(inputs []cubepuzzle.Input) {
		for _, in := range inputs {
			if _, err := live.Update(in); err != nil {
				t.Fatalf("Update() error: %v", err)
			}
			if err := rec.LogFrame(in); err != nil {
				t.Fatalf("LogFrame() error: %v", err)
			}
		}
	}
	run(gesture(live, cubepuzzle.Coord{X: 1, Y: 0, Z: 1}))
	run(gesture(live, cubepuzzle.Coord{X: -1, Y: 1, Z: 1}))
	if err := rec.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if filepath.Dir(rec.FilePath()) != dir {
		t.Errorf("trace written to %s, want it in %s", rec.FilePath(), dir)
	}

	log, err := Load(rec.FilePath())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if log.SessionID != rec.SessionID() || log.Version != version {
		t.Errorf("header = %s %s, want %s %s", log.SessionID, log.Version, rec.SessionID(), version)
	}
	if len(log.Events) != 54 {
		t.Fatalf("loaded %d events, want 54", len(log.Events))
	}
	if log.Events[0].Pick == nil || log.Events[1].Pick != nil {
		t.Error("only the drag frame should carry a pick")
	}

	replayed := cubepuzzle.New()
	frames, err := log.Replay(replayed)
	if err != nil {
		t.Fatalf("Replay() error: %v", err)
	}
	if frames != 54 {
		t.Errorf("replayed %d frames, want 54", frames)
	}

	want := cubepuzzle.FormatMoves(live.Moves())
	if want != "R' L" {
		t.Fatalf("live moves = %q", want)
	}
	if got := cubepuzzle.FormatMoves(replayed.Moves()); got != want {
		t.Errorf("replayed moves = %q, want %q", got, want)
	}
	if replayed.Facelets() != live.Facelets() {
		t.Errorf("replayed net differs:\n%s\nwant:\n%s", replayed.Facelets(), live.Facelets())
	}
}

func TestReplayReset(t *testing.T) {
	dir := t.TempDir()
	rec, err := Start(dir)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	ctrl := cubepuzzle.New()
	for _, in := range gesture(ctrl, cubepuzzle.Coord{X: 1, Y: 1, Z: 1}) {
		rec.LogFrame(in)
	}
	rec.LogReset()
	rec.Close()

	log, err := Load(rec.FilePath())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if last := log.Events[len(log.Events)-1]; last.EventType != EventReset {
		t.Errorf("last event = %s, want reset", last.EventType)
	}

	frames, err := log.Replay(ctrl)
	if err != nil {
		t.Fatalf("Replay() error: %v", err)
	}
	if frames != len(log.Events)-1 {
		t.Errorf("frames = %d, want %d", frames, len(log.Events)-1)
	}
	if !ctrl.IsSolved() || len(ctrl.Moves()) != 0 {
		t.Error("reset event should restore the solved cube")
	}
}

func TestLoadRejectsMissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	data := `{"elapsed_ms":0,"event_type":"frame","delta":[0,0]}` + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "expected header") {
		t.Errorf("Load() error = %v, want header error", err)
	}
}

func TestEventInput(t *testing.T) {
	e := Event{
		EventType: EventFrame,
		Delta:     [2]float64{3, -1},
		Held:      true,
		DeltaTime: 0.02,
		Pick: &Pick{
			Home:   [3]int{1, 0, -1},
			Grid:   [3]int{0, 1, -1},
			Normal: [3]float64{0, 0, -1},
		},
	}
	in := e.Input()
	if in.Delta != (mgl64.Vec2{3, -1}) || !in.Held || in.DeltaTime != 0.02 {
		t.Errorf("input = %+v", in)
	}
	if in.Pick == nil || in.Pick.Grid != (cubepuzzle.Coord{X: 0, Y: 1, Z: -1}) {
		t.Errorf("pick = %+v", in.Pick)
	}
	if cubepuzzle.ResolveHoverSide(in.Pick.Normal) != cubepuzzle.SideBack {
		t.Errorf("normal %v should resolve to Back", in.Pick.Normal)
	}
}
