// Package trace records the per-frame input of an interactive session as
// JSONL and loads it back for headless replay.
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubepuzzle"
)

const version = "1.0"

// EventType identifies the type of logged event
type EventType string

const (
	EventFrame EventType = "frame"
	EventReset EventType = "reset"
)

// Pick is the serialized form of a frame's pick.
type Pick struct {
	Home     [3]int     `json:"home"`
	Grid     [3]int     `json:"grid"`
	Normal   [3]float64 `json:"normal"`
	Distance float64    `json:"distance"`
}

// Event represents a single logged event
type Event struct {
	ElapsedMs int64      `json:"elapsed_ms"`
	EventType EventType  `json:"event_type"`
	Delta     [2]float64 `json:"delta"`
	Held      bool       `json:"held,omitempty"`
	Released  bool       `json:"released,omitempty"`
	DeltaTime float64    `json:"dt,omitempty"`
	Pick      *Pick      `json:"pick,omitempty"`
}

// Log represents a complete session trace
type Log struct {
	Version   string    `json:"version"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	Events    []Event   `json:"events"`
}

type header struct {
	Type      string    `json:"type"`
	Version   string    `json:"version"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Recorder writes session events to a file
type Recorder struct {
	sessionID string
	startTime time.Time
	file      *os.File
}

// Start creates a trace file in dir and writes its header.
func Start(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create trace directory: %w", err)
	}

	filename := fmt.Sprintf("session_%s.jsonl", time.Now().Format("20060102_150405"))
	file, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}

	r := &Recorder{
		sessionID: uuid.New().String(),
		startTime: time.Now(),
		file:      file,
	}
	if err := r.writeJSON(header{
		Type:      "header",
		Version:   version,
		SessionID: r.sessionID,
		CreatedAt: r.startTime,
	}); err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// SessionID returns the ID written to the trace header.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// LogFrame records one frame of controller input.
func (r *Recorder) LogFrame(in cubepuzzle.Input) error {
	event := Event{
		ElapsedMs: time.Since(r.startTime).Milliseconds(),
		EventType: EventFrame,
		Delta:     [2]float64(in.Delta),
		Held:      in.Held,
		Released:  in.Released,
		DeltaTime: in.DeltaTime,
	}
	if in.Pick != nil {
		event.Pick = &Pick{
			Home:     coordArray(in.Pick.Home),
			Grid:     coordArray(in.Pick.Grid),
			Normal:   [3]float64(in.Pick.Normal),
			Distance: in.Pick.Distance,
		}
	}
	return r.writeJSON(event)
}

// LogReset records a puzzle reset.
func (r *Recorder) LogReset() error {
	return r.writeJSON(Event{
		ElapsedMs: time.Since(r.startTime).Milliseconds(),
		EventType: EventReset,
	})
}

func (r *Recorder) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.file.Write(append(data, '\n'))
	return err
}

// Close closes the trace file
func (r *Recorder) Close() error {
	return r.file.Close()
}

// FilePath returns the trace file path
func (r *Recorder) FilePath() string {
	return r.file.Name()
}

// Input rebuilds the controller input recorded in a frame event.
func (e Event) Input() cubepuzzle.Input {
	in := cubepuzzle.Input{
		Delta:     mgl64.Vec2(e.Delta),
		Held:      e.Held,
		Released:  e.Released,
		DeltaTime: e.DeltaTime,
	}
	if e.Pick != nil {
		in.Pick = &cubepuzzle.Pick{
			Home: arrayCoord(e.Pick.Home),
			Grid: arrayCoord(e.Pick.Grid),
			Hit: cubepuzzle.Hit{
				Distance: e.Pick.Distance,
				Normal:   mgl64.Vec3(e.Pick.Normal),
			},
		}
	}
	return in
}

func coordArray(c cubepuzzle.Coord) [3]int {
	return [3]int{c.X, c.Y, c.Z}
}

func arrayCoord(a [3]int) cubepuzzle.Coord {
	return cubepuzzle.Coord{X: a[0], Y: a[1], Z: a[2]}
}

// Load loads a session trace from a JSONL file
func Load(path string) (*Log, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer file.Close()

	log := &Log{
		Events: make([]Event, 0),
	}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		// First line is the header
		if lineNum == 1 {
			var h header
			if err := json.Unmarshal(line, &h); err != nil {
				return nil, fmt.Errorf("failed to parse header: %w", err)
			}
			if h.Type != "header" {
				return nil, fmt.Errorf("line 1: expected header, got %q", h.Type)
			}
			log.Version = h.Version
			log.SessionID = h.SessionID
			log.CreatedAt = h.CreatedAt
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("failed to parse event at line %d: %w", lineNum, err)
		}
		log.Events = append(log.Events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	return log, nil
}

// Replay runs every event of the trace through ctrl in order and returns the
// number of frames applied.
func (l *Log) Replay(ctrl *cubepuzzle.Controller) (int, error) {
	frames := 0
	for i, event := range l.Events {
		switch event.EventType {
		case EventReset:
			ctrl.Reset()
		case EventFrame:
			if _, err := ctrl.Update(event.Input()); err != nil {
				return frames, fmt.Errorf("event %d: %w", i, err)
			}
			frames++
		}
	}
	return frames, nil
}
