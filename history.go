package cubepuzzle

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Move is a committed quarter turn of one layer.
type Move struct {
	ID   uuid.UUID // ID of the pending move that produced it
	Side Side      // Layer that turned
	Sign int       // Rotation sign about the layer's axis, +1 or -1
	Time time.Time // When the turn was committed
}

// notationFaces maps each layer to its letter and the sign that turns it
// clockwise when viewed from its own face (slices follow L, D and F).
var notationFaces = map[Side]struct {
	letter    string
	clockwise int
}{
	SideRight:         {"R", -1},
	SideLeft:          {"L", 1},
	SideUp:            {"U", -1},
	SideBottom:        {"D", 1},
	SideFront:         {"F", -1},
	SideBack:          {"B", 1},
	SideMidFrontBack:  {"M", 1},
	SideMidHorizontal: {"E", 1},
	SideMidLeftRight:  {"S", -1},
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', M, E'
func (m Move) Notation() string {
	face, ok := notationFaces[m.Side]
	if !ok {
		return "?"
	}
	if m.Sign == face.clockwise {
		return face.letter
	}
	return face.letter + "'"
}

// FormatMoves joins the notation of moves with spaces.
func FormatMoves(moves []Move) string {
	notations := make([]string, len(moves))
	for i, m := range moves {
		notations[i] = m.Notation()
	}
	return strings.Join(notations, " ")
}

// History records committed moves and notifies a callback.
type History struct {
	enabled  bool
	moves    []Move
	callback func(Move)
}

func newHistory(enabled bool) *History {
	return &History{enabled: enabled}
}

// record stores m when history is enabled and fires the callback.
func (h *History) record(m Move) {
	if h.enabled {
		h.moves = append(h.moves, m)
	}
	if h.callback != nil {
		h.callback(m)
	}
}

// Moves returns a copy of the recorded moves.
func (h *History) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// Clear drops all recorded moves.
func (h *History) Clear() {
	h.moves = nil
}
