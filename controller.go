package cubepuzzle

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// maxPickDistance bounds ray hits considered by Pick.
const maxPickDistance = 2048.0

// Hit is the result of casting the pointer ray against one cell.
type Hit struct {
	Distance float64
	Normal   mgl64.Vec3 // outward surface normal at the hit point
}

// RayCaster intersects the pointer ray with a single cell. It is supplied by
// the rendering layer.
type RayCaster interface {
	CastRay(cell CellView) (Hit, bool)
}

// Pick is the nearest cell under the pointer for one frame.
type Pick struct {
	Home Coord // identity of the picked cell
	Grid Coord // slot the cell occupied when picked
	Hit
}

// CellView is what the rendering layer needs to draw one cell.
type CellView struct {
	Home     Coord
	Grid     Coord
	Position mgl64.Vec3 // world position
	Rotation mgl64.Quat // world rotation
	Scale    mgl64.Vec3
	Selected bool
}

// Input is the per-frame input supplied by the UI layer.
type Input struct {
	Delta     mgl64.Vec2 // pointer movement since the last frame
	Held      bool       // primary pointer button is down
	Released  bool       // primary pointer button went up this frame
	DeltaTime float64    // seconds since the last frame
	Pick      *Pick      // nearest picked cell, nil when nothing is under the pointer
}

// Frame reports what one Update call resolved.
type Frame struct {
	Hover      Side
	Drag       DragDirection
	Candidates []Side
	Target     Side
	Started    bool    // a quarter turn started this frame
	Commit     *Commit // a quarter turn finished this frame
}

// Controller owns the cube and runs the per-frame interaction loop.
type Controller struct {
	cfg      *config
	log      logrus.FieldLogger
	grid     *Grid
	animator *Animator
	history  *History

	hover    Side
	selected Side
	lastPick *Pick
	moved    bool // a drag already started a move; cleared on release
}

// New creates a controller holding a solved cube.
func New(opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Controller{
		cfg:      cfg,
		log:      cfg.logger,
		grid:     NewGrid(),
		animator: NewAnimator(cfg.rotationSpeed),
		history:  newHistory(cfg.moveHistory),
	}
}

// Grid returns the cell grid.
func (c *Controller) Grid() *Grid { return c.grid }

// Animator returns the rotation animator.
func (c *Controller) Animator() *Animator { return c.animator }

// HoverSide returns the face under the pointer in the last frame.
func (c *Controller) HoverSide() Side { return c.hover }

// SelectedSide returns the layer being turned, or SideNone.
func (c *Controller) SelectedSide() Side { return c.selected }

// LastPick returns the pick of the last frame, or nil.
func (c *Controller) LastPick() *Pick { return c.lastPick }

// Playing reports whether a quarter turn is in progress.
func (c *Controller) Playing() bool { return c.animator.Playing() }

// Moves returns the committed moves since the last reset.
func (c *Controller) Moves() []Move { return c.history.Moves() }

// OnMove registers a callback fired for every committed quarter turn.
func (c *Controller) OnMove(cb func(Move)) { c.history.callback = cb }

// Facelets returns the current sticker net.
func (c *Controller) Facelets() Facelets { return c.grid.Facelets() }

// IsSolved returns true if every face shows a single color.
func (c *Controller) IsSolved() bool { return c.grid.Facelets().IsSolved() }

// Cells returns a view of every cell for drawing.
func (c *Controller) Cells() []CellView {
	axis := c.animator.Quat()
	cells := c.grid.Cells()
	views := make([]CellView, len(cells))
	for i, cell := range cells {
		pos, rot := cell.WorldTransform(axis)
		views[i] = CellView{
			Home:     cell.home,
			Grid:     cell.grid,
			Position: c.cfg.center.Add(pos),
			Rotation: rot,
			Scale:    mgl64.Vec3{1, 1, 1},
			Selected: cell.selected,
		}
	}
	return views
}

// Pick casts the pointer ray against every cell and returns the nearest
// hit, or nil.
func (c *Controller) Pick(rc RayCaster) *Pick {
	var pick *Pick
	nearest := maxPickDistance
	for _, view := range c.Cells() {
		hit, ok := rc.CastRay(view)
		if !ok || hit.Distance >= nearest {
			continue
		}
		nearest = hit.Distance
		pick = &Pick{Home: view.Home, Grid: view.Grid, Hit: hit}
	}
	return pick
}

// Update runs one frame: resolve hover face, candidate layers and target
// layer, start a turn on the first drag of a press, and advance the active
// turn.
func (c *Controller) Update(in Input) (Frame, error) {
	c.grid.Refresh(c.animator.Quat())

	frame := Frame{Drag: ClassifyDrag(in.Delta)}
	sides := []Side{SideNone}
	if in.Pick != nil {
		frame.Hover = ResolveHoverSide(in.Pick.Normal)
		sides = c.grid.membership.SidesContaining(in.Pick.Grid)
	}
	c.hover = frame.Hover

	frame.Candidates = Candidates(sides, frame.Hover)
	frame.Target = ResolveMove(frame.Hover, frame.Drag, frame.Candidates)

	if !c.moved && in.Delta != (mgl64.Vec2{}) && in.Held {
		started, err := c.StartAnimation(frame.Hover, frame.Target, frame.Drag)
		if err != nil {
			return frame, err
		}
		frame.Started = started
		c.moved = true
	}
	if c.moved && in.Released {
		c.moved = false
	}

	frame.Commit = c.advance(in.DeltaTime)
	c.lastPick = in.Pick
	return frame, nil
}

// StartAnimation starts a quarter turn of target for a drag on the hover
// face. It reports false when a turn is already playing, nothing is hovered
// or no layer was resolved.
func (c *Controller) StartAnimation(hover, target Side, drag DragDirection) (bool, error) {
	if c.animator.Playing() || hover == SideNone || target == SideNone {
		return false, nil
	}

	sign := RotationSign(hover, target, drag)
	started, err := c.animator.Start(target, sign)
	if err != nil || !started {
		return false, err
	}

	c.grid.Select(target)
	c.selected = target
	c.log.WithFields(logrus.Fields{
		"hover": hover,
		"side":  target,
		"drag":  drag,
		"sign":  sign,
		"move":  c.animator.pending.ID,
	}).Debug("quarter turn started")
	return true, nil
}

// advance steps the animator and bakes a finished turn into the grid.
func (c *Controller) advance(dt float64) *Commit {
	commit := c.animator.Advance(dt)
	if commit == nil {
		return nil
	}

	c.grid.Commit(commit.Turn)
	c.animator.ResetAxis()
	c.grid.Refresh(c.animator.Quat())
	c.selected = SideNone

	move := Move{
		ID:   commit.Move.ID,
		Side: commit.Move.Side,
		Sign: commit.Move.Sign,
		Time: time.Now(),
	}
	c.history.record(move)
	c.log.WithFields(logrus.Fields{
		"side":     move.Side,
		"notation": move.Notation(),
		"angle":    commit.Angle,
		"move":     move.ID,
	}).Debug("quarter turn committed")
	return commit
}

// Reset restores the solved cube, cancels any turn in progress and clears
// the move history.
func (c *Controller) Reset() {
	c.grid.Reset()
	c.animator.Reset()
	c.history.Clear()
	c.hover = SideNone
	c.selected = SideNone
	c.lastPick = nil
	c.moved = false
	c.log.Debug("cube reset")
}
