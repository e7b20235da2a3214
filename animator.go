package cubepuzzle

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// DefaultRotationSpeed is the angular speed of a layer turn in degrees per
// second. A quarter turn takes a third of a second.
const DefaultRotationSpeed = 270.0

// quarterTurn is the angle of one layer move in degrees.
const quarterTurn = 90.0

// AnimState is the state of the rotation animator.
type AnimState int

const (
	Idle AnimState = iota
	Animating
)

func (s AnimState) String() string {
	if s == Animating {
		return "Animating"
	}
	return "Idle"
}

// PendingMove is the quarter turn currently being animated.
type PendingMove struct {
	ID         uuid.UUID
	Side       Side
	Axis       Axis
	Sign       int
	StartAngle float64 // axis angle when the move started, degrees
	Elapsed    float64 // signed degrees turned so far
}

// Commit describes a finished quarter turn.
type Commit struct {
	Move  PendingMove
	Angle float64    // snapped axis angle, StartAngle + 90*Sign
	Turn  mgl64.Quat // the quarter turn as a rotation
}

// Animator drives the centre axis rotation of one layer at a time.
type Animator struct {
	speed    float64
	rotation mgl64.Vec3 // centre axis rotation, degrees per axis
	pending  *PendingMove
}

// NewAnimator creates an idle animator turning at speed degrees per second.
func NewAnimator(speed float64) *Animator {
	if speed <= 0 {
		speed = DefaultRotationSpeed
	}
	return &Animator{speed: speed}
}

// State returns Animating while a move is pending.
func (a *Animator) State() AnimState {
	if a.pending != nil {
		return Animating
	}
	return Idle
}

// Playing reports whether a move is being animated.
func (a *Animator) Playing() bool {
	return a.pending != nil
}

// Pending returns a copy of the active move, or nil when idle.
func (a *Animator) Pending() *PendingMove {
	if a.pending == nil {
		return nil
	}
	p := *a.pending
	return &p
}

// Speed returns the angular speed in degrees per second.
func (a *Animator) Speed() float64 {
	return a.speed
}

// Rotation returns the centre axis rotation in degrees.
func (a *Animator) Rotation() mgl64.Vec3 {
	return a.rotation
}

// Quat returns the centre axis rotation as a quaternion.
func (a *Animator) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(
		mgl64.DegToRad(a.rotation[0]),
		mgl64.DegToRad(a.rotation[1]),
		mgl64.DegToRad(a.rotation[2]),
		mgl64.XYZ,
	)
}

// Start begins a quarter turn of side. It reports false without error when a
// move is already playing or side is SideNone.
func (a *Animator) Start(side Side, sign int) (bool, error) {
	if a.pending != nil || side == SideNone {
		return false, nil
	}
	if sign != 1 && sign != -1 {
		return false, fmt.Errorf("%w: %d", ErrInvalidSign, sign)
	}
	axis, err := SideAxis(side)
	if err != nil {
		return false, err
	}

	a.pending = &PendingMove{
		ID:         uuid.New(),
		Side:       side,
		Axis:       axis,
		Sign:       sign,
		StartAngle: a.rotation[axis],
	}
	return true, nil
}

// Advance moves the active turn forward by dt seconds. When the turn reaches
// its quarter it snaps the axis angle exactly, returns to idle and returns
// the commit. Otherwise it returns nil.
func (a *Animator) Advance(dt float64) *Commit {
	p := a.pending
	if p == nil {
		return nil
	}

	angle := stepAngle(a.rotation[p.Axis], a.speed, p.Sign, dt)
	a.rotation[p.Axis] = angle
	p.Elapsed = angle - p.StartAngle
	if !turnComplete(p.StartAngle, angle, p.Sign) {
		return nil
	}

	snapped := p.StartAngle + quarterTurn*float64(p.Sign)
	a.rotation[p.Axis] = snapped
	p.Elapsed = quarterTurn * float64(p.Sign)
	a.pending = nil

	return &Commit{
		Move:  *p,
		Angle: snapped,
		Turn:  mgl64.QuatRotate(mgl64.DegToRad(p.Elapsed), p.Axis.Vec()),
	}
}

// ResetAxis returns the centre axis to identity. Called once a commit has
// been baked into the cells.
func (a *Animator) ResetAxis() {
	a.rotation = mgl64.Vec3{}
}

// Reset cancels any pending move and resets the axis.
func (a *Animator) Reset() {
	a.pending = nil
	a.ResetAxis()
}

// stepAngle returns angle advanced by speed*sign*dt.
func stepAngle(angle, speed float64, sign int, dt float64) float64 {
	return angle + speed*float64(sign)*dt
}

// turnComplete tests whether angle has reached the quarter turn begun at
// start. Both bounds are inclusive.
func turnComplete(start, angle float64, sign int) bool {
	switch sign {
	case 1:
		return start+quarterTurn-angle <= 0
	case -1:
		return start-quarterTurn+(-angle) >= 0
	}
	return false
}
