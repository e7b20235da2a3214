package cubepuzzle

import (
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// Option configures a Controller.
type Option func(*config)

type config struct {
	rotationSpeed float64
	moveHistory   bool
	center        mgl64.Vec3
	logger        logrus.FieldLogger
}

func defaultConfig() *config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return &config{
		rotationSpeed: DefaultRotationSpeed,
		moveHistory:   true,
		logger:        discard,
	}
}

// WithRotationSpeed sets the layer turn speed in degrees per second.
// Non-positive values keep the default of 270.
func WithRotationSpeed(degPerSec float64) Option {
	return func(c *config) {
		if degPerSec > 0 {
			c.rotationSpeed = degPerSec
		}
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), every committed turn is stored and accessible via Moves().
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithCenter places the cube centre in world space. Cell views are offset
// by it; the puzzle logic is unaffected.
func WithCenter(center mgl64.Vec3) Option {
	return func(c *config) {
		c.center = center
	}
}

// WithLogger sets the logger used for debug output. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
