package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubepuzzle"
	"github.com/SeamusWaldron/cubepuzzle/internal/netview"
	"github.com/SeamusWaldron/cubepuzzle/internal/trace"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with the cube in the terminal",
	Long: `Start an interactive TUI showing the cube as an unfolded net.

Mouse:
  Press on a sticker and drag to turn a layer. Vertical drags turn a
  vertical layer, horizontal drags a horizontal one. Drags on the U and D
  faces do not turn anything.

Keyboard shortcuts:
  r       - Reset the cube
  d       - Toggle debug info
  q/Esc   - Quit`,
	RunE: runPlay,
}

var (
	playSpeed float64
	playFPS   int
	playTrace bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Float64VarP(&playSpeed, "speed", "s", 0, "Layer turn speed in degrees per second (default from config)")
	playCmd.Flags().IntVar(&playFPS, "fps", 0, "Frames per second (default from config)")
	playCmd.Flags().BoolVarP(&playTrace, "trace", "t", false, "Record the session input to a JSONL trace")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	sideStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// pointerScaleX compensates for terminal cells being about twice as tall as
// they are wide.
const pointerScaleX = 0.5

// Messages
type frameMsg time.Time

// Model
type playModel struct {
	ctrl     *cubepuzzle.Controller
	layout   netview.Layout
	log      logrus.FieldLogger
	recorder *trace.Recorder
	interval time.Duration

	// Pointer state accumulated between frames
	mouseX, mouseY int
	lastX, lastY   int
	held           bool
	released       bool
	delta          mgl64.Vec2

	lastFrame time.Time
	frame     cubepuzzle.Frame
	debugMode bool
	err       error
	quitting  bool
}

func newPlayModel(ctrl *cubepuzzle.Controller, log logrus.FieldLogger, rec *trace.Recorder, fps int) *playModel {
	return &playModel{
		ctrl:     ctrl,
		layout:   netview.Layout{OriginX: 2, OriginY: 2},
		log:      log,
		recorder: rec,
		interval: time.Second / time.Duration(fps),
		mouseX:   -1,
		mouseY:   -1,
	}
}

func (m *playModel) Init() tea.Cmd {
	m.lastFrame = time.Now()
	return m.frameCmd()
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "r":
			m.ctrl.Reset()
			if m.recorder != nil {
				if err := m.recorder.LogReset(); err != nil {
					m.log.WithError(err).Warn("trace write failed")
				}
			}

		case "d":
			m.debugMode = !m.debugMode
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastFrame).Seconds()
		m.lastFrame = now
		if err := m.step(dt); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.frameCmd()
	}

	return m, nil
}

// handleMouse accumulates pointer movement and button state until the next frame.
func (m *playModel) handleMouse(msg tea.MouseMsg) {
	m.mouseX, m.mouseY = msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.held = true
			m.lastX, m.lastY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		if m.held {
			m.held = false
			m.released = true
		}
	case tea.MouseActionMotion:
		if m.held {
			dx := float64(msg.X-m.lastX) * pointerScaleX
			dy := float64(msg.Y - m.lastY)
			m.delta = m.delta.Add(mgl64.Vec2{dx, dy})
			m.lastX, m.lastY = msg.X, msg.Y
		}
	}
}

// step runs one controller frame with the input gathered since the last one.
func (m *playModel) step(dt float64) error {
	in := cubepuzzle.Input{
		Delta:     m.delta,
		Held:      m.held,
		Released:  m.released,
		DeltaTime: dt,
		Pick:      m.ctrl.Pick(m.layout.CasterAt(m.mouseX, m.mouseY)),
	}

	frame, err := m.ctrl.Update(in)
	if err != nil {
		return err
	}
	m.frame = frame

	if m.recorder != nil {
		if err := m.recorder.LogFrame(in); err != nil {
			m.log.WithError(err).Warn("trace write failed")
		}
	}

	m.delta = mgl64.Vec2{}
	m.released = false
	return nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Puzzle Cube"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(strings.Repeat("─", m.layout.Width())))
	b.WriteString("\n")

	st := netview.State{Selected: netview.SelectedSlots(m.ctrl.Cells())}
	if s, ok := m.layout.HitTest(m.mouseX, m.mouseY); ok {
		st.Hover = &s
	}
	b.WriteString(m.layout.Render(m.ctrl.Facelets(), st))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Hover: %s  Turning: %s\n",
		sideStyle.Render(m.ctrl.HoverSide().String()),
		sideStyle.Render(m.ctrl.SelectedSide().String())))

	moves := m.ctrl.Moves()
	b.WriteString(fmt.Sprintf("Moves: %d", len(moves)))
	if m.ctrl.IsSolved() {
		b.WriteString("  " + moveStyle.Render("SOLVED"))
	}
	b.WriteString("\n")
	if len(moves) > 0 {
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(cubepuzzle.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.debugMode {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.debugInfo()))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("drag=turn layer  r=reset  d=debug  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *playModel) debugInfo() string {
	var lines []string
	if p := m.ctrl.LastPick(); p != nil {
		lines = append(lines, fmt.Sprintf("Pick: home=%v grid=%v normal=%v", p.Home, p.Grid, p.Normal))
	} else {
		lines = append(lines, "Pick: none")
	}
	lines = append(lines,
		fmt.Sprintf("Drag: %v  Candidates: %v  Target: %v", m.frame.Drag, m.frame.Candidates, m.frame.Target),
		fmt.Sprintf("Axis: %v  State: %v", m.ctrl.Animator().Rotation(), m.ctrl.Animator().State()),
	)
	if m.recorder != nil {
		lines = append(lines, "Trace: "+m.recorder.FilePath())
	}
	return strings.Join(lines, "\n")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if playSpeed > 0 {
		cfg.RotationSpeed = playSpeed
	}
	if playFPS > 0 {
		cfg.FPS = playFPS
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	var rec *trace.Recorder
	if playTrace {
		dir, err := cfg.TraceDirOrDefault()
		if err != nil {
			return err
		}
		rec, err = trace.Start(dir)
		if err != nil {
			return err
		}
		defer rec.Close()
		logger.WithField("session", rec.SessionID()).Info("tracing session")
	}

	ctrl := cubepuzzle.New(
		cubepuzzle.WithRotationSpeed(cfg.RotationSpeed),
		cubepuzzle.WithLogger(logger),
	)

	model := newPlayModel(ctrl, logger, rec, cfg.FPS)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	if model.err != nil {
		return model.err
	}

	moves := ctrl.Moves()
	fmt.Printf("Moves (%d): %s\n", len(moves), cubepuzzle.FormatMoves(moves))
	if rec != nil {
		fmt.Printf("Trace saved: %s\n", rec.FilePath())
	}
	return nil
}
