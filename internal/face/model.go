// Package face is the interactive terminal clock face: three sliding word rows
// with a date and step-count line beneath, driven by bubbletea.
package face

import (
	"context"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/slidetime/internal/clock"
	"github.com/san-kum/slidetime/internal/config"
	"github.com/san-kum/slidetime/internal/driver"
	"github.com/san-kum/slidetime/internal/slide"
	"github.com/san-kum/slidetime/internal/steps"
	"github.com/san-kum/slidetime/internal/words"
)

const stepsTimeout = 2 * time.Second

// FrameMsg asks for one animation frame.
type FrameMsg time.Time

// MinuteMsg is delivered on every wall-clock minute boundary.
type MinuteMsg time.Time

// StepsMsg carries a refreshed step count.
type StepsMsg struct {
	Steps int
	Err   error
}

// Model is the bubbletea model of the face.
type Model struct {
	cfg     *config.Config
	clock   clock.Clock
	driver  *driver.Driver
	labels  [driver.NumRows]*Label
	steps   steps.Source
	logger  *log.Logger
	theme   Theme
	styles  styles
	ticking bool

	date      string
	stepsText string
}

// Rows builds the three labels and rows described by cfg.
func Rows(cfg *config.Config) ([driver.NumRows]*Label, [driver.NumRows]*slide.Row) {
	var labels [driver.NumRows]*Label
	var rows [driver.NumRows]*slide.Row
	for i := range rows {
		rc := cfg.Rows[i]
		labels[i] = NewLabel(cfg.Width, cfg.Centered())
		rows[i] = slide.NewRow(labels[i], slide.Geometry{X: rc.X, Width: cfg.Width}, rc.Delay)
	}
	return labels, rows
}

// New creates the face. src may be nil when step counts are disabled.
func New(cfg *config.Config, c clock.Clock, src steps.Source, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	labels, rows := Rows(cfg)
	theme := GetTheme(cfg.Theme)
	return &Model{
		cfg:     cfg,
		clock:   c,
		driver:  driver.New(c, rows, driver.WithLogger(logger)),
		labels:  labels,
		steps:   src,
		logger:  logger,
		theme:   theme,
		styles:  newStyles(theme),
		ticking: true,
	}
}

func (m *Model) Init() tea.Cmd {
	now := m.clock.Now()
	m.refreshDate(now)
	return tea.Batch(m.frameTick(), minuteTick(now), m.fetchSteps(now))
}

func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func minuteTick(now time.Time) tea.Cmd {
	return tea.Tick(clock.UntilNextMinute(now), func(t time.Time) tea.Msg { return MinuteMsg(t) })
}

func (m *Model) fetchSteps(now time.Time) tea.Cmd {
	if m.steps == nil || !m.cfg.ShowSteps {
		return nil
	}
	src := m.steps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), stepsTimeout)
		defer cancel()
		n, err := src.StepsToday(ctx, now)
		return StepsMsg{Steps: n, Err: err}
	}
}

// Update handles input and timer events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		}

	case FrameMsg:
		if m.driver.Frame() {
			return m, m.frameTick()
		}
		m.ticking = false

	case MinuteMsg:
		now := m.clock.Now()
		m.driver.Restart()
		m.refreshDate(now)
		cmds := []tea.Cmd{minuteTick(now), m.fetchSteps(now)}
		if !m.ticking {
			m.ticking = true
			cmds = append(cmds, m.frameTick())
		}
		return m, tea.Batch(cmds...)

	case StepsMsg:
		if msg.Err != nil {
			m.logger.Printf("face: step count unavailable: %v", msg.Err)
			break
		}
		m.stepsText = words.StepsLine(msg.Steps, m.layout())
	}
	return m, nil
}

func (m *Model) layout() words.Layout {
	if m.cfg.Centered() {
		return words.LayoutRound
	}
	return words.LayoutRect
}

func (m *Model) refreshDate(now time.Time) {
	if m.cfg.ShowDate {
		m.date = words.DateLine(now)
	}
}

// Ticking reports whether frame ticks are currently scheduled.
func (m *Model) Ticking() bool { return m.ticking }

func (m *Model) Driver() *driver.Driver { return m.driver }

func (m *Model) Theme() Theme { return m.theme }

// View renders the rows at their configured lines followed by the labels.
func (m *Model) View() string {
	height := 0
	for _, rc := range m.cfg.Rows {
		if rc.Y+1 > height {
			height = rc.Y + 1
		}
	}
	lines := make([]string, height)
	blank := strings.Repeat(" ", m.cfg.Width)
	for i := range lines {
		lines[i] = m.styles.minute.Render(blank)
	}
	for i, l := range m.labels {
		style := m.styles.minute
		if m.cfg.Rows[i].Bold {
			style = m.styles.hour
		}
		lines[m.cfg.Rows[i].Y] = style.Render(l.Render())
	}

	align := lipgloss.Right
	if m.cfg.Centered() {
		align = lipgloss.Center
	}
	footer := m.styles.label.Width(m.cfg.Width).Align(align)
	lines = append(lines, "")
	if m.cfg.ShowSteps {
		lines = append(lines, footer.Render(m.stepsText))
	}
	if m.cfg.ShowDate {
		lines = append(lines, footer.Render(m.date))
	}
	return m.styles.frame.Render(strings.Join(lines, "\n"))
}

// Run starts the interactive face on the alternate screen.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
