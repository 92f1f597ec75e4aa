package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/internal/braille"
	"github.com/gogpu/spiro/internal/raster"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	panelWidth    = 40
	barWidth      = 12
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(0, 1)
	panelStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(panelWidth)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// frameCache holds the last rendered canvas. A buffer is never modified
// after generation, so the pointer and the size identify the output.
type frameCache struct {
	buf    *spiro.RenderBuffer
	w, h   int
	out    string
	builds int
}

func (c *frameCache) canvas(buf *spiro.RenderBuffer, w, h int) string {
	if c.builds > 0 && c.buf == buf && c.w == w && c.h == h {
		return c.out
	}
	if buf.IsField() {
		// Half blocks are twice as tall as wide; keep the plate square.
		side := min(w, h*2)
		c.out = braille.Field(buf.Field, side, side/2)
	} else {
		cv := braille.NewCanvas(w, h)
		cv.DrawBuffer(buf, 0.05)
		c.out = cv.Render()
	}
	c.buf, c.w, c.h = buf, w, h
	c.builds++
	return c.out
}

// model is the bubbletea frame driver around a spiro.State.
type model struct {
	state    *spiro.State
	presets  spiro.Presets
	names    []string // preset names, sorted
	preset   int      // index into names, -1 when none applied
	selected int
	fps      int
	paused   bool
	clock    float64 // seconds of unpaused animation
	last     time.Time
	width    int
	height   int
	err      error
	frame    *frameCache
}

func newModel(state *spiro.State, presets spiro.Presets, fps int) model {
	return model{
		state:   state,
		presets: presets,
		names:   presets.Names(),
		preset:  -1,
		fps:     max(fps, 1),
		width:   defaultWidth,
		height:  defaultHeight,
		frame:   &frameCache{},
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the animation clock.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			_, m.err = m.state.Reset()
			m.preset = -1
			return m, nil
		case "tab":
			m.cycleParam(1)
		case "shift+tab":
			m.cycleParam(-1)
		case "up", "k":
			m.nudge(1)
		case "down", "j":
			m.nudge(-1)
		case "pgup":
			m.nudge(10)
		case "pgdown":
			m.nudge(-10)
		case "1", "2", "3", "4":
			m.err = m.state.ToggleMode(int(msg.String()[0] - '1'))
		case "f":
			m.cycleFamily()
		case "p":
			m.cyclePreset()
		}
		m.refresh()
	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() && !m.paused {
			m.clock += now.Sub(m.last).Seconds()
		}
		m.last = now
		m.state.Tick(m.clock)
		m.refresh()
		return m, m.tick()
	}
	return m, nil
}

func (m *model) refresh() {
	if _, err := m.state.Refresh(); err != nil {
		m.err = err
	}
}

func (m *model) params() []spiro.ParamSpec {
	return m.state.Family().Params()
}

func (m *model) cycleParam(dir int) {
	n := len(m.params())
	if n == 0 {
		return
	}
	m.selected = ((m.selected+dir)%n + n) % n
}

func (m *model) nudge(steps float64) {
	ps := m.params()
	if len(ps) == 0 {
		return
	}
	m.err = m.state.Nudge(ps[m.selected].Name, steps)
}

func (m *model) cycleFamily() {
	fams := spiro.Families()
	next := fams[(int(m.state.Family())+1)%len(fams)]
	m.err = m.state.SetFamily(next)
	m.selected = 0
	m.preset = -1
}

func (m *model) cyclePreset() {
	if len(m.names) == 0 {
		return
	}
	m.preset = (m.preset + 1) % len(m.names)
	if m.err = m.applyPreset(m.names[m.preset]); m.err == nil {
		m.selected = 0
	}
}

func (m *model) applyPreset(name string) error {
	v, ok := m.presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	return m.state.Replace(v)
}

// View renders the canvas beside the parameter panel.
func (m model) View() string {
	cw := max(m.width-panelWidth-4, 10)
	ch := max(m.height-1, 4)

	canvas := m.frame.canvas(m.state.Buffer(), cw, ch)

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(canvas), panelStyle.Render(m.panel()))
}

func (m model) panel() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.state.Family().String())) + "\n")

	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	if m.preset >= 0 {
		status += "  preset " + m.names[m.preset]
	}
	s.WriteString(status + "\n\n")

	v := m.state.Snapshot()
	for i, p := range m.params() {
		val, _ := v.Value(p.Name)
		line := fmt.Sprintf("%-6s %s %s", p.Name, bar(val, p.Min, p.Max), formatValue(val, p))
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	if v.Family == spiro.Nodal {
		s.WriteString("\n" + labelStyle.Render("MODES") + "\n")
		for i, mode := range v.Modes {
			state := "off"
			if mode.Enabled {
				state = "on"
			}
			s.WriteString(fmt.Sprintf("  F%d %s (%d,%d)\n", i+1, valueStyle.Render(state), mode.M, mode.N))
		}
	}

	if buf := m.state.Buffer(); buf != nil {
		s.WriteString("\n" + valueStyle.Render(raster.Caption(buf)) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	help := "TAB:Select ↑↓:Step PgUp/PgDn:×10\nF:Family SP:Pause R:Reset Q:Quit"
	if v.Family == spiro.Nodal {
		help += "\n1-4:Toggle mode"
	}
	if len(m.names) > 0 {
		help += "  P:Preset"
	}
	s.WriteString(helpStyle.Render(help))
	return s.String()
}

// bar draws val's position within [lo, hi].
func bar(val, lo, hi float64) string {
	ratio := 0.0
	if hi > lo {
		ratio = math.Max(0, math.Min(1, (val-lo)/(hi-lo)))
	}
	filled := int(math.Round(ratio * barWidth))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func formatValue(val float64, p spiro.ParamSpec) string {
	switch {
	case p.Integer:
		return fmt.Sprintf("%d", int(val))
	case p.Step < 1:
		return fmt.Sprintf("%.2f", val)
	}
	return fmt.Sprintf("%g", val)
}
