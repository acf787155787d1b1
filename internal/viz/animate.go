package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mzsim/internal/plot"
	"github.com/san-kum/mzsim/internal/sweep"
)

const (
	DefaultInterval = 500 * time.Millisecond
	minInterval     = 50 * time.Millisecond
	maxInterval     = 5 * time.Second
)

// Frame is one panel of the animation.
type Frame struct {
	Title   string
	Kind    string
	Table   *sweep.Table
	Metrics map[string]float64
}

type TickMsg time.Time

type Model struct {
	title    string
	frames   []Frame
	index    int
	running  bool
	showHelp bool
	interval time.Duration
	theme    int
	styles   styles
	width    int
	height   int
}

func NewModel(title string, frames []Frame) Model {
	return Model{
		title:    title,
		frames:   frames,
		running:  true,
		interval: DefaultInterval,
		styles:   newStyles(Themes[0]),
		width:    80,
		height:   12,
	}
}

func (m Model) Index() int              { return m.index }
func (m Model) Running() bool           { return m.running }
func (m Model) Interval() time.Duration { return m.interval }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
		case "right", "l":
			m.step(1)
		case "left", "h":
			m.step(-1)
		case "+", "=":
			m.interval = max(m.interval/2, minInterval)
		case "-", "_":
			m.interval = min(m.interval*2, maxInterval)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.styles = newStyles(Themes[m.theme])
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-30, 20)
		m.height = max(msg.Height-16, 5)
	case TickMsg:
		if m.running {
			m.step(1)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step(dir int) {
	if len(m.frames) == 0 {
		return
	}
	m.index = (m.index + dir + len(m.frames)) % len(m.frames)
}

func (m Model) View() string {
	if len(m.frames) == 0 {
		return m.styles.help.Render("no frames to animate") + "\n"
	}
	f := m.frames[m.index]

	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(m.title)) + "\n")

	status := m.styles.running.Render("RUNNING")
	if !m.running {
		status = m.styles.paused.Render("PAUSED")
	}
	progress := float64(m.index+1) / float64(len(m.frames))
	s.WriteString(fmt.Sprintf("%s  %s %d/%d\n\n", status,
		m.styles.bar.Render(ProgressBar(progress, 20)), m.index+1, len(m.frames)))

	s.WriteString(m.styles.panel.Render(m.chart(f)) + "\n\n")

	keys := make([]string, 0, len(f.Metrics))
	labelWidth := lipgloss.Width("Panel")
	for k := range f.Metrics {
		keys = append(keys, k)
		labelWidth = max(labelWidth, lipgloss.Width(k))
	}
	sort.Strings(keys)

	label := m.styles.label.Width(labelWidth + 2)
	s.WriteString(label.Render("Panel") + m.styles.value.Render(f.Title) + "\n")
	for _, k := range keys {
		s.WriteString(label.Render(k) + m.styles.value.Render(fmt.Sprintf("%.4g", f.Metrics[k])) + "\n")
	}

	if m.showHelp {
		s.WriteString(m.styles.help.Render("\nSpace: pause/resume   ←/→: step frame\n+/-: faster/slower    T: theme (" + Themes[m.theme].Name + ")\n?: help               Q: quit"))
	} else {
		s.WriteString(m.styles.help.Render("\nSP:Pause ←→:Step ?:Help Q:Quit"))
	}
	return lipgloss.NewStyle().Render(s.String())
}

func (m Model) chart(f Frame) string {
	if plot.IsScatter(f.Kind) {
		xs, ys, err := plot.Points(f.Table)
		if err != nil {
			return err.Error()
		}
		return plot.Scatter(xs, ys, m.width/2, m.height)
	}
	lines, err := plot.Lines(f.Table, plot.Columns(f.Kind)...)
	if err != nil {
		return err.Error()
	}
	return plot.Chart(f.Title, lines, plot.Options{Width: m.width, Height: m.height})
}

// WithInterval returns a copy of m advancing one frame per d.
func (m Model) WithInterval(d time.Duration) Model {
	m.interval = min(max(d, minInterval), maxInterval)
	return m
}

// WithTheme returns a copy of m using the named theme.
func (m Model) WithTheme(name string) Model {
	theme := GetTheme(name)
	for i, t := range Themes {
		if t.Name == theme.Name {
			m.theme = i
		}
	}
	m.styles = newStyles(theme)
	return m
}

func (m Model) Theme() string { return Themes[m.theme].Name }
