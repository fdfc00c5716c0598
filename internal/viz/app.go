package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/visual"
)

const (
	frameRate = 60
	sizeStep  = 10
	speedStep = 5
	codeWidth = 46
	sideWidth = 30
)

const (
	stateMenu = iota
	stateVisual
)

type TickMsg time.Time

// Muter is the audio switch the UI toggles. The audio collaborator itself
// is handed to the coordinator.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

type Options struct {
	Theme string
	Audio Muter
	// SkipMenu opens straight into the visualizer with the coordinator's
	// current algorithm.
	SkipMenu bool
	Log      *slog.Logger
}

// Model is the terminal frontend. All state the core owns stays in the
// coordinator; the model only keeps presentation state.
type Model struct {
	coord *visual.Coordinator
	audio Muter
	log   *slog.Logger
	clock func() time.Time

	state, cursor int
	ids           []sorting.ID
	theme         Theme
	st            styles
	keys          keyMap
	help          help.Model
	showCode      bool
	frame         int
	width, height int
}

func NewModel(coord *visual.Coordinator, opts Options) Model {
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	theme := GetTheme(opts.Theme)
	ids := sorting.IDs()

	m := Model{
		coord:  coord,
		audio:  opts.Audio,
		log:    opts.Log,
		clock:  time.Now,
		state:  stateMenu,
		ids:    ids,
		theme:  theme,
		st:     newStyles(theme),
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  100,
		height: 30,
	}
	current := coord.Options().Algorithm
	for i, id := range ids {
		if id == current {
			m.cursor = i
		}
	}
	if opts.SkipMenu {
		m.state = stateVisual
	}
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case TickMsg:
		m.coord.Frame(time.Time(msg))
		m.frame++
		return m, tick()
	case tea.KeyMsg:
		if m.state == stateMenu {
			return m.menuKey(msg)
		}
		return m.visualKey(msg)
	}
	return m, nil
}

func (m Model) menuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ids)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.coord.SelectAlgorithm(m.ids[m.cursor])
		m.state = stateVisual
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
	}
	return m, nil
}

func (m Model) visualKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	opts := m.coord.Options()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Menu):
		m.coord.Reset()
		m.state = stateMenu
	case key.Matches(msg, m.keys.Start):
		m.coord.Start(m.clock())
	case key.Matches(msg, m.keys.Reset):
		m.coord.Reset()
	case key.Matches(msg, m.keys.NextAlgo):
		m.selectAlgorithm(sorting.Next(opts.Algorithm, 1))
	case key.Matches(msg, m.keys.PrevAlgo):
		m.selectAlgorithm(sorting.Next(opts.Algorithm, -1))
	case key.Matches(msg, m.keys.Bigger):
		if n := config.ClampSize(opts.Size + sizeStep); n != opts.Size {
			m.coord.SetArraySize(n)
		}
	case key.Matches(msg, m.keys.Smaller):
		if n := config.ClampSize(opts.Size - sizeStep); n != opts.Size {
			m.coord.SetArraySize(n)
		}
	case key.Matches(msg, m.keys.Faster):
		m.coord.SetSpeed(config.ClampSpeed(opts.Speed - speedStep))
	case key.Matches(msg, m.keys.Slower):
		m.coord.SetSpeed(config.ClampSpeed(opts.Speed + speedStep))
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Code):
		m.showCode = !m.showCode
	case key.Matches(msg, m.keys.Mute):
		if m.audio != nil {
			m.audio.SetMuted(!m.audio.Muted())
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) selectAlgorithm(id sorting.ID) {
	m.coord.SelectAlgorithm(id)
	for i, x := range m.ids {
		if x == id {
			m.cursor = i
		}
	}
	m.log.Debug("algorithm selected", "algorithm", id)
}

func (m *Model) cycleTheme() {
	m.theme = NextTheme(m.theme)
	m.st = newStyles(m.theme)
}

func (m Model) View() string {
	if m.state == stateMenu {
		return m.viewMenu()
	}
	return m.viewVisual()
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + m.st.title.Render("SORTVIZ") + "\n")
	b.WriteString("    " + m.st.subtle.Render("sorting algorithm visualizer") + "\n")
	b.WriteString("    " + separator(28, m.st.subtle) + "\n\n")

	for i, id := range m.ids {
		d := sorting.Lookup(id)
		desc := d.Description
		if len(desc) > 48 {
			desc = desc[:45] + "..."
		}
		name := fmt.Sprintf("%-16s", d.Name)
		if i == m.cursor {
			b.WriteString("    " + m.st.accent.Render("▸") + " " + m.st.selected.Render(name) + "  " + m.st.highlight.Render(desc) + "\n")
		} else {
			b.WriteString("      " + m.st.subtle.Render(name) + "  " + m.st.subtle.Render(desc) + "\n")
		}
	}

	b.WriteString("\n    " + m.help.View(menuKeys{m.keys}) + "\n")
	return b.String()
}

func (m Model) viewVisual() string {
	s := m.coord.Snapshot()

	barsW := m.width - sideWidth - 6
	if m.showCode {
		barsW -= codeWidth + 4
	}
	barsH := m.height - 8
	if m.help.ShowAll {
		barsH -= 3
	}
	barsW, barsH = max(barsW, 10), max(barsH, 4)

	header := m.st.title.Render(strings.ToUpper(s.Algorithm.Name)) + "  " + m.status(s)
	bars := m.st.panel.Render(strings.TrimSuffix(m.renderBars(s, barsW, barsH), "\n"))
	panels := []string{bars, m.viewStats(s)}
	if m.showCode {
		code := lipgloss.NewStyle().Width(codeWidth).Render(m.st.text.Render(s.Algorithm.Code))
		panels = append(panels, m.st.panel.Render(code))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		" "+header,
		body,
		" "+m.help.View(m.keys),
	)
}

func (m Model) status(s visual.Snapshot) string {
	switch {
	case s.Running:
		return m.st.accent.Render(spinner(m.frame) + " sorting")
	case s.Complete:
		return m.st.sorted.Render("✓ sorted")
	default:
		return m.st.subtle.Render("ready")
	}
}

func (m Model) viewStats(s visual.Snapshot) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(m.st.label.Render(label) + m.st.text.Render(value) + "\n")
	}

	row("size", fmt.Sprintf("%d", s.Size))
	b.WriteString(m.st.bar.Render(meter(s.Size, config.MinSize, config.MaxSize, sideWidth-4)) + "\n")
	row("speed", fmt.Sprintf("%d ms", s.Speed))
	b.WriteString(m.st.bar.Render(meter(config.MaxSpeed-s.Speed, 0, config.MaxSpeed-config.MinSpeed, sideWidth-4)) + "\n")
	row("interval", s.Interval.String())
	row("x speed", fmt.Sprintf("%g", s.Algorithm.SpeedMultiplier))
	row("steps", fmt.Sprintf("%d", s.Applied))
	if s.Highlight.IsNone() {
		row("compare", "-")
	} else {
		row("compare", fmt.Sprintf("%d ↔ %d", s.Highlight[0], s.Highlight[1]))
	}
	sound := "off"
	if m.audio != nil && !m.audio.Muted() {
		sound = "on"
	}
	row("sound", sound)
	row("theme", m.theme.Name)

	b.WriteString("\n" + m.st.subtle.Render(wrap(s.Algorithm.Description, sideWidth-4)))
	return m.st.panel.Width(sideWidth).Render(b.String())
}

// renderBars draws the array and colors the highlighted bars. A sorted
// array is drawn in the sorted color with the sweep cursor highlighted.
func (m Model) renderBars(s visual.Snapshot, w, h int) string {
	c := NewCanvas(w, h)
	BarChart(c, s.Array)

	var hot map[int]bool
	if !s.Highlight.IsNone() {
		hot = CellColumns(s.Highlight[:], len(s.Array), c.Width)
	}
	base := m.st.bar
	if s.Complete {
		base = m.st.sorted
	}

	var b strings.Builder
	for _, row := range c.Grid {
		start := 0
		for col := 1; col <= len(row); col++ {
			if col < len(row) && hot[col] == hot[start] {
				continue
			}
			seg := string(row[start:col])
			if hot[start] {
				b.WriteString(m.st.highlight.Render(seg))
			} else {
				b.WriteString(base.Render(seg))
			}
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func wrap(text string, width int) string {
	var b strings.Builder
	line := 0
	for i, word := range strings.Fields(text) {
		if i > 0 && line+1+len(word) > width {
			b.WriteByte('\n')
			line = 0
		} else if i > 0 {
			b.WriteByte(' ')
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}

// Run takes over the terminal until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
