package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/visual"
)

type fakeMuter struct{ muted bool }

func (f *fakeMuter) SetMuted(m bool) { f.muted = m }
func (f *fakeMuter) Muted() bool     { return f.muted }

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	vo := visual.DefaultOptions()
	vo.Size = 20
	vo.Speed = 1
	vo.Seed = 3
	m := NewModel(visual.New(vo, nil, nil), opts)
	m.clock = func() time.Time { return time.Unix(100, 0) }
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestMenuSelect(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.state != stateMenu {
		t.Fatal("expected to start in the menu")
	}
	if !strings.Contains(m.View(), "Bubble Sort") {
		t.Error("menu should list algorithms")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateVisual {
		t.Fatal("enter should open the visualizer")
	}
	if got := m.coord.Options().Algorithm; got != sorting.IDs()[2] {
		t.Errorf("expected %s, got %s", sorting.IDs()[2], got)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Error("esc should return to the menu")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor moved above the top: %d", m.cursor)
	}
	for range len(m.ids) + 3 {
		m = send(m, runes("j"))
	}
	if m.cursor != len(m.ids)-1 {
		t.Errorf("cursor moved past the end: %d", m.cursor)
	}
}

func TestStartAndTick(t *testing.T) {
	m := newTestModel(t, Options{SkipMenu: true})
	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.coord.Snapshot().Running {
		t.Fatal("space should start playback")
	}

	now := time.Unix(100, 0)
	for i := 0; i < 5000 && !m.coord.Snapshot().Complete; i++ {
		now = now.Add(time.Second / frameRate)
		m = send(m, TickMsg(now))
	}
	s := m.coord.Snapshot()
	if !s.Complete {
		t.Fatal("playback did not complete")
	}
	for i := 1; i < len(s.Array); i++ {
		if s.Array[i-1] > s.Array[i] {
			t.Fatalf("array not sorted: %v", s.Array)
		}
	}
	if !strings.Contains(m.View(), "sorted") {
		t.Error("view should report the sorted state")
	}
}

func TestResetAndAlgorithmCycling(t *testing.T) {
	m := newTestModel(t, Options{SkipMenu: true})
	before := m.coord.Snapshot().Array

	m = send(m, runes("r"))
	if after := m.coord.Snapshot().Array; len(after) != len(before) {
		t.Errorf("reset changed the size: %d", len(after))
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.coord.Options().Algorithm; got != sorting.Quick {
		t.Errorf("expected quick after bubble, got %s", got)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.coord.Options().Algorithm; got != sorting.Counting {
		t.Errorf("expected wrap to counting, got %s", got)
	}
	if m.ids[m.cursor] != sorting.Counting {
		t.Error("menu cursor should follow the selected algorithm")
	}
}

func TestSizeAndSpeedClamp(t *testing.T) {
	m := newTestModel(t, Options{SkipMenu: true})

	m = send(m, runes("-"), runes("-"), runes("-"))
	if got := m.coord.Options().Size; got != 10 {
		t.Errorf("expected size clamped to 10, got %d", got)
	}
	for range 50 {
		m = send(m, runes("]"))
	}
	if got := m.coord.Options().Size; got != 400 {
		t.Errorf("expected size clamped to 400, got %d", got)
	}
	if got := len(m.coord.Snapshot().Array); got != 400 {
		t.Errorf("array not regenerated: %d", got)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.coord.Options().Speed; got != 1 {
		t.Errorf("expected speed clamped to 1, got %d", got)
	}
	for range 20 {
		m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if got := m.coord.Options().Speed; got != 50 {
		t.Errorf("expected speed clamped to 50, got %d", got)
	}
}

func TestToggles(t *testing.T) {
	mute := &fakeMuter{}
	m := newTestModel(t, Options{SkipMenu: true, Audio: mute})

	m = send(m, runes("m"))
	if !mute.muted {
		t.Error("m should mute")
	}

	m = send(m, runes("c"))
	if !m.showCode || !strings.Contains(m.View(), "func bubbleSort") {
		t.Error("c should show the listing")
	}

	theme := m.theme.Name
	m = send(m, runes("t"))
	if m.theme.Name == theme {
		t.Error("t should change the theme")
	}

	m = send(m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestRenderBarsHighlight(t *testing.T) {
	m := newTestModel(t, Options{})
	s := visual.Snapshot{Array: []int{1, 2, 3, 4}, Highlight: sorting.Pair{0, 3}}
	out := m.renderBars(s, 8, 2)
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("expected 2 rows, got %d", lines)
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Errorf("unexpected wrap: %q", got)
	}
}
