package tui

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessro/cutline/internal/timeline"
)

func newTestModel(t *testing.T) (Model, *timeline.Engine) {
	t.Helper()
	engine := timeline.New(timeline.WithPalette(timeline.NewPalette(nil, rand.New(rand.NewPCG(1, 2)))))
	m := NewModel(engine, Options{Timecode: "seconds"})
	m.copy = func(string) error { return nil }
	return m, engine
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestAddSelectsNewScene(t *testing.T) {
	m, engine := newTestModel(t)
	m = send(t, m, runes("a"))

	if got := len(engine.Scenes()); got != 4 {
		t.Fatalf("len(Scenes()) = %d, want 4", got)
	}
	if m.selected != 3 {
		t.Errorf("selected = %d, want 3", m.selected)
	}
	if m.status != "Added Scene 4" {
		t.Errorf("status = %q", m.status)
	}
}

func TestResizeSelected(t *testing.T) {
	m, engine := newTestModel(t)

	m = send(t, m, runes("]"))
	if got := engine.Scenes()[0].Length; got != 35 {
		t.Errorf("after grow: length = %d, want 35", got)
	}

	for i := 0; i < 6; i++ {
		m = send(t, m, runes("["))
	}
	if got := engine.Scenes()[0].Length; got != 10 {
		t.Errorf("after shrinking: length = %d, want minimum 10", got)
	}
	// grow + 5 effective shrinks; the sixth was a no-op at the minimum
	if got := len(engine.History()); got != 6 {
		t.Errorf("len(History()) = %d, want 6", got)
	}
	if !strings.Contains(m.status, "minimum") {
		t.Errorf("status = %q, want minimum notice", m.status)
	}
}

func TestSelectWrapsAndMoves(t *testing.T) {
	m, engine := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.selected != 2 {
		t.Fatalf("shift+tab from 0: selected = %d, want 2", m.selected)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.selected != 0 {
		t.Fatalf("tab from 2: selected = %d, want 0", m.selected)
	}

	m = send(t, m, runes("<"))
	if len(engine.History()) != 0 {
		t.Error("moving the first scene left should be a no-op")
	}

	m = send(t, m, runes(">"))
	if got := engine.Scenes()[1].Name; got != "Scene 1" {
		t.Errorf("Scenes()[1] = %q, want Scene 1", got)
	}
	if m.selected != 1 {
		t.Errorf("selected = %d, want selection to follow the scene", m.selected)
	}

	m = send(t, m, runes("u"))
	if got := engine.Scenes()[0].Name; got != "Scene 1" {
		t.Errorf("after undo: Scenes()[0] = %q, want Scene 1", got)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := engine.Scenes()[1].Name; got != "Scene 1" {
		t.Errorf("after redo: Scenes()[1] = %q, want Scene 1", got)
	}
	if !strings.HasPrefix(m.status, "Redid Move Scene 1") {
		t.Errorf("status = %q", m.status)
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("u"))
	if m.status != "Nothing to undo" {
		t.Errorf("status = %q", m.status)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.status != "Nothing to redo" {
		t.Errorf("status = %q", m.status)
	}
}

func TestStepAndJump(t *testing.T) {
	m, engine := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := engine.Playback().CurrentFrame; got != 0 {
		t.Errorf("step back from 0: frame = %d, want 0", got)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	if got := engine.Playback().CurrentFrame; got != 119 {
		t.Errorf("end: frame = %d, want 119", got)
	}
	if m.selected != 2 {
		t.Errorf("selected = %d, want scene under playhead", m.selected)
	}

	m = send(t, m, runes("g"))
	if !m.showJump {
		t.Fatal("g did not open the jump prompt")
	}
	m = send(t, m, runes("4"), runes("5"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.showJump {
		t.Error("prompt still open after enter")
	}
	if got := engine.Playback().CurrentFrame; got != 45 {
		t.Errorf("jump: frame = %d, want 45", got)
	}
	name, _, local, ok := m.swatch.Scene()
	if !ok || name != "Scene 2" || local != 15 {
		t.Errorf("swatch = %q +%d (%v), want Scene 2 +15", name, local, ok)
	}

	m = send(t, m, runes("g"), runes("x"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.lastError == nil {
		t.Error("invalid jump did not report an error")
	}
	if got := engine.Playback().CurrentFrame; got != 45 {
		t.Errorf("invalid jump moved playhead to %d", got)
	}

	m = send(t, m, runes("g"), runes("q"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.showJump || m.quitting {
		t.Error("q inside the prompt should not quit")
	}
}

func TestTickAdvancesWhilePlaying(t *testing.T) {
	m, engine := newTestModel(t)

	m = send(t, m, tickMsg(time.Now()))
	if got := engine.Playback().CurrentFrame; got != 0 {
		t.Errorf("paused tick moved playhead to %d", got)
	}

	m = send(t, m, runes(" "))
	if !engine.Playback().IsPlaying {
		t.Fatal("space did not start playback")
	}
	engine.SetCurrentFrame(119)
	m = send(t, m, tickMsg(time.Now()))
	if got := engine.Playback().CurrentFrame; got != 0 {
		t.Errorf("tick past end: frame = %d, want wrap to 0", got)
	}

	// Edits pause playback.
	_ = send(t, m, runes("a"))
	if engine.Playback().IsPlaying {
		t.Error("edit did not pause playback")
	}
}

func TestStatusExpires(t *testing.T) {
	m, _ := newTestModel(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	m = send(t, m, runes("a"))
	if m.status == "" {
		t.Fatal("no status after add")
	}
	now = now.Add(statusTTL + time.Second)
	m = send(t, m, tickMsg(now))
	if m.status != "" {
		t.Errorf("status = %q, want expired", m.status)
	}
}

func TestCopyPosition(t *testing.T) {
	m, engine := newTestModel(t)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	engine.SetCurrentFrame(45)

	m = send(t, m, runes("y"))
	if copied != "00:01:15 Scene 2 +15" {
		t.Errorf("copied = %q", copied)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	m = send(t, m, runes("y"))
	if m.lastError == nil {
		t.Error("copy failure not reported")
	}
}

func TestViewAndHelp(t *testing.T) {
	m, _ := newTestModel(t)
	if m.View() != "Loading..." {
		t.Errorf("View() before size = %q", m.View())
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	for _, want := range []string{"Canvas", "Transport", "Timeline", "History"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q panel", want)
		}
	}

	m = send(t, m, runes("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help overlay not shown")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Error("esc did not close help")
	}

	next, cmd := m.Update(runes("q"))
	if !next.(Model).quitting || cmd == nil {
		t.Error("q did not quit")
	}
}

type brokenRenderer struct{}

func (brokenRenderer) Init() error {
	return errors.New("no display")
}

func (brokenRenderer) RenderScene(name, color string, localFrame int) error {
	return nil
}

func (brokenRenderer) Clear() error {
	return nil
}

func TestInitRendererLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	initRenderer(brokenRenderer{}, logger)

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "no display") {
		t.Errorf("log output = %q, want a warning with the init error", out)
	}
}
