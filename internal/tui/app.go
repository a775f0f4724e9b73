package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/cutline/internal/playback"
	"github.com/tessro/cutline/internal/render"
	"github.com/tessro/cutline/internal/timeline"
	"github.com/tessro/cutline/internal/tui/components"
	"github.com/tessro/cutline/internal/tui/styles"
)

// resizeStep is how many frames [ and ] change the selected scene by.
const resizeStep = 5

const statusTTL = 3 * time.Second

// Options configures the editor.
type Options struct {
	Timecode string
	Autoplay bool
	Theme    string
	Logger   *slog.Logger
}

// Model is the main TUI model
type Model struct {
	engine   *timeline.Engine
	opts     Options
	logger   *slog.Logger
	swatch   *render.Swatch
	renderer render.Renderer
	width    int
	height   int
	selected int

	// Components
	canvas    *components.Canvas
	transport *components.Transport
	strip     *components.Strip
	history   *components.History

	// Overlays
	showHelp  bool
	showJump  bool
	jumpInput textinput.Model

	// Status line
	status       string
	lastError    error
	statusExpiry time.Time

	copy func(string) error
	now  func() time.Time

	// Quit flag
	quitting bool
}

// initRenderer prepares the canvas renderer. A failure leaves the canvas blank.
func initRenderer(r render.Renderer, logger *slog.Logger) {
	if err := r.Init(); err != nil {
		logger.Warn("canvas renderer init failed", "err", err)
	}
}

// NewModel creates a new TUI model over engine
func NewModel(engine *timeline.Engine, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "frame number"
	ti.CharLimit = 10
	ti.Width = 20

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	swatch := render.NewSwatch()
	renderer := render.Dedupe(swatch)
	initRenderer(renderer, logger)

	if opts.Autoplay {
		engine.SetPlaying(true)
	}

	m := Model{
		engine:    engine,
		opts:      opts,
		logger:    logger,
		swatch:    swatch,
		renderer:  renderer,
		canvas:    components.NewCanvas(swatch),
		transport: components.NewTransport(opts.Timecode),
		strip:     components.NewStrip(),
		history:   components.NewHistory(),
		jumpInput: ti,
		copy:      clipboard.WriteAll,
		now:       time.Now,
	}
	m.draw()
	return m
}

// Messages
type tickMsg time.Time

// Commands
func (m Model) tick() tea.Cmd {
	return tea.Tick(playback.FrameInterval(m.engine.Playback().FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.engine.Playback().IsPlaying {
			if m.engine.Advance() {
				m.logger.Debug("playback looped")
			}
			m.draw()
		}
		if !m.statusExpiry.IsZero() && m.now().After(m.statusExpiry) {
			m.status, m.lastError = "", nil
		}
		return m, m.tick()
	}

	// Forward other messages to textinput when the prompt is open
	if m.showJump {
		var inputCmd tea.Cmd
		m.jumpInput, inputCmd = m.jumpInput.Update(msg)
		return m, inputCmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (always work)
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Help overlay
	if m.showHelp {
		switch msg.String() {
		case "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	// Jump prompt
	if m.showJump {
		return m.handleJumpKeyPress(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = true

	case key.Matches(msg, keys.Jump):
		m.showJump = true
		m.jumpInput.SetValue("")
		m.jumpInput.Focus()
		return m, textinput.Blink

	// Playhead
	case key.Matches(msg, keys.Play):
		if m.engine.TogglePlaying() {
			m.logger.Debug("playback resumed", "frame", m.engine.Playback().CurrentFrame)
		}
	case key.Matches(msg, keys.Back):
		m.seek(m.engine.Playback().CurrentFrame - 1)
	case key.Matches(msg, keys.Forward):
		m.seek(m.engine.Playback().CurrentFrame + 1)
	case key.Matches(msg, keys.Start):
		m.seek(0)
	case key.Matches(msg, keys.End):
		m.seek(m.engine.TotalFrames() - 1)

	// Selection
	case key.Matches(msg, keys.NextScene):
		m.selectScene(m.selected + 1)
	case key.Matches(msg, keys.PrevScene):
		m.selectScene(m.selected - 1)

	// Edits
	case key.Matches(msg, keys.Add):
		scene, err := m.engine.AddScene()
		if err != nil {
			m.setError(err)
			break
		}
		m.selected = scene.Index
		m.setStatus("Added " + scene.Name)
	case key.Matches(msg, keys.Shrink):
		m.resizeSelected(-resizeStep)
	case key.Matches(msg, keys.Grow):
		m.resizeSelected(resizeStep)
	case key.Matches(msg, keys.MoveLeft):
		m.moveSelected(-1)
	case key.Matches(msg, keys.MoveRight):
		m.moveSelected(1)
	case key.Matches(msg, keys.Undo):
		if desc := m.currentDescription(); m.engine.Undo() {
			m.setStatus("Undid " + desc)
		} else {
			m.setStatus("Nothing to undo")
		}
	case key.Matches(msg, keys.Redo):
		if m.engine.Redo() {
			m.setStatus("Redid " + m.currentDescription())
		} else {
			m.setStatus("Nothing to redo")
		}

	case key.Matches(msg, keys.Copy):
		text := m.positionText()
		if err := m.copy(text); err != nil {
			m.setError(fmt.Errorf("copy failed: %w", err))
			break
		}
		m.setStatus("Copied " + text)

	default:
		return m, nil
	}

	m.clampSelection()
	m.draw()
	return m, nil
}

func (m Model) handleJumpKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showJump = false
		m.jumpInput.Blur()
		return m, nil

	case "enter":
		m.showJump = false
		m.jumpInput.Blur()
		frame, err := strconv.Atoi(strings.TrimSpace(m.jumpInput.Value()))
		if err != nil {
			m.setError(fmt.Errorf("not a frame number: %q", m.jumpInput.Value()))
			return m, nil
		}
		m.seek(frame)
		m.draw()
		return m, nil
	}

	// Handle text input
	var inputCmd tea.Cmd
	m.jumpInput, inputCmd = m.jumpInput.Update(msg)
	return m, inputCmd
}

func (m *Model) seek(frame int) {
	m.engine.SetCurrentFrame(frame)
	if scene, _, ok := m.engine.SceneAtFrame(m.engine.Playback().CurrentFrame); ok {
		m.selected = scene.Index
	}
}

func (m *Model) selectScene(i int) {
	n := len(m.engine.Scenes())
	if n == 0 {
		return
	}
	m.selected = (i%n + n) % n
}

func (m *Model) clampSelection() {
	n := len(m.engine.Scenes())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) resizeSelected(delta int) {
	scenes := m.engine.Scenes()
	if m.selected >= len(scenes) {
		return
	}
	scene := scenes[m.selected]
	length := scene.Length + delta
	if length < m.engine.MinSceneLength() {
		length = m.engine.MinSceneLength()
	}
	if length == scene.Length {
		m.setStatus(fmt.Sprintf("%s is already at the minimum length", scene.Name))
		return
	}
	if err := m.engine.ResizeScene(m.selected, length); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(m.currentDescription())
}

func (m *Model) moveSelected(delta int) {
	to := m.selected + delta
	if to < 0 || to >= len(m.engine.Scenes()) {
		return
	}
	if err := m.engine.ReorderScenes(m.selected, to); err != nil {
		m.setError(err)
		return
	}
	m.selected = to
	m.setStatus(m.currentDescription())
}

func (m Model) currentDescription() string {
	history := m.engine.History()
	i := m.engine.HistoryIndex()
	if i < 0 || i >= len(history) {
		return ""
	}
	return history[i]
}

// positionText describes the playhead for the clipboard.
func (m Model) positionText() string {
	pb := m.engine.Playback()
	tc := playback.Timecode(pb.CurrentFrame, pb.FPS, m.opts.Timecode)
	if scene, local, ok := m.engine.SceneAtFrame(pb.CurrentFrame); ok {
		return fmt.Sprintf("%s %s +%d", tc, scene.Name, local)
	}
	return tc
}

func (m *Model) draw() {
	if err := render.Draw(m.renderer, m.engine, m.engine.Playback().CurrentFrame); err != nil {
		m.logger.Warn("render failed", "err", err)
	}
}

func (m *Model) setStatus(s string) {
	m.status, m.lastError = s, nil
	m.statusExpiry = m.now().Add(statusTTL)
}

func (m *Model) setError(err error) {
	m.logger.Error("edit failed", "err", err)
	m.status, m.lastError = "", err
	m.statusExpiry = m.now().Add(statusTTL)
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showJump {
		return m.renderJump()
	}

	// Layout:
	// Top: Canvas (left), Transport (right)
	// Middle: Timeline strip
	// Bottom: History

	state := m.engine.State()

	leftWidth := m.width * 50 / 100
	rightWidth := m.width - leftWidth
	topHeight := m.height * 45 / 100
	stripHeight := 7
	historyHeight := m.height - topHeight - stripHeight - 1
	if historyHeight < 4 {
		historyHeight = 4
	}

	canvas := m.canvas.Render(leftWidth-2, topHeight-2, false)
	transport := m.transport.Render(state, rightWidth-2, topHeight-2, false)
	strip := m.strip.Render(state.Scenes, state.Playback.CurrentFrame, m.selected, m.width-2, stripHeight-2, true)
	history := m.history.Render(state.History, state.HistoryIndex, m.width-2, historyHeight-2, false)

	top := lipgloss.JoinHorizontal(lipgloss.Top, canvas, transport)
	main := lipgloss.JoinVertical(lipgloss.Left, top, strip, history)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m Model) renderStatusBar() string {
	status := styles.Dim.Render("q:quit  ?:help  space:play/pause  ←/→:step  tab:select  a:add  [/]:resize  </>:move  u:undo  ctrl+r:redo")

	switch {
	case m.lastError != nil:
		status = styles.ErrorText.Render("Error: " + m.lastError.Error())
	case m.status != "":
		status = styles.Subtitle.Render(m.status)
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := "Cutline - Keyboard Shortcuts"

	var b strings.Builder
	b.WriteString("\n  " + title + "\n  " + strings.Repeat("═", len(title)) + "\n")
	headings := []string{"Playhead", "Scenes", "History"}
	for i, group := range keys.groups() {
		b.WriteString("\n  " + headings[i] + "\n  " + strings.Repeat("─", len(headings[i])) + "\n")
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n  Press ? or Esc to close\n")

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(b.String()))
}

func (m Model) renderJump() string {
	var b strings.Builder

	b.WriteString(styles.Highlight.Render("Jump to frame"))
	b.WriteString("\n\n")
	b.WriteString(m.jumpInput.View())
	b.WriteString("\n\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("0-%d  Enter:jump  Esc:cancel", m.engine.TotalFrames()-1)))

	content := lipgloss.NewStyle().
		Width(40).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.FocusedBorder.Render(content))
}

// Run starts the TUI application
func Run(engine *timeline.Engine, opts Options) error {
	styles.SetTheme(opts.Theme)
	model := NewModel(engine, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
