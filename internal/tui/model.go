package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ghostscrub/internal/palette"
	"ghostscrub/internal/scrub"
)

// Model renders live walk progress from a ProgressUpdate channel. The walk
// itself stays sequential; this is a display-only consumer.
type Model struct {
	updates     <-chan scrub.ProgressUpdate
	started     time.Time
	processed   int
	skipped     int
	errors      int
	changes     int
	lastMessage string
	quitting    bool
}

type doneMsg struct{}

type updateMsg scrub.ProgressUpdate

func NewModel(updates <-chan scrub.ProgressUpdate) Model {
	return Model{updates: updates, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.processed += msg.ProcessedDelta
		m.skipped += msg.SkippedDelta
		m.errors += msg.ErrorDelta
		m.changes += msg.ChangesDelta
		if msg.Message != "" {
			m.lastMessage = msg.Message
		}
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	elapsed := time.Since(m.started).Round(time.Millisecond)

	errStyle := dimStyle
	if m.errors > 0 {
		errStyle = dangerStyle
	}

	lines := []string{
		titleStyle.Render("ghostscrub 👻"),
		labelStyle.Render(fmt.Sprintf("Files: %d processed, %d skipped", m.processed, m.skipped)) +
			errStyle.Render(fmt.Sprintf("  errors:%d", m.errors)),
		labelStyle.Render(fmt.Sprintf("Invisible characters found: %d", m.changes)),
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
	}
	if m.lastMessage != "" {
		lines = append(lines, dimStyle.Render(m.lastMessage))
	}

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan scrub.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

// MessageWriter adapts the processor's per-file output lines into progress
// updates, so they surface inside the running UI instead of corrupting it.
// Once done is closed the lines are dropped; the walk must not stall on a
// UI that already quit.
type MessageWriter struct {
	updates chan<- scrub.ProgressUpdate
	done    <-chan struct{}
}

func NewMessageWriter(updates chan<- scrub.ProgressUpdate, done <-chan struct{}) *MessageWriter {
	return &MessageWriter{updates: updates, done: done}
}

func (w *MessageWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line == "" {
			continue
		}
		select {
		case w.updates <- scrub.ProgressUpdate{Message: line}:
		case <-w.done:
			return len(p), nil
		}
	}
	return len(p), nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(palette.ColorAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(palette.ColorInk)
	dimStyle    = lipgloss.NewStyle().Foreground(palette.ColorDim)
	dangerStyle = lipgloss.NewStyle().Foreground(palette.ColorDanger)
)
