package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"studysaga/internal/buff"
	"studysaga/internal/engine"
	"studysaga/internal/ui"
)

type focusModel struct {
	ctx context.Context
	svc *engine.Service

	total     time.Duration
	remaining time.Duration
	paused    bool
	finished  bool

	bar   progress.Model
	width int

	result *engine.SessionResult
	err    error

	lastLog string
}

type tickMsg time.Time

type sessionDoneMsg struct {
	res *engine.SessionResult
	err error
}

func newFocusModel(ctx context.Context, svc *engine.Service, minutes int) focusModel {
	d := time.Duration(minutes) * time.Minute
	return focusModel{
		ctx:       ctx,
		svc:       svc,
		total:     d,
		remaining: d,
		bar:       progress.New(progress.WithDefaultGradient()),
		lastLog:   "Focus started. Stay with it.",
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m focusModel) Init() tea.Cmd {
	return tickCmd()
}

func (m focusModel) awardCmd() tea.Cmd {
	minutes := int(m.total / time.Minute)
	return func() tea.Msg {
		res, err := m.svc.CompleteFocusSession(m.ctx, minutes, time.Now())
		return sessionDoneMsg{res: res, err: err}
	}
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 8
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case tickMsg:
		if m.finished {
			return m, nil
		}
		if m.paused {
			return m, tickCmd()
		}
		m.remaining -= time.Second
		if m.remaining <= 0 {
			m.remaining = 0
			m.finished = true
			m.lastLog = "Session complete, tallying XP…"
			return m, m.awardCmd()
		}
		return m, tickCmd()

	case sessionDoneMsg:
		m.result = msg.res
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Abandoning the session awards nothing.
			m.lastLog = "Session abandoned."
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
			if m.paused {
				m.lastLog = "Paused. Press p to resume."
			} else {
				m.lastLog = "Back at it."
			}
			return m, nil
		}
	}
	return m, nil
}

func (m focusModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconFocus, "Focus Session"))
	b.WriteString("\n\n")

	elapsed := m.total - m.remaining
	ratio := 0.0
	if m.total > 0 {
		ratio = float64(elapsed) / float64(m.total)
	}

	mins := int(m.remaining / time.Minute)
	secs := int(m.remaining/time.Second) % 60
	clock := fmt.Sprintf("%02d:%02d", mins, secs)
	if m.paused {
		clock += " " + ui.Warn.Render("(paused)")
	}
	b.WriteString("  " + ui.H2.Render(clock) + "\n\n")
	b.WriteString("  " + m.bar.ViewAs(ratio) + "\n\n")

	if active := m.svc.Catalog().Active(time.Now()); len(active) > 0 {
		b.WriteString("  " + ui.Gold.Render("Active buffs:") + " " + buffLine(active) + "\n\n")
	}

	b.WriteString(ui.Muted.Render("  p: pause/resume · q: abandon") + "\n")
	b.WriteString("\n" + ui.Dim.Render(m.lastLog) + "\n")
	return b.String()
}

func buffLine(buffs []buff.Buff) string {
	parts := make([]string, 0, len(buffs))
	for _, b := range buffs {
		parts = append(parts, fmt.Sprintf("%s %s ×%.2g", b.Icon, b.Title, b.XPMultiplier))
	}
	return strings.Join(parts, "  ")
}
