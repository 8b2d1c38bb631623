package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"studysaga/internal/engine"
)

// RunFocus runs the focus-timer TUI for the given session length and
// returns the session result, or nil when the session was abandoned.
func RunFocus(ctx context.Context, svc *engine.Service, minutes int, out io.Writer) (*engine.SessionResult, error) {
	m := newFocusModel(ctx, svc, minutes)
	p := tea.NewProgram(m, tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(focusModel)
	if !ok {
		return nil, nil
	}
	if fm.err != nil {
		return nil, fm.err
	}
	return fm.result, nil
}
