package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clubview/internal/ui/action"
)

// LinkOpenedMsg reports the outcome of opening a link outside the terminal.
type LinkOpenedMsg struct {
	URL   string
	Label string
	Err   error
}

// graphicsFlushedMsg clears app-level image commands once they have been
// written by a frame.
type graphicsFlushedMsg struct{ seq int }

// statusClearMsg removes a status message after statusTimeout.
type statusClearMsg struct{ status string }

const (
	graphicsFlushDelay = 100 * time.Millisecond
	statusTimeout      = 4 * time.Second
)

func openURLCmd(open func(string) error, a action.OpenURL) tea.Cmd {
	return func() tea.Msg {
		return LinkOpenedMsg{URL: a.URL, Label: a.Label, Err: open(a.URL)}
	}
}

func clearStatusCmd(status string) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{status: status}
	})
}
