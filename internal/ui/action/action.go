// Package action carries requests from UI components up to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a request raised by a component, such as opening a link.
// ActionType names it for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that raised it.
type Msg struct {
	Source string // "newsletters", "gallery", "helpbindings", ...
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}

// OpenURL asks the app to open URL in the system browser.
type OpenURL struct {
	URL   string
	Label string
}

// ActionType implements Action.
func (OpenURL) ActionType() string { return "open_url" }

// Navigate asks the app to switch to the page at Path.
type Navigate struct {
	Path string
}

// ActionType implements Action.
func (Navigate) ActionType() string { return "navigate" }
