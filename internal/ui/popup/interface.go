// Package popup renders modal boxes (help, notices) over the page view.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component owned by the app while it is shown.
type Popup interface {
	Init() tea.Cmd

	// Update handles a message while the popup has focus.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup body, without border or centering.
	View() string

	SetSize(width, height int)
}
