package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is a bubbletea-style model whose Update returns its own type.
type Component[T any] interface {
	Update(msg tea.Msg) (T, tea.Cmd)
	View() string
}

// Harness drives a component in tests: it sends messages, keeps the
// updated model and collects the returned commands.
type Harness[T Component[T]] struct {
	model T
	cmds  []tea.Cmd
}

// NewHarness wraps model.
func NewHarness[T Component[T]](model T) *Harness[T] {
	return &Harness[T]{model: model}
}

// Model returns the current model.
func (h *Harness[T]) Model() T {
	return h.model
}

// View returns the current model's view.
func (h *Harness[T]) View() string {
	return h.model.View()
}

// PlainView returns the view without ANSI sequences.
func (h *Harness[T]) PlainView() string {
	return StripANSI(h.model.View())
}

// Send delivers msg and returns the resulting command.
func (h *Harness[T]) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends a key given in tea.KeyMsg.String() form, e.g. "esc",
// "left", "ctrl+c" or "G".
func (h *Harness[T]) SendKey(key string) tea.Cmd {
	return h.Send(Key(key))
}

// SendKeys sends each key in turn.
func (h *Harness[T]) SendKeys(keys ...string) {
	for _, k := range keys {
		h.SendKey(k)
	}
}

// Commands returns the commands collected so far.
func (h *Harness[T]) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands forgets collected commands.
func (h *Harness[T]) ClearCommands() {
	h.cmds = nil
}

// Run executes cmd and sends every resulting message back to the model,
// expanding batches. It returns the messages delivered.
func (h *Harness[T]) Run(cmd tea.Cmd) []tea.Msg {
	var delivered []tea.Msg
	for _, msg := range Collect(cmd) {
		delivered = append(delivered, msg)
		h.Send(msg)
	}
	return delivered
}

// Collect executes cmd and returns its messages, flattening tea.Batch and
// tea.Sequence results. Nil commands and nil messages are skipped.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, Collect(c)...)
		}
		return out
	default:
		if seq, ok := asSequence(msg); ok {
			var out []tea.Msg
			for _, c := range seq {
				out = append(out, Collect(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	}
}

// asSequence unpacks tea.Sequence results, whose message type is not
// exported but is a slice of commands.
func asSequence(msg tea.Msg) ([]tea.Cmd, bool) {
	if cmds, ok := msg.([]tea.Cmd); ok {
		return cmds, true
	}
	return nil, false
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+u":    tea.KeyCtrlU,
	"f1":        tea.KeyF1,
	"f2":        tea.KeyF2,
	"f3":        tea.KeyF3,
	"f4":        tea.KeyF4,
	"f5":        tea.KeyF5,
	"f6":        tea.KeyF6,
	"f7":        tea.KeyF7,
	" ":         tea.KeySpace,
}

// Key builds the tea.KeyMsg whose String() is key.
func Key(key string) tea.KeyMsg {
	if t, ok := namedKeys[strings.ToLower(key)]; ok && (len(key) > 1 || key == " ") {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}
