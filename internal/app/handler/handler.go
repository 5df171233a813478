// Package handler lets key handling be split into small functions tried in
// order: overlays first, then global keys, then playback, then the list.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is what a key handler did with a key.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key on to the next handler.
var NotHandled = Result{}

// HandledNoCmd consumes the key without a follow-up command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a key.
type Handler func() Result

// Chain runs handlers in order until one handles the key.
func Chain(handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
