package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chromadrop/engine"
	"chromadrop/types"
)

// Shell connects the tview widgets to the frame loop. Key events are queued
// from the UI goroutine and drained by PollInputs; Render hands the latest
// snapshot back to the UI goroutine.
type Shell struct {
	app   *tview.Application
	board *BoardView
	panel *GameInfoPanel
	hint  *tview.TextView

	mu      sync.Mutex
	pending []engine.Input
	latest  types.Snapshot
	queued  bool
}

func NewShell(app *tview.Application, board *BoardView, panel *GameInfoPanel, hint *tview.TextView) *Shell {
	return &Shell{
		app:   app,
		board: board,
		panel: panel,
		hint:  hint,
	}
}

// Push queues an input for the next frame.
func (s *Shell) Push(in engine.Input) {
	s.mu.Lock()
	s.pending = append(s.pending, in)
	s.mu.Unlock()
}

// PollInputs implements engine.Frontend.
func (s *Shell) PollInputs() []engine.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil
	}
	inputs := s.pending
	s.pending = nil
	return inputs
}

// Render implements engine.Frontend. Frames that arrive before the UI goroutine
// has drawn the previous one replace it.
func (s *Shell) Render(snapshot types.Snapshot) {
	s.mu.Lock()
	s.latest = snapshot
	if s.queued {
		s.mu.Unlock()
		return
	}
	s.queued = true
	s.mu.Unlock()

	// QueueUpdateDraw blocks until the event loop picks it up, which never
	// happens once the application has stopped.
	go s.app.QueueUpdateDraw(s.flush)
}

func (s *Shell) flush() {
	s.mu.Lock()
	snapshot := s.latest
	s.queued = false
	s.mu.Unlock()
	s.Show(snapshot)
}

// Show updates the widgets directly. Call it from the UI goroutine.
func (s *Shell) Show(snapshot types.Snapshot) {
	s.board.SetSnapshot(snapshot)
	s.panel.SetSnapshot(snapshot)
	s.refreshHint(snapshot)
}

// Reset drops inputs left over from a previous game.
func (s *Shell) Reset() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

func (s *Shell) refreshHint(snapshot types.Snapshot) {
	if s.hint == nil {
		return
	}
	status := fmt.Sprintf("[white::b]%d[-:-:-] pts  [dimgray]|[-]  %ds left", snapshot.Score, snapshot.Remaining)
	if snapshot.Paused() {
		status = "[yellow::b]PAUSED[-:-:-]  [dimgray]|[-]  " + status
	}
	s.hint.SetText(status + "\n[dimgray]←/→ h/l move  ↓ j drop  space/p pause  q/Esc quit[-]")
}

// InputCapture turns key events into queued inputs. Use it on the board box.
func (s *Shell) InputCapture(event *tcell.EventKey) *tcell.EventKey {
	if in, ok := KeyInput(event); ok {
		s.Push(in)
		return nil
	}
	return event
}

// KeyInput maps a key event to a game input.
func KeyInput(event *tcell.EventKey) (engine.Input, bool) {
	switch event.Key() {
	case tcell.KeyLeft:
		return engine.InputLeft, true
	case tcell.KeyRight:
		return engine.InputRight, true
	case tcell.KeyDown:
		return engine.InputDown, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.InputQuit, true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			return engine.InputLeft, true
		case 'l':
			return engine.InputRight, true
		case 'j':
			return engine.InputDown, true
		case ' ', 'p':
			return engine.InputPause, true
		case 'q':
			return engine.InputQuit, true
		}
	}
	return 0, false
}
