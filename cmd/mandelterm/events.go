package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/marben/mandel_explorer/input"
)

// tickInput collects terminal events between two ticks. Terminals report
// key presses and repeats but no releases, so a key seen during the tick
// counts as held for that tick.
type tickInput struct {
	state input.State
	quit  bool

	// last pointer position in cells, kept across ticks
	cellX, cellY int
}

func (t *tickInput) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventMouse:
		t.cellX, t.cellY = ev.Position()
		btn := ev.Buttons()
		if btn&tcell.WheelUp != 0 {
			t.state.Wheel++
		}
		if btn&tcell.WheelDown != 0 {
			t.state.Wheel--
		}
	}
}

func (t *tickInput) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyUp:
		t.state.Held |= input.Up
	case tcell.KeyDown:
		t.state.Held |= input.Down
	case tcell.KeyLeft:
		t.state.Held |= input.Left
	case tcell.KeyRight:
		t.state.Held |= input.Right
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			t.quit = true
		case r == 'w':
			t.state.Held |= input.Up
		case r == 's':
			t.state.Held |= input.Down
		case r == 'a':
			t.state.Held |= input.Left
		case r == 'd':
			t.state.Held |= input.Right
		case r == 'r':
			t.state.Reset = true
		case r >= '1' && r <= '9':
			t.state.Landmark = int(r - '0')
		}
	}
}

// take returns the state for this tick, with the pointer mapped to buffer
// pixels, and starts a new tick.
func (t *tickInput) take(g grid) input.State {
	s := t.state
	s.PointerX, s.PointerY = g.bufferPoint(t.cellX, t.cellY)
	t.state = input.State{}
	return s
}
