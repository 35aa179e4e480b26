// mandelterm explores the Mandelbrot set inside a truecolor terminal.
// Each cell shows two pixels; the image is rendered at twice the terminal
// resolution and filtered down.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	mandel "github.com/marben/mandel_explorer"
	"github.com/marben/mandel_explorer/explorer"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

// run keeps the default silent logger: stderr is the terminal we draw on.
func run() error {
	cfg := mandel.DefaultConfig
	session, err := explorer.New(cfg)
	if err != nil {
		return fmt.Errorf("explorer.New: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen.Init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	runLoop(session, screen, cfg.TPS)
	return nil
}

func runLoop(session *explorer.Session, screen tcell.Screen, tps int) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v := newView(screen)
	session.Resize(v.grid.bufferSize())

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	var in tickInput
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				v.resize()
				session.Resize(v.grid.bufferSize())
				screen.Sync()
			}
			in.handle(ev)
			if in.quit {
				return
			}
		case <-ticker.C:
			frame := session.Step(in.take(v.grid))
			v.draw(frame, statusLine(session.Viewport(), session.Stats().Duration))
		}
	}
}
