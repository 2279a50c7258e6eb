// Command ny1609-term plays NY1609 as a top-down map in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/session"
)

type Game struct {
	screen  tcell.Screen
	session *session.Session
	keys    *heldKeys
	view    viewport
}

func NewGame(seed int64) (*Game, error) {
	tuning, err := prefabs.LoadTuning(prefabs.TuningFile)
	if err != nil {
		return nil, err
	}

	keys := newHeldKeys(holdFrames)
	sess, err := session.New(session.Options{
		Seed:   seed,
		Tuning: tuning,
		Input:  keys,
	})
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	g := &Game{screen: screen, session: sess, keys: keys}
	g.view.resize(screen.Size())
	return g, nil
}

// handleInput returns false when the player quits.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return false
		}
		g.keys.handle(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.view.resize(g.screen.Size())
		g.screen.Sync()
	}
	return true
}

func (g *Game) run() {
	rate := g.session.Tuning().FrameRate
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go pumpEvents(g.screen.PollEvent, eventChan)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.session.Step()
			g.keys.tick()
			g.draw()
		}
	}
}

// pumpEvents forwards events until poll returns nil, which tcell does once
// the screen is finalized, then closes out.
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		out <- ev
	}
}

func main() {
	seed := flag.Int64("seed", 0, "terrain and spawn seed (0 picks one from the clock)")
	flag.Parse()
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	game, err := NewGame(*seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.screen.Fini()

	game.run()
}
