package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/ny1609/ecs/component"
)

// Terminals report presses and key repeats but never releases, so a
// direction counts as held for a few frames after its last event.
const holdFrames = 8

type direction int

const (
	north direction = iota
	south
	west
	east
	directionCount
)

type heldKeys struct {
	hold    int
	left    [directionCount]int
	pending []component.Action
}

func newHeldKeys(hold int) *heldKeys {
	return &heldKeys{hold: hold}
}

func (h *heldKeys) handle(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyUp:
		h.press(north)
	case tcell.KeyDown:
		h.press(south)
	case tcell.KeyLeft:
		h.press(west)
	case tcell.KeyRight:
		h.press(east)
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			h.press(north)
		case 's', 'S':
			h.press(south)
		case 'a', 'A':
			h.press(west)
		case 'd', 'D':
			h.press(east)
		case ' ':
			h.pending = append(h.pending, component.ActionJump)
		case 'e', 'E':
			h.pending = append(h.pending, component.ActionGather)
		}
	}
}

func (h *heldKeys) press(d direction) {
	h.left[d] = h.hold
}

// tick ages held directions by one frame.
func (h *heldKeys) tick() {
	for i := range h.left {
		if h.left[i] > 0 {
			h.left[i]--
		}
	}
}

func (h *heldKeys) Directions() component.Input {
	return component.Input{
		North: h.left[north] > 0,
		South: h.left[south] > 0,
		West:  h.left[west] > 0,
		East:  h.left[east] > 0,
	}
}

func (h *heldKeys) Actions() []component.Action {
	out := h.pending
	h.pending = nil
	return out
}
