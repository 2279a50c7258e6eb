package system

import (
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
)

// InputSource is whatever the frontend reads keys from. Directions is the
// held state right now; Actions returns the discrete presses since the last
// call, each press exactly once.
type InputSource interface {
	Directions() component.Input
	Actions() []component.Action
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	dirs := i.source.Directions()
	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		*input = dirs
	})

	for _, a := range i.source.Actions() {
		w.Events().Push(ecs.Event{Type: component.ActionEventType, Data: a})
	}
}

// ScriptedInput is an InputSource driven by code: tests, replays and the
// terminal frontend set its fields directly.
type ScriptedInput struct {
	Held    component.Input
	pending []component.Action
}

func (s *ScriptedInput) Directions() component.Input {
	return s.Held
}

func (s *ScriptedInput) Actions() []component.Action {
	out := s.pending
	s.pending = nil
	return out
}

// Press queues a discrete action for the next frame.
func (s *ScriptedInput) Press(a component.Action) {
	s.pending = append(s.pending, a)
}
