package system

import (
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
)

// ClockSystem advances the frame counter. It runs first so the first frame
// is numbered 1.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (c *ClockSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ClockComponent, func(_ ecs.Entity, clock *component.Clock) {
		clock.Frame++
	})
}
