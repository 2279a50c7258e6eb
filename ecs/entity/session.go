package entity

import (
	"fmt"

	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/prefabs"
)

// NewSessionCounters spawns the entity that carries score, health and the
// frame clock.
func NewSessionCounters(w *ecs.World, tun prefabs.ScoringTuning) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.StatsComponent, component.Stats{Health: tun.Health}); err != nil {
		return ecs.Entity{}, fmt.Errorf("session: add stats: %w", err)
	}
	if err := ecs.Add(w, e, component.ClockComponent, component.Clock{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("session: add clock: %w", err)
	}
	return e, nil
}
