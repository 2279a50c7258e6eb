package entity

import (
	"fmt"

	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/terrain"
)

// NewPlayer spawns Aiyana at the tuning's start point, standing on the
// ground.
func NewPlayer(w *ecs.World, tun prefabs.PlayerTuning, model *terrain.Model) (ecs.Entity, error) {
	return NewPlayerAt(w, tun, model, tun.StartX, tun.StartZ)
}

func NewPlayerAt(w *ecs.World, tun prefabs.PlayerTuning, model *terrain.Model, x, z float64) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlayerComponent, component.Player{Speed: tun.Speed, Size: tun.Size}); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add input: %w", err)
	}
	t := component.Transform{X: x, Z: z, Y: model.Height(x, z) + tun.EyeHeight}
	if err := ecs.Add(w, e, component.TransformComponent, t); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, component.Velocity{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add velocity: %w", err)
	}
	return e, nil
}
