package entity

import (
	"fmt"

	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/terrain"
)

// NewAnimal spawns a wanderer at a random point on the island with a random
// starting drift.
func NewAnimal(w *ecs.World, tun prefabs.AnimalTuning, rng *common.RNG) (ecs.Entity, error) {
	z := rng.Range(terrain.MinZ, terrain.MaxZ)
	half := terrain.HalfWidth(z)
	x := rng.Range(-half, half)
	vx := rng.Range(-tun.InitialSpeed, tun.InitialSpeed)
	vz := rng.Range(-tun.InitialSpeed, tun.InitialSpeed)
	size := rng.Range(tun.SizeMin, tun.SizeMax)
	return NewAnimalAt(w, x, z, component.Velocity{VX: vx, VZ: vz}, size)
}

func NewAnimalAt(w *ecs.World, x, z float64, v component.Velocity, size float64) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.WandererComponent, component.Wanderer{Size: size}); err != nil {
		return ecs.Entity{}, fmt.Errorf("animal: add wanderer: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Z: z}); err != nil {
		return ecs.Entity{}, fmt.Errorf("animal: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, v); err != nil {
		return ecs.Entity{}, fmt.Errorf("animal: add velocity: %w", err)
	}
	return e, nil
}
