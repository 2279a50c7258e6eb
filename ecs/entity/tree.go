package entity

import (
	"fmt"

	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/terrain"
)

func NewTree(w *ecs.World, tun prefabs.TreeTuning, model *terrain.Model, rng *common.RNG) (ecs.Entity, error) {
	z := rng.Range(terrain.MinZ, terrain.MaxZ)
	half := terrain.HalfWidth(z)
	x := rng.Range(-half, half)
	tree := component.Tree{
		Height: rng.Range(tun.HeightMin, tun.HeightMax),
		Radius: rng.Range(tun.RadiusMin, tun.RadiusMax),
	}
	return NewTreeAt(w, x, z, model.Height(x, z), tree)
}

func NewTreeAt(w *ecs.World, x, z, y float64, tree component.Tree) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TreeComponent, tree); err != nil {
		return ecs.Entity{}, fmt.Errorf("tree: add tree: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y, Z: z}); err != nil {
		return ecs.Entity{}, fmt.Errorf("tree: add transform: %w", err)
	}
	return e, nil
}
