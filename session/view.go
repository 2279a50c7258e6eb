package session

import (
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
)

// Snapshot accessors for frontends. They return copies; mutate through the
// world instead.

func (s *Session) Player() (component.Transform, component.Velocity) {
	var t component.Transform
	var v component.Velocity
	if p, ok := ecs.Get(s.World, s.player, component.TransformComponent); ok {
		t = *p
	}
	if p, ok := ecs.Get(s.World, s.player, component.VelocityComponent); ok {
		v = *p
	}
	return t, v
}

func (s *Session) Camera() component.Camera {
	if c, ok := ecs.Get(s.World, s.camera, component.CameraComponent); ok {
		return *c
	}
	return component.Camera{}
}

func (s *Session) Stats() component.Stats {
	if st, ok := ecs.Get(s.World, s.counter, component.StatsComponent); ok {
		return *st
	}
	return component.Stats{}
}

func (s *Session) Frame() int {
	if c, ok := ecs.Get(s.World, s.counter, component.ClockComponent); ok {
		return c.Frame
	}
	return 0
}

type TreeView struct {
	Transform component.Transform
	Tree      component.Tree
}

func (s *Session) Trees() []TreeView {
	var out []TreeView
	ecs.ForEach2(s.World, component.TreeComponent, component.TransformComponent, func(_ ecs.Entity, tr *component.Tree, t *component.Transform) {
		out = append(out, TreeView{Transform: *t, Tree: *tr})
	})
	return out
}

type AnimalView struct {
	Entity    ecs.Entity
	Transform component.Transform
	Velocity  component.Velocity
	Size      float64
}

func (s *Session) Animals() []AnimalView {
	var out []AnimalView
	for _, e := range s.World.Query(component.WandererComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind()) {
		wd, _ := ecs.Get(s.World, e, component.WandererComponent)
		t, _ := ecs.Get(s.World, e, component.TransformComponent)
		v, _ := ecs.Get(s.World, e, component.VelocityComponent)
		out = append(out, AnimalView{Entity: e, Transform: *t, Velocity: *v, Size: wd.Size})
	}
	return out
}
