package system

import (
	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/terrain"
)

// PlayerControllerSystem turns held directions into movement and keeps the
// player on the island.
type PlayerControllerSystem struct {
	terrain *terrain.Model
	tuning  *prefabs.Tuning
}

func NewPlayerControllerSystem(model *terrain.Model, tuning *prefabs.Tuning) *PlayerControllerSystem {
	return &PlayerControllerSystem{terrain: model, tuning: tuning}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || !simulating(w) {
		return
	}

	tun := p.tuning.Player
	limit := p.tuning.Bounds.LimitZ

	entities := w.Query(
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	for _, e := range entities {
		input, _ := ecs.Get(w, e, component.InputComponent)
		player, _ := ecs.Get(w, e, component.PlayerComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		v, _ := ecs.Get(w, e, component.VelocityComponent)

		impulse := player.Speed * tun.ImpulseScale
		if input.North {
			v.VZ -= impulse
		}
		if input.South {
			v.VZ += impulse
		}
		if input.West {
			v.VX -= impulse
		}
		if input.East {
			v.VX += impulse
		}

		v.VX *= tun.Friction
		v.VZ *= tun.Friction

		t.X += v.VX
		t.Z += v.VZ

		t.Z = common.Clamp(t.Z, -limit, limit)
		half := p.terrain.HalfWidth(t.Z)
		t.X = common.Clamp(t.X, -half+tun.Margin, half-tun.Margin)

		t.Y = p.terrain.Height(t.X, t.Z) + tun.EyeHeight
	}
}
