package system

import (
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/prefabs"
)

// ActionSystem scores discrete presses: a jump, and gathering from a nearby
// tree or observing a nearby animal.
type ActionSystem struct {
	tuning *prefabs.Tuning
}

func NewActionSystem(tuning *prefabs.Tuning) *ActionSystem {
	return &ActionSystem{tuning: tuning}
}

func (a *ActionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Take(component.ActionEventType) {
		action, ok := evt.Data.(component.Action)
		if !ok {
			continue
		}
		switch action {
		case component.ActionJump:
			addScore(w, a.tuning.Scoring.JumpPoints)
		case component.ActionGather:
			a.gather(w)
		}
	}
}

// gather awards the first tree in range and, separately, the first animal in
// range. Both can score on one press.
func (a *ActionSystem) gather(w *ecs.World) {
	player, ok := findPlayer(w)
	if !ok {
		return
	}
	at := player.transform.Planar()
	tun := a.tuning.Scoring

	for _, e := range w.Query(component.TreeComponent.Kind(), component.TransformComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		if t.Planar().Distance(at) < tun.TreeRadius {
			addScore(w, tun.TreePoints)
			break
		}
	}

	for _, e := range w.Query(component.WandererComponent.Kind(), component.TransformComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		if t.Planar().Distance(at) < tun.AnimalRadius {
			addScore(w, tun.AnimalPoints)
			break
		}
	}
}
