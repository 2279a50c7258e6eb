package system

import (
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
)

// playerState bundles the player's components.
type playerState struct {
	entity    ecs.Entity
	transform *component.Transform
	velocity  *component.Velocity
	player    *component.Player
}

func findPlayer(w *ecs.World) (playerState, bool) {
	e, p, ok := ecs.Single(w, component.PlayerComponent)
	if !ok {
		return playerState{}, false
	}
	t, okT := ecs.Get(w, e, component.TransformComponent)
	v, okV := ecs.Get(w, e, component.VelocityComponent)
	if !okT || !okV {
		return playerState{}, false
	}
	return playerState{entity: e, transform: t, velocity: v, player: p}, true
}

func stats(w *ecs.World) *component.Stats {
	_, s, ok := ecs.Single(w, component.StatsComponent)
	if !ok {
		return nil
	}
	return s
}

func frame(w *ecs.World) int {
	_, c, ok := ecs.Single(w, component.ClockComponent)
	if !ok {
		return 0
	}
	return c.Frame
}

// simulating reports whether entities should move this frame. Nothing moves
// while the intro camera is playing.
func simulating(w *ecs.World) bool {
	_, cam, ok := ecs.Single(w, component.CameraComponent)
	if !ok {
		return true
	}
	return cam.Mode == component.CameraFollow
}

func addScore(w *ecs.World, points int) {
	if s := stats(w); s != nil {
		s.Score += points
	}
}
