package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/terrain"
)

// WanderSystem moves animals: a heading that holds for a fixed number of
// frames, reflection off the shore and the playfield ends, and fleeing from
// a nearby player.
type WanderSystem struct {
	terrain *terrain.Model
	tuning  *prefabs.Tuning
	rng     *common.RNG

	script     *wanderScript
	scriptPath string
	scriptErr  string
}

func NewWanderSystem(model *terrain.Model, tuning *prefabs.Tuning, rng *common.RNG) *WanderSystem {
	return &WanderSystem{terrain: model, tuning: tuning, rng: rng}
}

// InvalidateScript drops the compiled wander script so the next re-roll
// reloads it.
func (s *WanderSystem) InvalidateScript() {
	s.script = nil
	s.scriptPath = ""
	s.scriptErr = ""
}

func (s *WanderSystem) Update(w *ecs.World) {
	if w == nil || !simulating(w) {
		return
	}

	tun := s.tuning.Animals
	limit := s.tuning.Bounds.LimitZ
	now := frame(w)

	player, hasPlayer := findPlayer(w)

	entities := w.Query(
		component.WandererComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	for _, e := range entities {
		wander, _ := ecs.Get(w, e, component.WandererComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		v, _ := ecs.Get(w, e, component.VelocityComponent)

		wander.Timer++
		if wander.Timer > tun.WanderFrames {
			v.VX, v.VZ = s.reroll(wander, t, v)
			wander.Timer = 0
		}

		t.X += v.VX
		t.Z += v.VZ

		ground := s.terrain.Query(t.X, t.Z)
		bounce(t, v, ground.HalfWidth-tun.Margin, limit)
		t.Y = ground.Height

		if !hasPlayer {
			continue
		}
		away := t.Planar().Sub(player.transform.Planar())
		if away.Length() >= tun.FleeRadius {
			continue
		}
		flee := cp.Vector{X: 1, Y: 0}
		if away.Length() > 0 {
			flee = away.Normalize()
		}
		flee = flee.Mult(tun.FleeSpeed)
		v.VX, v.VZ = flee.X, flee.Y
		// a flee heading must not carry the animal further off the island
		bounce(t, v, ground.HalfWidth-tun.Margin, limit)

		// one shared cadence for every animal in range
		if now%tun.ScoreEvery == 0 {
			addScore(w, tun.ScorePoints)
		}
	}
}

// bounce points a velocity component back inside when the position is past
// the lateral bound halfX or the longitudinal bound limitZ. A component
// already heading inside is left alone, so an animal that ends up outside a
// narrowing shoreline walks back instead of jittering in place. Past the
// bound this differs from a plain flip every frame, and it also bends a flee
// heading: an animal chased against the shore runs along it, not straight
// away from the player.
func bounce(t *component.Transform, v *component.Velocity, halfX, limitZ float64) {
	if (t.X < -halfX && v.VX < 0) || (t.X > halfX && v.VX > 0) {
		v.VX = -v.VX
	}
	if (t.Z < -limitZ && v.VZ < 0) || (t.Z > limitZ && v.VZ > 0) {
		v.VZ = -v.VZ
	}
}

func (s *WanderSystem) reroll(wander *component.Wanderer, t *component.Transform, v *component.Velocity) (float64, float64) {
	speed := s.tuning.Animals.WanderSpeed
	rx := s.rng.Float64()
	rz := s.rng.Float64()

	if rt := s.loadScript(); rt != nil {
		vx, vz, err := rt.run(wanderInput{
			Timer: wander.Timer,
			X:     t.X,
			Z:     t.Z,
			VX:    v.VX,
			VZ:    v.VZ,
			Speed: speed,
			RX:    rx,
			RZ:    rz,
		})
		if err == nil {
			return vx, vz
		}
		log.Printf("wander: script %s: %v", s.scriptPath, err)
	}

	return (rx*2 - 1) * speed, (rz*2 - 1) * speed
}

func (s *WanderSystem) loadScript() *wanderScript {
	path := s.tuning.Animals.Script
	if path == "" {
		return nil
	}
	if s.script != nil && s.scriptPath == path {
		return s.script
	}
	if s.scriptErr != "" && s.scriptPath == path {
		return nil
	}

	s.scriptPath = path
	rt, err := compileWanderScript(path)
	if err != nil {
		// remember the failure so a broken script is reported once
		s.scriptErr = err.Error()
		s.script = nil
		log.Printf("wander: load script %s: %v", path, err)
		return nil
	}
	s.scriptErr = ""
	s.script = rt
	return rt
}
