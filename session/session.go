// Package session wires the world, its systems and the tuning into one
// simulation context. A Session is single-threaded: call every method from
// the goroutine that runs the frame loop.
package session

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/ecs/entity"
	"github.com/milk9111/ny1609/ecs/system"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/terrain"
)

type Options struct {
	Seed   int64
	Tuning prefabs.Tuning
	Input  system.InputSource

	// Field overrides the seeded terrain noise.
	Field terrain.Field
	// Now is the wall clock for the ambient score; time.Now when nil.
	Now func() time.Time
}

type Session struct {
	World   *ecs.World
	Terrain *terrain.Model

	tuning *prefabs.Tuning
	rng    *common.RNG
	wander *system.WanderSystem

	player  ecs.Entity
	camera  ecs.Entity
	counter ecs.Entity
}

// New builds a session populated with the player, trees, animals, the camera
// and the session counters, in that order.
func New(opts Options) (*Session, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	tun := opts.Tuning

	model := terrain.New(opts.Seed)
	if opts.Field != nil {
		model = terrain.NewWithField(opts.Field)
	}

	input := opts.Input
	if input == nil {
		input = &system.ScriptedInput{}
	}

	s := &Session{
		World:   ecs.NewWorld(),
		Terrain: model,
		tuning:  &tun,
		rng:     common.NewRNG(opts.Seed),
	}

	if err := s.spawn(); err != nil {
		return nil, err
	}

	s.wander = system.NewWanderSystem(model, s.tuning, s.rng)
	s.World.AddSystem(system.NewClockSystem())
	s.World.AddSystem(system.NewInputSystem(input))
	s.World.AddSystem(system.NewActionSystem(s.tuning))
	s.World.AddSystem(system.NewAmbientScoreSystem(s.tuning, opts.Now))
	s.World.AddSystem(system.NewPlayerControllerSystem(model, s.tuning))
	s.World.AddSystem(s.wander)
	s.World.AddSystem(system.NewCameraSystem(s.tuning))

	return s, nil
}

func (s *Session) spawn() error {
	w := s.World
	tun := s.tuning

	player, err := entity.NewPlayer(w, tun.Player, s.Terrain)
	if err != nil {
		return err
	}
	s.player = player

	for i := 0; i < tun.Trees.Count; i++ {
		if _, err := entity.NewTree(w, tun.Trees, s.Terrain, s.rng); err != nil {
			return err
		}
	}
	for i := 0; i < tun.Animals.Count; i++ {
		if _, err := entity.NewAnimal(w, tun.Animals, s.rng); err != nil {
			return err
		}
	}

	if s.camera, err = entity.NewCamera(w, tun.Camera); err != nil {
		return err
	}
	if s.counter, err = entity.NewSessionCounters(w, tun.Scoring); err != nil {
		return err
	}
	return nil
}

// Step advances the simulation by one frame.
func (s *Session) Step() {
	s.World.Update()
}

func (s *Session) Tuning() prefabs.Tuning {
	return *s.tuning
}

// ApplyTuning swaps in new constants between frames. Spawn counts only
// take effect in a new session; the player's speed and, while the intro is
// playing, its length update immediately.
func (s *Session) ApplyTuning(t prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	*s.tuning = t
	if p, ok := ecs.Get(s.World, s.player, component.PlayerComponent); ok {
		p.Speed = t.Player.Speed
	}
	// a running intro picks up the new length; a finished one stays finished
	if c, ok := ecs.Get(s.World, s.camera, component.CameraComponent); ok && c.Mode == component.CameraIntro {
		c.Duration = t.Camera.IntroFrames
	}
	s.wander.InvalidateScript()
	return nil
}

// HandleFileChange reacts to a watcher notification. Tuning documents are
// re-read and applied; scripts only need their cache dropped. A bad document
// keeps the previous tuning.
func (s *Session) HandleFileChange(path, tuningName string) {
	switch filepath.Ext(path) {
	case ".tengo":
		s.wander.InvalidateScript()
		log.Printf("session: script %s changed, reloading", path)
	default:
		if tuningName == "" {
			tuningName = prefabs.TuningFile
		}
		if filepath.Base(path) != filepath.Base(tuningName) {
			return
		}
		next, err := prefabs.LoadTuning(tuningName)
		if err != nil {
			log.Printf("session: reload %s: %v (keeping previous tuning)", path, err)
			return
		}
		if err := s.ApplyTuning(next); err != nil {
			log.Printf("session: apply %s: %v (keeping previous tuning)", path, err)
			return
		}
		log.Printf("session: reloaded %s", path)
	}
}
