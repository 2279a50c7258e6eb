package entity

import (
	"fmt"

	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/prefabs"
)

// NewCamera spawns the camera at the origin in intro mode. A zero-length
// intro still runs one switching frame.
func NewCamera(w *ecs.World, tun prefabs.CameraTuning) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraComponent, component.Camera{
		Mode:     component.CameraIntro,
		Duration: tun.IntroFrames,
		RotX:     -0.1,
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
