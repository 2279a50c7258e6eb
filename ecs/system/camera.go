package system

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/prefabs"
)

const (
	introRadiusStart = 15.0
	introRadiusEnd   = 100.0
	introHeightLow   = 5.0
	introHeightPeak  = 60.0
	introHeightEnd   = 75.0
	introShakeUntil  = 0.3

	introTiltStart = -0.1
	introTiltEnd   = -0.4
	introYawSwing  = 0.2
	followTilt     = -0.4
	followYaw      = 0.1
)

// CameraSystem plays the intro orbit once and then trails the player.
type CameraSystem struct {
	tuning *prefabs.Tuning
}

func NewCameraSystem(tuning *prefabs.Tuning) *CameraSystem {
	return &CameraSystem{tuning: tuning}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, cam, ok := ecs.Single(w, component.CameraComponent)
	if !ok {
		return
	}
	player, ok := findPlayer(w)
	if !ok {
		return
	}
	target := mgl64.Vec3{player.transform.X, player.transform.Y, player.transform.Z}

	switch cam.Mode {
	case component.CameraIntro:
		cs.intro(cam, target)
	case component.CameraFollow:
		cs.follow(cam, target)
	}

	if cam.Mode == component.CameraIntro {
		p := cam.Progress()
		cam.RotX = common.Lerp(introTiltStart, introTiltEnd, p)
		cam.RotY = math.Sin(p*math.Pi*2) * introYawSwing
	} else {
		cam.RotX = followTilt
		cam.RotY = followYaw
	}
}

func (cs *CameraSystem) intro(cam *component.Camera, player mgl64.Vec3) {
	cam.Timer++
	if cam.Timer >= cam.Duration {
		// the switching frame leaves the camera where it is
		cam.Mode = component.CameraFollow
		log.Printf("camera: intro finished after %d frames, following player", cam.Timer)
		return
	}

	progress := float64(cam.Timer) / float64(cam.Duration)
	ease := common.EaseOutCubic(progress)

	angle := progress * math.Pi * 2
	radius := common.Lerp(introRadiusStart, introRadiusEnd, ease)
	orbitX := player.X() + math.Cos(angle)*radius
	orbitZ := player.Z() + math.Sin(angle)*radius

	var height float64
	if h := progress * 2; h < 1 {
		height = common.Lerp(introHeightLow, introHeightPeak, h)
	} else {
		height = common.Lerp(introHeightPeak, introHeightEnd, h-1)
	}

	smooth := cs.tuning.Camera.IntroSmooth
	pos := cam.Position
	pos[0] = common.Lerp(pos[0], orbitX, smooth)
	pos[1] = common.Lerp(pos[1], player.Y()-height, smooth)
	pos[2] = common.Lerp(pos[2], orbitZ, smooth)

	if progress < introShakeUntil {
		pos[0] += math.Sin(float64(cam.Timer)*0.5) * 1.5
		pos[1] += math.Cos(float64(cam.Timer)*0.3) * 0.8
	}
	cam.Position = pos
}

func (cs *CameraSystem) follow(cam *component.Camera, player mgl64.Vec3) {
	tun := cs.tuning.Camera
	target := player.Add(mgl64.Vec3{0, tun.FollowOffsetY, tun.FollowOffsetZ})
	smooth := tun.FollowSmooth
	for i := range cam.Position {
		cam.Position[i] = common.Lerp(cam.Position[i], target[i], smooth)
	}
}
