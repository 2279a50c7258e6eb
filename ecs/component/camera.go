package component

import "github.com/go-gl/mathgl/mgl64"

type CameraMode int

const (
	CameraIntro CameraMode = iota
	CameraFollow
)

func (m CameraMode) String() string {
	switch m {
	case CameraIntro:
		return "intro"
	case CameraFollow:
		return "follow"
	default:
		return "unknown"
	}
}

// Camera is the viewpoint. Timer counts intro frames; it stops advancing once
// the camera is in follow mode.
type Camera struct {
	Position mgl64.Vec3
	Mode     CameraMode
	Timer    int
	Duration int

	// view rotation derived each frame
	RotX float64
	RotY float64
}

// View returns the world-to-view transform: tilt, then yaw, then move the
// world so the camera sits at the origin.
func (c Camera) View() mgl64.Mat4 {
	rot := mgl64.HomogRotate3DX(c.RotX).Mul4(mgl64.HomogRotate3DY(c.RotY))
	return rot.Mul4(mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

// Progress is the fraction of the intro elapsed, 1 once following.
func (c Camera) Progress() float64 {
	if c.Mode != CameraIntro || c.Duration <= 0 {
		return 1
	}
	return float64(c.Timer) / float64(c.Duration)
}

var CameraComponent = NewComponent[Camera]()
