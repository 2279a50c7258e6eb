package component

import "github.com/jakecoffman/cp"

// Transform is a world position. X is lateral (west negative), Z is
// longitudinal (north negative) and Y is vertical with down positive, the
// screen convention the renderer uses.
type Transform struct {
	X float64
	Y float64
	Z float64
}

// Planar projects the position onto the ground plane as (x, z).
func (t Transform) Planar() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Z}
}

var TransformComponent = NewComponent[Transform]()

// Velocity is per-frame displacement.
type Velocity struct {
	VX float64
	VY float64
	VZ float64
}

var VelocityComponent = NewComponent[Velocity]()
