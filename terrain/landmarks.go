package terrain

// Landmark is a flat block marking a named place on the island. Center is
// the middle of the block; Size is its full extent on each axis.
type Landmark struct {
	Name   string
	Center [3]float64
	Size   [3]float64
}

var Landmarks = []Landmark{
	{Name: "Central Park", Center: [3]float64{0, 5, -100}, Size: [3]float64{80, 3, 150}},
	{Name: "Washington Heights", Center: [3]float64{0, 12, 400}, Size: [3]float64{60, 8, 80}},
	{Name: "Battery Park", Center: [3]float64{0, 2, 580}, Size: [3]float64{30, 2, 40}},
}

// Top returns the corners of the landmark's upper face, walking around the
// rim. Y grows downward, so the upper face sits at the smaller y.
func (l Landmark) Top() [4][3]float64 {
	hx, hy, hz := l.Size[0]/2, l.Size[1]/2, l.Size[2]/2
	cx, cy, cz := l.Center[0], l.Center[1]-hy, l.Center[2]
	return [4][3]float64{
		{cx - hx, cy, cz - hz},
		{cx + hx, cy, cz - hz},
		{cx + hx, cy, cz + hz},
		{cx - hx, cy, cz + hz},
	}
}
