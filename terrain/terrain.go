// Package terrain describes the shape of the island: how wide it is at each
// point along its long axis and how high the ground sits.
package terrain

import (
	"math"
)

const (
	// MinZ and MaxZ bound the playfield along the long (north/south) axis.
	// North is negative z.
	MinZ   = -600.0
	MaxZ   = 600.0
	Length = MaxZ - MinZ

	// DefaultWidth is used past the last band threshold.
	DefaultWidth = 75.0
	DefaultName  = "Spuyten Duyvil"

	noiseScale     = 0.01
	heightAmp      = 20.0
	heightBaseline = -10.0
)

// Band is one step of the width table. A band applies while the normalized
// coordinate is strictly less than Threshold.
type Band struct {
	Threshold float64
	Width     float64
	Name      string
}

// Bands is ordered by Threshold.
var Bands = []Band{
	{0.05, 45, "Battery Park"},
	{0.10, 65, "Financial District"},
	{0.15, 85, "South Street Seaport"},
	{0.20, 95, "Brooklyn Bridge"},
	{0.25, 105, "Lower East Side"},
	{0.30, 115, "Chinatown"},
	{0.35, 125, "SoHo"},
	{0.40, 135, "Greenwich Village"},
	{0.45, 145, "Chelsea"},
	{0.50, 155, "Midtown South"},
	{0.55, 165, "Times Square"},
	{0.60, 160, "Central Park South"},
	{0.65, 155, "Central Park"},
	{0.70, 150, "Upper West Side"},
	{0.75, 140, "Harlem"},
	{0.80, 130, "Upper Harlem"},
	{0.85, 120, "Washington Heights"},
	{0.90, 110, "Fort Tryon"},
	{0.95, 95, "Inwood"},
}

// Region adds elevation while Min < n < Max. Centered bonuses fade toward the
// shoreline; the others are flat.
type Region struct {
	Name     string
	Min, Max float64
	Bonus    float64
	Centered bool
}

// Regions are checked in order and the first match wins.
var Regions = []Region{
	{Name: "Washington Heights", Min: 0.8, Max: 0.95, Bonus: 15, Centered: true},
	{Name: "Central Park", Min: 0.4, Max: 0.7, Bonus: 8, Centered: true},
	{Name: "Lower Manhattan", Min: math.Inf(-1), Max: 0.1, Bonus: 2},
}

// Normalize maps a longitudinal coordinate onto [0, 1] across the playfield.
func Normalize(z float64) float64 {
	return (z - MinZ) / Length
}

// BandAt returns the width band that covers z.
func BandAt(z float64) Band {
	n := Normalize(z)
	for _, b := range Bands {
		if n < b.Threshold {
			return b
		}
	}
	return Band{Threshold: math.Inf(1), Width: DefaultWidth, Name: DefaultName}
}

// Width is the full lateral width of the island at z. Always positive.
func Width(z float64) float64 {
	return BandAt(z).Width
}

// HalfWidth is the distance from the centerline to the shore at z.
func HalfWidth(z float64) float64 {
	return Width(z) / 2
}

// RegionAt returns the elevation region covering z, if any.
func RegionAt(z float64) (Region, bool) {
	n := Normalize(z)
	for _, r := range Regions {
		if n > r.Min && n < r.Max {
			return r, true
		}
	}
	return Region{}, false
}

// Model answers height queries. Width queries do not depend on the seed and
// are also available as package functions.
type Model struct {
	field Field
}

// New builds a model over seeded simplex noise.
func New(seed int64) *Model {
	return NewWithField(NewSimplexField(seed))
}

// NewWithField builds a model over an arbitrary field.
func NewWithField(f Field) *Model {
	if f == nil {
		f = FlatField(0.5)
	}
	return &Model{field: f}
}

func (m *Model) HalfWidth(z float64) float64 {
	return HalfWidth(z)
}

// Height is the base ground height from noise, in [-10, 10].
func (m *Model) Height(x, z float64) float64 {
	return m.field.At(x*noiseScale, z*noiseScale)*heightAmp + heightBaseline
}

// GeographicHeight is the named-region elevation bonus at (x, z).
func (m *Model) GeographicHeight(x, z float64) float64 {
	r, ok := RegionAt(z)
	if !ok {
		return 0
	}
	if !r.Centered {
		return r.Bonus
	}
	return r.Bonus * (1 - math.Abs(x)/Width(z)*2)
}

// SurfaceHeight combines noise and regional elevation.
func (m *Model) SurfaceHeight(x, z float64) float64 {
	return m.Height(x, z) + m.GeographicHeight(x, z)
}

// Query is the lateral bound and ground height at a point.
type Query struct {
	HalfWidth float64
	Height    float64
}

func (m *Model) Query(x, z float64) Query {
	return Query{HalfWidth: HalfWidth(z), Height: m.Height(x, z)}
}
