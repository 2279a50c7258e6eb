package terrain

import opensimplex "github.com/ojrac/opensimplex-go"

const (
	noiseOctaves = 4
	noiseFalloff = 0.5
)

// Field is a smooth deterministic scalar field with values in [0, 1].
type Field interface {
	At(x, y float64) float64
}

// SimplexField layers several octaves of normalized OpenSimplex noise.
type SimplexField struct {
	noise   opensimplex.Noise
	octaves int
	falloff float64
}

// NewSimplexField seeds a field. Equal seeds produce identical fields.
func NewSimplexField(seed int64) *SimplexField {
	return &SimplexField{
		noise:   opensimplex.NewNormalized(seed),
		octaves: noiseOctaves,
		falloff: noiseFalloff,
	}
}

// At samples the field. The result stays in [0, 1] because each octave is
// normalized and the sum is divided by the total amplitude.
func (f *SimplexField) At(x, y float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	frequency := 1.0

	for i := 0; i < f.octaves; i++ {
		total += f.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= f.falloff
		frequency *= 2
	}

	return total / maxVal
}

// FlatField returns the same value everywhere. Useful for tests and for
// rendering a level island.
type FlatField float64

func (f FlatField) At(x, y float64) float64 {
	return float64(f)
}
