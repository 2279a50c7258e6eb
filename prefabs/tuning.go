package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TuningFile is the embedded tuning document name.
const TuningFile = "tuning.yaml"

type PlayerTuning struct {
	Speed        float64 `yaml:"speed"`
	ImpulseScale float64 `yaml:"impulse_scale"`
	Friction     float64 `yaml:"friction"`
	Margin       float64 `yaml:"margin"`
	EyeHeight    float64 `yaml:"eye_height"`
	Size         float64 `yaml:"size"`
	StartX       float64 `yaml:"start_x"`
	StartZ       float64 `yaml:"start_z"`
}

type AnimalTuning struct {
	Count        int     `yaml:"count"`
	SizeMin      float64 `yaml:"size_min"`
	SizeMax      float64 `yaml:"size_max"`
	InitialSpeed float64 `yaml:"initial_speed"`
	WanderFrames int     `yaml:"wander_frames"`
	WanderSpeed  float64 `yaml:"wander_speed"`
	Margin       float64 `yaml:"margin"`
	FleeRadius   float64 `yaml:"flee_radius"`
	FleeSpeed    float64 `yaml:"flee_speed"`
	ScoreEvery   int     `yaml:"score_every"`
	ScorePoints  int     `yaml:"score_points"`
	Script       string  `yaml:"script"`
}

type TreeTuning struct {
	Count     int     `yaml:"count"`
	HeightMin float64 `yaml:"height_min"`
	HeightMax float64 `yaml:"height_max"`
	RadiusMin float64 `yaml:"radius_min"`
	RadiusMax float64 `yaml:"radius_max"`
}

type BoundsTuning struct {
	LimitZ float64 `yaml:"limit_z"`
}

type CameraTuning struct {
	IntroFrames   int     `yaml:"intro_frames"`
	IntroSmooth   float64 `yaml:"intro_smooth"`
	FollowSmooth  float64 `yaml:"follow_smooth"`
	FollowOffsetY float64 `yaml:"follow_offset_y"`
	FollowOffsetZ float64 `yaml:"follow_offset_z"`
}

type ScoringTuning struct {
	Health         int     `yaml:"health"`
	JumpPoints     int     `yaml:"jump_points"`
	TreeRadius     float64 `yaml:"tree_radius"`
	TreePoints     int     `yaml:"tree_points"`
	AnimalRadius   float64 `yaml:"animal_radius"`
	AnimalPoints   int     `yaml:"animal_points"`
	AmbientSeconds float64 `yaml:"ambient_seconds"`
	AmbientPoints  int     `yaml:"ambient_points"`
}

type RenderTuning struct {
	TreeDistance   float64 `yaml:"tree_distance"`
	AnimalDistance float64 `yaml:"animal_distance"`
}

// Tuning holds every gameplay constant that can be changed without a rebuild.
type Tuning struct {
	FrameRate int           `yaml:"frame_rate"`
	Player    PlayerTuning  `yaml:"player"`
	Animals   AnimalTuning  `yaml:"animals"`
	Trees     TreeTuning    `yaml:"trees"`
	Bounds    BoundsTuning  `yaml:"bounds"`
	Camera    CameraTuning  `yaml:"camera"`
	Scoring   ScoringTuning `yaml:"scoring"`
	Render    RenderTuning  `yaml:"render"`
}

// DefaultTuning mirrors tuning.yaml. Documents are decoded on top of it, so
// a partial file only overrides what it names.
func DefaultTuning() Tuning {
	return Tuning{
		FrameRate: 60,
		Player: PlayerTuning{
			Speed:        2,
			ImpulseScale: 0.1,
			Friction:     0.9,
			Margin:       10,
			EyeHeight:    8,
			Size:         15,
			StartX:       0,
			StartZ:       500,
		},
		Animals: AnimalTuning{
			Count:        20,
			SizeMin:      4,
			SizeMax:      8,
			InitialSpeed: 0.5,
			WanderFrames: 120,
			WanderSpeed:  0.3,
			Margin:       5,
			FleeRadius:   40,
			FleeSpeed:    1.5,
			ScoreEvery:   60,
			ScorePoints:  1,
		},
		Trees: TreeTuning{
			Count:     60,
			HeightMin: 30,
			HeightMax: 60,
			RadiusMin: 8,
			RadiusMax: 15,
		},
		Bounds: BoundsTuning{LimitZ: 590},
		Camera: CameraTuning{
			IntroFrames:   120,
			IntroSmooth:   0.12,
			FollowSmooth:  0.05,
			FollowOffsetY: -75,
			FollowOffsetZ: 100,
		},
		Scoring: ScoringTuning{
			Health:         100,
			JumpPoints:     5,
			TreeRadius:     25,
			TreePoints:     10,
			AnimalRadius:   20,
			AnimalPoints:   15,
			AmbientSeconds: 3,
			AmbientPoints:  1,
		},
		Render: RenderTuning{
			TreeDistance:   200,
			AnimalDistance: 150,
		},
	}
}

// ParseTuning decodes a document over the defaults.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads name through Load (disk override, then embedded) and
// decodes it. An empty name means the embedded tuning.yaml.
func LoadTuning(name string) (Tuning, error) {
	if name == "" {
		name = TuningFile
	}
	data, err := Load(name)
	if err != nil {
		return Tuning{}, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return t, nil
}

// Validate rejects values that would break the frame loop.
func (t Tuning) Validate() error {
	switch {
	case t.FrameRate <= 0:
		return fmt.Errorf("frame_rate must be positive, got %d", t.FrameRate)
	case t.Animals.WanderFrames <= 0:
		return fmt.Errorf("animals.wander_frames must be positive, got %d", t.Animals.WanderFrames)
	case t.Animals.ScoreEvery <= 0:
		return fmt.Errorf("animals.score_every must be positive, got %d", t.Animals.ScoreEvery)
	case t.Camera.IntroFrames < 0:
		return fmt.Errorf("camera.intro_frames must not be negative, got %d", t.Camera.IntroFrames)
	case t.Animals.Count < 0 || t.Trees.Count < 0:
		return fmt.Errorf("entity counts must not be negative")
	case t.Player.Friction < 0 || t.Player.Friction > 1:
		return fmt.Errorf("player.friction must be in [0, 1], got %v", t.Player.Friction)
	}
	return nil
}

func (t Tuning) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
