package prefabs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DasherFile is the prefab holding every tuning value of a round.
const DasherFile = "dasher.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

type DasherSpec struct {
	Name      string       `yaml:"name"`
	Window    WindowSpec   `yaml:"window"`
	Physics   PhysicsSpec  `yaml:"physics"`
	Player    SheetSpec    `yaml:"player"`
	Obstacles ObstacleSpec `yaml:"obstacles"`
	Parallax  ParallaxSpec `yaml:"parallax"`
	Messages  MessagesSpec `yaml:"messages"`
}

type WindowSpec struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Title         string  `yaml:"title"`
	TPS           int     `yaml:"tps"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

type PhysicsSpec struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// SheetSpec describes a sprite sheet laid out as a grid of equal cells.
// Only the first row is ever animated.
type SheetSpec struct {
	Sheet         string  `yaml:"sheet"`
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	FrameDuration float64 `yaml:"frame_duration"`
}

type ObstacleSpec struct {
	SheetSpec `yaml:",inline"`
	Velocity  float64 `yaml:"velocity"`
	Spacing   float64 `yaml:"spacing"`
	Padding   float64 `yaml:"padding"`
}

type ParallaxSpec struct {
	Scale  float64     `yaml:"scale"`
	Layers []LayerSpec `yaml:"layers"`
}

type LayerSpec struct {
	Name  string  `yaml:"name"`
	Sheet string  `yaml:"sheet"`
	Speed float64 `yaml:"speed"`
}

type MessagesSpec struct {
	Lost    string  `yaml:"lost"`
	Won     string  `yaml:"won"`
	Size    float64 `yaml:"size"`
	OffsetX float64 `yaml:"offset_x"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadDasherSpec loads the tuning prefab. An explicit path bypasses the
// prefabs/ lookup entirely.
func LoadDasherSpec(path string) (*DasherSpec, error) {
	var (
		spec DasherSpec
		err  error
	)
	if path != "" {
		spec, err = loadSpecFile[DasherSpec](path)
	} else {
		spec, err = LoadSpec[DasherSpec](DasherFile)
	}
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func loadSpecFile[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}
	return spec, nil
}

// Validate rejects values the simulation cannot run with.
func (s *DasherSpec) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSpec, s.Window.Width, s.Window.Height)
	case s.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidSpec, s.Window.TPS)
	case s.Window.MaxFrameDelta < 0:
		return fmt.Errorf("%w: max_frame_delta %v", ErrInvalidSpec, s.Window.MaxFrameDelta)
	case s.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidSpec, s.Physics.Gravity)
	case s.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump_impulse must be negative, got %v", ErrInvalidSpec, s.Physics.JumpImpulse)
	case s.Obstacles.Velocity >= 0:
		return fmt.Errorf("%w: obstacle velocity must be negative, got %v", ErrInvalidSpec, s.Obstacles.Velocity)
	case s.Obstacles.Padding < 0:
		return fmt.Errorf("%w: padding %v", ErrInvalidSpec, s.Obstacles.Padding)
	case s.Parallax.Scale <= 0:
		return fmt.Errorf("%w: parallax scale %v", ErrInvalidSpec, s.Parallax.Scale)
	case len(s.Parallax.Layers) != 3:
		return fmt.Errorf("%w: want 3 parallax layers, got %d", ErrInvalidSpec, len(s.Parallax.Layers))
	}
	for _, sheet := range []SheetSpec{s.Player, s.Obstacles.SheetSpec} {
		if sheet.Sheet == "" || sheet.Columns <= 0 || sheet.Rows <= 0 {
			return fmt.Errorf("%w: sheet %q is %dx%d", ErrInvalidSpec, sheet.Sheet, sheet.Columns, sheet.Rows)
		}
		if sheet.FrameDuration < 0 {
			return fmt.Errorf("%w: sheet %q frame_duration %v", ErrInvalidSpec, sheet.Sheet, sheet.FrameDuration)
		}
	}
	return nil
}

// Marshal renders the spec back to YAML.
func (s *DasherSpec) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal %s: %w", s.Name, err)
	}
	return data, nil
}
