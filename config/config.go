package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tuning holds every constant the simulation reads. It is decoded once and
// passed around by value; nothing mutates it after load.
type Tuning struct {
	Screen     ScreenTuning     `yaml:"screen"`
	World      WorldTuning      `yaml:"world"`
	Physics    PhysicsTuning    `yaml:"physics"`
	Player     PlayerTuning     `yaml:"player"`
	Camera     CameraTuning     `yaml:"camera"`
	Particles  ParticleTuning   `yaml:"particles"`
	Portal     PortalTuning     `yaml:"portal"`
	Dimension  DimensionTuning  `yaml:"dimension"`
	Difficulty DifficultyTuning `yaml:"difficulty"`

	Powerups map[string]PowerupTuning `yaml:"powerups"`
}

type ScreenTuning struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type WorldTuning struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

type PhysicsTuning struct {
	// Gravity and MaxFallSpeed are in pixels per frame at the 60fps
	// reference rate; motion code scales them by dt*60.
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

type PlayerTuning struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	JumpStrength     float64 `yaml:"jump_strength"`
	RepeatJumpScale  float64 `yaml:"repeat_jump_scale"`
	MaxJumps         int     `yaml:"max_jumps"`
	Lives            int     `yaml:"lives"`
	HitInvincibility float64 `yaml:"hit_invincibility"`
	StepDistance     float64 `yaml:"step_distance"`
	StompBounceScale float64 `yaml:"stomp_bounce_scale"`
}

type CameraTuning struct {
	Smoothing float64 `yaml:"smoothing"`
}

type ParticleTuning struct {
	Capacity int `yaml:"capacity"`
}

type PortalTuning struct {
	Cooldown float64 `yaml:"cooldown"`
}

type DimensionTuning struct {
	SwitchCooldown float64 `yaml:"switch_cooldown"`
	TimeSlowScale  float64 `yaml:"time_slow_scale"`
}

type DifficultyTuning struct {
	Level       int       `yaml:"level"`
	TimeFactors []float64 `yaml:"time_factors"`
}

type PowerupTuning struct {
	Duration   float64 `yaml:"duration"`
	Multiplier float64 `yaml:"multiplier"`
}

// TimeFactor returns the dt multiplier for the configured difficulty level.
func (t Tuning) TimeFactor() float64 {
	if len(t.Difficulty.TimeFactors) == 0 {
		return 1
	}
	i := t.Difficulty.Level
	if i < 0 {
		i = 0
	}
	if i >= len(t.Difficulty.TimeFactors) {
		i = len(t.Difficulty.TimeFactors) - 1
	}
	return t.Difficulty.TimeFactors[i]
}

// Load reads the tuning file, preferring a disk copy at path over the
// embedded defaults when one exists.
func Load(path string) (Tuning, error) {
	data, err := read(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return decode(data)
}

// Default returns the embedded tuning.
func Default() (Tuning, error) {
	data, err := defaultsFS.ReadFile(defaultsName)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: embedded defaults: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := t.validate(); err != nil {
		return Tuning{}, fmt.Errorf("config: validate: %w", err)
	}
	return t, nil
}

func (t Tuning) validate() error {
	if t.Screen.Width <= 0 || t.Screen.Height <= 0 {
		return fmt.Errorf("screen size %dx%d", t.Screen.Width, t.Screen.Height)
	}
	if t.World.Width <= 0 || t.World.Height <= 0 {
		return fmt.Errorf("world size %gx%g", t.World.Width, t.World.Height)
	}
	if t.Particles.Capacity <= 0 {
		return fmt.Errorf("particle capacity %d", t.Particles.Capacity)
	}
	if t.Player.MaxJumps < 1 {
		return fmt.Errorf("max jumps %d", t.Player.MaxJumps)
	}
	if t.Player.Lives < 1 {
		return fmt.Errorf("lives %d", t.Player.Lives)
	}
	for name, p := range t.Powerups {
		if p.Duration <= 0 {
			return fmt.Errorf("powerup %s duration %g", name, p.Duration)
		}
	}
	return nil
}
