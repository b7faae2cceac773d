package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuning(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Fatalf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Fatalf("gravity = %g, want 0.5", cfg.Physics.Gravity)
	}
	if cfg.Particles.Capacity != 300 {
		t.Fatalf("particle capacity = %d, want 300", cfg.Particles.Capacity)
	}
	if cfg.Player.MaxJumps != 2 {
		t.Fatalf("max jumps = %d, want 2", cfg.Player.MaxJumps)
	}

	jump, ok := cfg.Powerups["jump"]
	if !ok {
		t.Fatal("no jump powerup in defaults")
	}
	if jump.Duration != 15 {
		t.Fatalf("jump duration = %g, want 15", jump.Duration)
	}
}

func TestLoadPrefersDiskOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")

	override := `
screen: {width: 1280, height: 720}
world: {width: 3000, height: 1000, ground_height: 50}
physics: {gravity: 0.5, max_fall_speed: 15}
player: {width: 40, height: 60, speed: 5, jump_strength: -16, repeat_jump_scale: 0.8, max_jumps: 2, lives: 3, hit_invincibility: 2, step_distance: 40, stomp_bounce_scale: 0.7}
camera: {smoothing: 0.1}
particles: {capacity: 300}
portal: {cooldown: 1}
dimension: {switch_cooldown: 1, time_slow_scale: 0.5}
difficulty: {level: 2, time_factors: [0.9, 1.0, 1.1]}
powerups:
  speed: {duration: 10, multiplier: 1.5}
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Difficulty.Level != 2 {
		t.Fatalf("difficulty = %d, want override 2", cfg.Difficulty.Level)
	}
}

func TestLoadMissingPathFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Screen.Width != 1280 {
		t.Fatalf("screen width = %d, want embedded default 1280", cfg.Screen.Width)
	}
}

func TestValidateRejectsBrokenTuning(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero screen", "screen: {width: 0, height: 720}"},
		{"zero particle capacity", "screen: {width: 1280, height: 720}\nworld: {width: 3000, height: 1000}\nparticles: {capacity: 0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decode([]byte(tt.yaml)); err == nil {
				t.Fatal("decode accepted invalid tuning")
			}
		})
	}
}

func TestTimeFactor(t *testing.T) {
	base := Tuning{Difficulty: DifficultyTuning{TimeFactors: []float64{0.9, 1.0, 1.1}}}

	tests := []struct {
		name  string
		level int
		want  float64
	}{
		{"easy", 0, 0.9},
		{"normal", 1, 1.0},
		{"hard", 2, 1.1},
		{"below range", -1, 0.9},
		{"above range", 5, 1.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Difficulty.Level = tt.level
			if got := cfg.TimeFactor(); got != tt.want {
				t.Fatalf("TimeFactor() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestTimeFactorEmptyTable(t *testing.T) {
	var cfg Tuning
	if got := cfg.TimeFactor(); got != 1 {
		t.Fatalf("TimeFactor() = %g with no table, want 1", got)
	}
}
