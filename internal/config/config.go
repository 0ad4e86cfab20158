// Package config provides YAML-based game configuration loading and
// difficulty presets for slither.
package config

import (
	"github.com/vovakirdan/tui-slither/internal/sim"
	"github.com/vovakirdan/tui-slither/internal/steer"
)

// Config contains every gameplay tunable.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	Speed      SpeedConfig      `yaml:"speed"`
	Rules      RulesConfig      `yaml:"rules"`
	Steering   SteeringConfig   `yaml:"steering"`
}

// GridConfig defines the toroidal play field.
type GridConfig struct {
	Size int `yaml:"size"` // World is [0, size) on each axis
}

// SimulationConfig defines the two scheduling rates. They are independent:
// the simulation ticks at tick_rate while the display redraws at frame_rate.
type SimulationConfig struct {
	TickRate  int `yaml:"tick_rate"`
	FrameRate int `yaml:"frame_rate"`
}

// SpeedConfig defines the snake speed and its in-game cycle, in world
// units per second.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
}

// RulesConfig defines the collision and food-placement distances.
type RulesConfig struct {
	EatRadius         float64 `yaml:"eat_radius"`
	SelfCollideRadius float64 `yaml:"self_collide_radius"`
	HeadExempt        int     `yaml:"head_exempt"`
	FoodClearance     float64 `yaml:"food_clearance"`
	FoodAttempts      int     `yaml:"food_attempts"`
	InitialLength     int     `yaml:"initial_length"`
}

// SteeringConfig selects the turning granularity: "continuous" for
// free-angle steering, "snapped" to quantize headings to sectors
// directions.
type SteeringConfig struct {
	Mode    string `yaml:"mode"`
	Sectors int    `yaml:"sectors"`
}

// SimParams converts the config into engine parameters.
func (c Config) SimParams() sim.Params {
	return sim.Params{
		GridSize:      c.Grid.Size,
		TickRate:      c.Simulation.TickRate,
		InitialLength: c.Rules.InitialLength,
		InitialSpeed:  c.Speed.Initial,
		MinSpeed:      c.Speed.Min,
		MaxSpeed:      c.Speed.Max,
		SpeedStep:     c.Speed.Step,
		EatRadius:     c.Rules.EatRadius,
		CollideRadius: c.Rules.SelfCollideRadius,
		HeadExempt:    c.Rules.HeadExempt,
		FoodClearance: c.Rules.FoodClearance,
		FoodAttempts:  c.Rules.FoodAttempts,
	}
}

// SteerMode converts the steering section into controller arguments.
func (c Config) SteerMode() (steer.Mode, int) {
	return steer.Mode(c.Steering.Mode), c.Steering.Sectors
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the starting speed for a difficulty preset.
// "fixed" (or an empty preset) leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 4
	case DifficultyNormal:
		cfg.Speed.Initial = 6
	case DifficultyHard:
		cfg.Speed.Initial = 10
	}
}
