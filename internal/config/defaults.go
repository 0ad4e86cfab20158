package config

import (
	_ "embed"
)

//go:embed defaults/slither.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size: 50,
		},
		Simulation: SimulationConfig{
			TickRate:  30,
			FrameRate: 60,
		},
		Speed: SpeedConfig{
			Initial: 6,
			Min:     2,
			Max:     12,
			Step:    2,
		},
		Rules: RulesConfig{
			EatRadius:         0.5,
			SelfCollideRadius: 0.3,
			HeadExempt:        3,
			FoodClearance:     0.8,
			FoodAttempts:      1000,
			InitialLength:     4,
		},
		Steering: SteeringConfig{
			Mode:    "continuous",
			Sectors: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `slither config`
// style dumps and documentation.
func DefaultYAML() []byte {
	return defaultYAML
}
