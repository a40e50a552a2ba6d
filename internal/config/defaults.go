package config

import (
	_ "embed"
)

//go:embed defaults/mathbird.yaml
var defaultMathbirdYAML []byte

// DefaultMathbirdConfig returns the default Math Bird configuration.
func DefaultMathbirdConfig() MathbirdConfig {
	return MathbirdConfig{
		Playfield: MathbirdPlayfield{
			Width:        480,
			Height:       600,
			GroundHeight: 50,
		},
		Physics: MathbirdPhysics{
			Gravity:      0.45,
			JumpImpulse:  -8.0,
			MaxFallSpeed: 12.0,
		},
		Obstacles: MathbirdObstacles{
			Width:          70,
			Speed:          3.0,
			MinSpacing:     250,
			MaxSpacing:     400,
			MinGapHeight:   150,
			MaxGapHeight:   210,
			MinWallHeight:  50,
			CollisionInset: 4,
			PoolCapacity:   4,
		},
		Zones: MathbirdZones{
			TouchSize:   44,
			MinCorridor: 40,
			Padding:     10,
		},
		Player: MathbirdPlayer{
			X:      80,
			Width:  34,
			Height: 24,
		},
		Scoring: MathbirdScoring{
			CorrectBonus:     10,
			IncorrectPenalty: 5,
		},
		Questions: MathbirdQuestions{
			Categories: []string{"add", "sub", "mul", "div"},
			BatchSize:  24,
			Difficulty: "normal",
			AddRange:   OperandRange{Min: 1, Max: 20},
			SubRange:   OperandRange{Min: 1, Max: 20},
			MulRange:   OperandRange{Min: 2, Max: 9},
			DivRange:   OperandRange{Min: 2, Max: 9},
		},
		Recovery: MathbirdRecovery{
			SoftFaultLimit: 3,
			HardFaultLimit: 6,
			WindowTicks:    600,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mathbird", "mathbird_classic":
		return defaultMathbirdYAML
	default:
		return nil
	}
}
