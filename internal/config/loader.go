package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMathbird loads the Math Bird configuration.
// Search order: customPath -> ~/.mathbird/configs/mathbird.yaml ->
// ./configs/mathbird.yaml -> embedded default.
// The returned config is always normalized (see MathbirdConfig.Normalize).
func LoadMathbird(customPath string) (MathbirdConfig, error) {
	var cfg MathbirdConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mathbird.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/mathbird.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMathbirdYAML, &cfg); err != nil {
		return DefaultMathbirdConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathbird", "configs", filename)
}

// ApplyMathbirdPreset adjusts question generation for a difficulty preset.
// Pacing parameters are left untouched: obstacle speed, spacing, and gap size
// stay constant across presets.
func ApplyMathbirdPreset(cfg *MathbirdConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Questions.Categories = []string{"add", "sub"}
		cfg.Questions.AddRange = OperandRange{Min: 1, Max: 10}
		cfg.Questions.SubRange = OperandRange{Min: 1, Max: 10}
	case DifficultyHard:
		cfg.Questions.Categories = []string{"add", "sub", "mul", "div"}
		cfg.Questions.AddRange = OperandRange{Min: 10, Max: 50}
		cfg.Questions.SubRange = OperandRange{Min: 10, Max: 50}
		cfg.Questions.MulRange = OperandRange{Min: 3, Max: 12}
		cfg.Questions.DivRange = OperandRange{Min: 3, Max: 12}
	case DifficultyNormal:
		cfg.Questions.Categories = []string{"add", "sub", "mul", "div"}
		cfg.Questions.AddRange = OperandRange{Min: 1, Max: 20}
		cfg.Questions.SubRange = OperandRange{Min: 1, Max: 20}
		cfg.Questions.MulRange = OperandRange{Min: 2, Max: 9}
		cfg.Questions.DivRange = OperandRange{Min: 2, Max: 9}
	}
	if ValidPreset(preset) {
		cfg.Questions.Difficulty = string(preset)
	}
}
