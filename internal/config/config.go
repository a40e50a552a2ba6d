// Package config provides YAML-based configuration loading and difficulty
// presets for Math Bird. Gameplay pacing is constant: presets only shape
// question number ranges, never speed, spacing, or gap size.
package config

// MathbirdConfig contains all configuration for the Math Bird game.
// Geometry and physics are expressed in playfield units (the simulation's
// virtual pixels), not terminal cells; the render layer does the mapping.
type MathbirdConfig struct {
	Playfield MathbirdPlayfield `yaml:"playfield"`
	Physics   MathbirdPhysics   `yaml:"physics"`
	Obstacles MathbirdObstacles `yaml:"obstacles"`
	Zones     MathbirdZones     `yaml:"zones"`
	Player    MathbirdPlayer    `yaml:"player"`
	Scoring   MathbirdScoring   `yaml:"scoring"`
	Questions MathbirdQuestions `yaml:"questions"`
	Recovery  MathbirdRecovery  `yaml:"recovery"`
}

// MathbirdPlayfield defines the virtual playfield dimensions.
type MathbirdPlayfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// FloorY returns the y coordinate of the ground surface.
func (p MathbirdPlayfield) FloorY() float64 {
	return p.Height - p.GroundHeight
}

// MathbirdPhysics defines physics parameters, tuned for 60fps and scaled by
// dt at integration time.
type MathbirdPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// MathbirdObstacles defines obstacle geometry and pacing parameters.
type MathbirdObstacles struct {
	Width          float64 `yaml:"width"`
	Speed          float64 `yaml:"speed"`
	MinSpacing     float64 `yaml:"min_spacing"`
	MaxSpacing     float64 `yaml:"max_spacing"`
	MinGapHeight   float64 `yaml:"min_gap_height"`
	MaxGapHeight   float64 `yaml:"max_gap_height"`
	MinWallHeight  float64 `yaml:"min_wall_height"`
	CollisionInset float64 `yaml:"collision_inset"`
	PoolCapacity   int     `yaml:"pool_capacity"`
}

// MathbirdZones defines answer zone layout inside the gap.
type MathbirdZones struct {
	TouchSize   float64 `yaml:"touch_size"`   // upper bound on zone height
	MinCorridor float64 `yaml:"min_corridor"` // minimum pass-through corridor height
	Padding     float64 `yaml:"padding"`      // vertical padding between zones and gap edges
}

// MathbirdPlayer defines the bird's geometry.
type MathbirdPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MathbirdScoring defines answer scoring parameters.
type MathbirdScoring struct {
	CorrectBonus     int `yaml:"correct_bonus"`
	IncorrectPenalty int `yaml:"incorrect_penalty"`
}

// MathbirdQuestions defines question generation parameters.
type MathbirdQuestions struct {
	Categories []string     `yaml:"categories"`
	BatchSize  int          `yaml:"batch_size"`
	Difficulty string       `yaml:"difficulty"`
	AddRange   OperandRange `yaml:"add_range"`
	SubRange   OperandRange `yaml:"sub_range"`
	MulRange   OperandRange `yaml:"mul_range"`
	DivRange   OperandRange `yaml:"div_range"`
}

// OperandRange is an inclusive operand range for question generation.
type OperandRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// MathbirdRecovery defines tick fault recovery thresholds.
type MathbirdRecovery struct {
	SoftFaultLimit int `yaml:"soft_fault_limit"` // faults in window before auto-reset
	HardFaultLimit int `yaml:"hard_fault_limit"` // faults in window before forced game over
	WindowTicks    int `yaml:"window_ticks"`     // sliding window length in ticks
}

// Normalize clamps configuration values so the engine's geometric invariants
// hold: walls and gap fit the playfield, zones plus corridor fit the gap, and
// the bird fits the corridor.
func (c *MathbirdConfig) Normalize() {
	if c.Playfield.Width <= 0 {
		c.Playfield.Width = 480
	}
	if c.Playfield.Height <= 0 {
		c.Playfield.Height = 600
	}
	if c.Playfield.GroundHeight < 0 {
		c.Playfield.GroundHeight = 0
	}

	if c.Obstacles.Speed <= 0 {
		c.Obstacles.Speed = 3
	}
	if c.Obstacles.Width <= 0 {
		c.Obstacles.Width = 70
	}
	if c.Obstacles.MinSpacing < c.Obstacles.Width {
		c.Obstacles.MinSpacing = c.Obstacles.Width
	}
	if c.Obstacles.MaxSpacing < c.Obstacles.MinSpacing {
		c.Obstacles.MaxSpacing = c.Obstacles.MinSpacing
	}
	if c.Obstacles.PoolCapacity <= 0 {
		c.Obstacles.PoolCapacity = 4
	}

	// The gap must leave room for both walls.
	fieldH := c.Playfield.FloorY()
	maxGap := fieldH - 2*c.Obstacles.MinWallHeight
	if c.Obstacles.MaxGapHeight > maxGap {
		c.Obstacles.MaxGapHeight = maxGap
	}
	if c.Obstacles.MinGapHeight > c.Obstacles.MaxGapHeight {
		c.Obstacles.MinGapHeight = c.Obstacles.MaxGapHeight
	}

	// The corridor must admit the bird.
	if c.Zones.MinCorridor < c.Player.Height {
		c.Zones.MinCorridor = c.Player.Height
	}
	// Zones plus corridor plus padding must fit the smallest gap.
	minGapNeeded := c.Zones.MinCorridor + c.Zones.Padding + 2
	if c.Obstacles.MinGapHeight < minGapNeeded {
		c.Obstacles.MinGapHeight = minGapNeeded
	}
	if c.Obstacles.MaxGapHeight < c.Obstacles.MinGapHeight {
		c.Obstacles.MaxGapHeight = c.Obstacles.MinGapHeight
	}

	if c.Scoring.CorrectBonus <= 0 {
		c.Scoring.CorrectBonus = 10
	}
	if c.Scoring.IncorrectPenalty < 0 {
		c.Scoring.IncorrectPenalty = 0
	}

	if c.Questions.BatchSize <= 0 {
		c.Questions.BatchSize = 24
	}

	if c.Recovery.WindowTicks <= 0 {
		c.Recovery.WindowTicks = 600
	}
	if c.Recovery.SoftFaultLimit <= 0 {
		c.Recovery.SoftFaultLimit = 3
	}
	if c.Recovery.HardFaultLimit <= c.Recovery.SoftFaultLimit {
		c.Recovery.HardFaultLimit = c.Recovery.SoftFaultLimit * 2
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset returns true for a known preset name.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
