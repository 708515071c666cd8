package config

// RulesConfig is the root config for rules.json
type RulesConfig struct {
	Display DisplayConfig `json:"display"`
	Rules   GameRules     `json:"rules"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	// TickMillis is the simulation step the driver pumps the engine at.
	TickMillis int `json:"tickMillis"`
}

type GameRules struct {
	StartingLives        int     `json:"startingLives"`
	SpawnDelayTicks      int     `json:"spawnDelayTicks"`
	BudgetWaveMultiplier int     `json:"budgetWaveMultiplier"`
	RotateStepDegrees    float64 `json:"rotateStepDegrees"`
	DefaultTower         string  `json:"defaultTower"`
	FirstLevel           int     `json:"firstLevel"`
}

// DefaultRules returns the rules used when rules.json is absent.
func DefaultRules() *RulesConfig {
	return &RulesConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 640,
			Scale:        1,
			TickMillis:   100,
		},
		Rules: GameRules{
			StartingLives:        5,
			SpawnDelayTicks:      8,
			BudgetWaveMultiplier: 1,
			RotateStepDegrees:    15,
			DefaultTower:         "archer",
			FirstLevel:           1,
		},
	}
}
