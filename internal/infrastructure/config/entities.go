package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Towers      map[string]TowerConfig      `json:"towers"`
	Enemies     map[string]EnemyConfig      `json:"enemies"`
	Projectiles map[string]ProjectileConfig `json:"projectiles"`
}

type TowerConfig struct {
	Cost        int    `json:"cost"`
	UpgradeCost int    `json:"upgradeCost"`
	FireRate    int    `json:"fireRate"`
	Projectile  string `json:"projectile"`
}

type EnemyConfig struct {
	HitPoints int `json:"hitPoints"`
	Pace      int `json:"pace"`
	Armor     int `json:"armor"`
	Width     int `json:"width"`
	Height    int `json:"height"`
}

type ProjectileConfig struct {
	Speed          float64 `json:"speed"`
	DamagePerLevel int     `json:"damagePerLevel"`
	Width          int     `json:"width"`
	Length         int     `json:"length"`
	// Centered boxes are squares of Width around the location.
	Centered      bool `json:"centered"`
	ArmorPiercing bool `json:"armorPiercing"`
}

// DefaultEntities returns the stats used when entities.json is absent.
func DefaultEntities() *EntitiesConfig {
	return &EntitiesConfig{
		Towers: map[string]TowerConfig{
			"archer":  {Cost: 1, UpgradeCost: 1, FireRate: 5, Projectile: "arrow"},
			"missile": {Cost: 3, UpgradeCost: 1, FireRate: 12, Projectile: "missile"},
			"cannon":  {Cost: 5, UpgradeCost: 1, FireRate: 20, Projectile: "cannonBall"},
		},
		Enemies: map[string]EnemyConfig{
			"grunt": {HitPoints: 2, Pace: 20, Width: 20, Height: 20},
			"heavy": {HitPoints: 2, Pace: 20, Armor: 1, Width: 20, Height: 20},
		},
		Projectiles: map[string]ProjectileConfig{
			"arrow":      {Speed: 10, DamagePerLevel: 1, Width: 3, Length: 10},
			"missile":    {Speed: 10, DamagePerLevel: 1, Width: 3, Length: 10, ArmorPiercing: true},
			"cannonBall": {Speed: 10, DamagePerLevel: 5, Width: 8, Length: 8, Centered: true},
		},
	}
}
