// Package config provides YAML-based game configuration loading and
// environment-driven settings for the stick hero game and its SSH server.
package config

// StickHeroConfig contains all tunables for the stick hero game.
// Lengths are in canvas units; speeds are milliseconds per canvas unit
// (or per degree for turning), so a larger value means slower motion.
type StickHeroConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Speeds    SpeedConfig     `yaml:"speeds"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Hero      HeroConfig      `yaml:"hero"`
	Rules     RulesConfig     `yaml:"rules"`
}

// CanvasConfig defines the logical drawing surface.
type CanvasConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	PlatformHeight float64 `yaml:"platform_height"`
}

// SpeedConfig defines the per-phase animation divisors.
type SpeedConfig struct {
	Stretch    float64 `yaml:"stretch"`
	Turn       float64 `yaml:"turn"`
	Walk       float64 `yaml:"walk"`
	Transition float64 `yaml:"transition"`
	Fall       float64 `yaml:"fall"`
}

// PlatformsConfig defines the first platform and the generator ranges.
type PlatformsConfig struct {
	OriginX     float64 `yaml:"origin_x"`
	OriginWidth float64 `yaml:"origin_width"`
	MinGap      float64 `yaml:"min_gap"`
	MaxGap      float64 `yaml:"max_gap"`
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	Initial     int     `yaml:"initial"` // Platforms present after reset, origin included
}

// HeroConfig defines the hero's drawn size and where it stands.
type HeroConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	EdgeOffset float64 `yaml:"edge_offset"` // Distance from the platform's far edge to the hero's x
}

// RulesConfig defines the fixed thresholds of the phase machine.
type RulesConfig struct {
	CameraProximity float64 `yaml:"camera_proximity"` // Camera stops when the landed edge is this close to the left
	FallMargin      float64 `yaml:"fall_margin"`      // Extra depth below the platforms before a fall ends
	MaxRotation     float64 `yaml:"max_rotation"`     // Cosmetic cap for the falling stick, degrees
}
