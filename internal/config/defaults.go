package config

import (
	_ "embed"
)

//go:embed defaults/stickhero.yaml
var defaultStickHeroYAML []byte

// DefaultStickHeroConfig returns the built-in stick hero configuration.
func DefaultStickHeroConfig() StickHeroConfig {
	return StickHeroConfig{
		Canvas: CanvasConfig{
			Width:          375,
			Height:         375,
			PlatformHeight: 100,
		},
		Speeds: SpeedConfig{
			Stretch:    4,
			Turn:       4,
			Walk:       4,
			Transition: 2,
			Fall:       2,
		},
		Platforms: PlatformsConfig{
			OriginX:     50,
			OriginWidth: 50,
			MinGap:      40,
			MaxGap:      200,
			MinWidth:    20,
			MaxWidth:    100,
			Initial:     5,
		},
		Hero: HeroConfig{
			Width:      20,
			Height:     30,
			EdgeOffset: 30,
		},
		Rules: RulesConfig{
			CameraProximity: 100,
			FallMargin:      100,
			MaxRotation:     180,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStickHeroYAML
}
