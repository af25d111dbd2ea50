package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the SSH server. Flags override these values.
type ServerConfig struct {
	Address     string        `env:"STICKHERO_SSH_ADDR"     envDefault:":23234"`
	HostKeyPath string        `env:"STICKHERO_HOST_KEY"`
	DBPath      string        `env:"STICKHERO_DB"           envDefault:"~/.stickhero/runs.db"`
	IdleTimeout time.Duration `env:"STICKHERO_IDLE_TIMEOUT" envDefault:"30m"`
	TickRate    int           `env:"STICKHERO_FPS"          envDefault:"60"`
}

// AudioConfig controls audio cues.
type AudioConfig struct {
	Muted bool `env:"STICKHERO_MUTE"`
	Bell  bool `env:"STICKHERO_BELL" envDefault:"true"` // Ring the terminal bell for cues
}

// LoadServerConfig reads the server settings from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("config: parse env: %w", err)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return cfg, nil
}

// LoadAudioConfig reads the audio settings from the environment.
// Malformed values fall back to defaults: audio is cosmetic.
func LoadAudioConfig() AudioConfig {
	var cfg AudioConfig
	if err := env.Parse(&cfg); err != nil {
		return AudioConfig{Bell: true}
	}
	return cfg
}
