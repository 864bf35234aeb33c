package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// loadConfig resolves a game config using the shared search order:
// customPath -> ~/.arcadia/configs/<name>.yaml -> ./configs/<name>.yaml ->
// embedded default -> hardcoded fallback.
// Only an explicit customPath that fails to read or parse is an error;
// all other sources degrade silently to the next one.
func loadConfig[T any](customPath, name string, embedded []byte, fallback T) (T, error) {
	var cfg T

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := name + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback, nil
	}
	return cfg, nil
}

// LoadFlappy loads Flappy Bird configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return loadConfig(customPath, "flappy", defaultFlappyYAML, DefaultFlappyConfig())
}

// LoadDino loads Dino Runner configuration.
func LoadDino(customPath string) (DinoConfig, error) {
	return loadConfig(customPath, "dino", defaultDinoYAML, DefaultDinoConfig())
}

// LoadRacing loads ASCII Racing configuration.
func LoadRacing(customPath string) (RacingConfig, error) {
	return loadConfig(customPath, "racing", defaultRacingYAML, DefaultRacingConfig())
}

// LoadInvaders loads Space Invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return loadConfig(customPath, "invaders", defaultInvadersYAML, DefaultInvadersConfig())
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return loadConfig(customPath, "snake", defaultSnakeYAML, DefaultSnakeConfig())
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcadia", "configs", filename)
}
