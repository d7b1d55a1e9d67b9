package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vialkov/coil/internal/input"
)

// fileConfig is the on-disk shape. Durations are strings ("50ms") so config
// files stay readable; screen size is taken from the terminal at startup and
// only overridden when present.
type fileConfig struct {
	TargetFPS    int    `yaml:"target_fps"`
	MaxFrameTime string `yaml:"max_frame_time"`
	Input        string `yaml:"input"`
	ScreenW      int    `yaml:"screen_width"`
	ScreenH      int    `yaml:"screen_height"`
}

// Load reads engine configuration on top of Default().
// Search order: customPath -> ~/.coil/config.yaml -> ./configs/coil.yaml ->
// embedded default.
func Load(customPath string) (Config, error) {
	cfg := Default()

	data, source, err := readConfigFile(customPath)
	if err != nil {
		return cfg, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if err := fc.apply(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

func readConfigFile(customPath string) (data []byte, source string, err error) {
	if customPath != "" {
		data, err = os.ReadFile(customPath)
		if err != nil {
			return nil, "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return data, customPath, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			return data, userPath, nil
		}
	}

	if data, err := os.ReadFile("configs/coil.yaml"); err == nil {
		return data, "configs/coil.yaml", nil
	}

	return defaultConfigYAML, "embedded default", nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.TargetFPS != 0 {
		cfg.TargetFPS = fc.TargetFPS
	}
	if fc.MaxFrameTime != "" {
		d, err := time.ParseDuration(fc.MaxFrameTime)
		if err != nil {
			return fmt.Errorf("bad max_frame_time: %w", err)
		}
		cfg.MaxFrameTime = d
	}
	if fc.Input != "" {
		strategy, err := input.ParseStrategy(fc.Input)
		if err != nil {
			return err
		}
		cfg.Input = strategy
	}
	if fc.ScreenW != 0 {
		cfg.ScreenW = fc.ScreenW
	}
	if fc.ScreenH != 0 {
		cfg.ScreenH = fc.ScreenH
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coil", "config.yaml")
}
