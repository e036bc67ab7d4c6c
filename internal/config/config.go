package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the file-based configuration used by the server and CLI, where
// Fyne preferences are not available.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
		Debug  bool   `yaml:"debug"`
	} `yaml:"server"`
	Download struct {
		Directory   string `yaml:"directory"`
		MaxParallel int    `yaml:"max_parallel"`
		FFmpegPath  string `yaml:"ffmpeg_path"`
	} `yaml:"download"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Download.MaxParallel = DefaultMaxParallel
	return cfg
}

// Load reads a YAML config file, filling unset fields with defaults. A
// missing file is not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Download.MaxParallel < 1 {
		cfg.Download.MaxParallel = DefaultMaxParallel
	}
	return cfg, nil
}

// Write saves the configuration as YAML.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
