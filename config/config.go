package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "flux-pwa-generator.yaml"

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Minify MinifyConfig `yaml:"minify"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // optional rotating log file
}

// MinifyConfig 控制目录压缩
type MinifyConfig struct {
	Exclude []string `yaml:"exclude"` // doublestar globs relative to the folder root
	DryRun  bool     `yaml:"dry_run"`
}

var GlobalConfig = Default()

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
	}
}

func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	GlobalConfig = cfg
	return nil
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, err
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	// Environment variable overrides
	if level := os.Getenv("FLUX_PWA_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if file := os.Getenv("FLUX_PWA_LOG_FILE"); file != "" {
		cfg.Log.File = file
	}
	if dryRun := os.Getenv("FLUX_PWA_DRY_RUN"); dryRun != "" {
		if v, err := strconv.ParseBool(dryRun); err == nil {
			cfg.Minify.DryRun = v
		}
	}
	if exclude := os.Getenv("FLUX_PWA_EXCLUDE"); exclude != "" {
		cfg.Minify.Exclude = nil
		for _, pattern := range strings.Split(exclude, ",") {
			if pattern = strings.TrimSpace(pattern); pattern != "" {
				cfg.Minify.Exclude = append(cfg.Minify.Exclude, pattern)
			}
		}
	}

	return cfg, nil
}
