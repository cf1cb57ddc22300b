package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Flags are the command line overrides shared by the tools.
type Flags struct {
	ConfigPath *string
	Assets     *string
	Debug      *bool
	Workers    *int
	LogFile    *string
}

// RegisterFlags defines the shared flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		ConfigPath: fs.String("config", "", "Path to config file"),
		Assets:     fs.String("assets", "", "Assets directory (containing models/ and textures/)"),
		Debug:      fs.Bool("debug", false, "Enable debug logging"),
		Workers:    fs.Int("workers", 0, "Number of compile workers"),
		LogFile:    fs.String("log-file", "", "Also write logs to this file"),
	}
}

// Load builds the configuration with priority defaults < file < flags.
// f may be nil.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	configPath := ""
	if f != nil && f.ConfigPath != nil {
		configPath = *f.ConfigPath
	}
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if f != nil {
		f.apply(cfg)
	}
	cfg.Normalize()
	return cfg, nil
}

// LoadFile reads a config file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ConfigDir returns the per-user config directory for the tools.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mcmodel")
}

func findConfigFile() string {
	candidates := []string{"./mcmodel.yaml"}
	if dir := ConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFromFile merges a YAML file into cfg; keys missing from the file keep
// their current values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (f *Flags) apply(cfg *Config) {
	if f.Assets != nil && *f.Assets != "" {
		cfg.Assets.Path = *f.Assets
	}
	if f.Debug != nil && *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Workers != nil && *f.Workers > 0 {
		cfg.Compile.Workers = *f.Workers
	}
	if f.LogFile != nil && *f.LogFile != "" {
		cfg.Logging.LogFile = *f.LogFile
	}
}
