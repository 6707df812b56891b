// Package config provides configuration management for the calculator
// service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ZaEvab55555/Advanced-Calculator/internal/fileutil"
	"github.com/ZaEvab55555/Advanced-Calculator/pkg/calc"
)

// Config represents the service configuration.
type Config struct {
	Service    ServiceConfig    `yaml:"service" toml:"service"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
	Calculator CalculatorConfig `yaml:"calculator" toml:"calculator"`
}

// ServiceConfig contains service-level settings.
type ServiceConfig struct {
	Host    string `yaml:"host" toml:"host"`
	Port    int    `yaml:"port" toml:"port"`
	DataDir string `yaml:"data_dir" toml:"data_dir"`
}

// LoggingConfig contains log writer settings.
type LoggingConfig struct {
	Level      string   `yaml:"level" toml:"level"`
	Format     string   `yaml:"format" toml:"format"`
	TimeFormat string   `yaml:"time_format" toml:"time_format"`
	Output     []string `yaml:"output" toml:"output"`
	MaxSizeMB  int      `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int      `yaml:"max_backups" toml:"max_backups"`
}

// CalculatorConfig contains the display modes new sessions start with. A
// running session's modes change only through its own toggles.
type CalculatorConfig struct {
	FractionMode bool   `yaml:"fraction_mode" toml:"fraction_mode"`
	PiMode       bool   `yaml:"pi_mode" toml:"pi_mode"`
	AngleMode    string `yaml:"angle_mode" toml:"angle_mode"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			Host:    "127.0.0.1",
			Port:    8421,
			DataDir: DefaultDataDir(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"console", "file"},
		},
		Calculator: CalculatorConfig{
			FractionMode: false,
			PiMode:       true,
			AngleMode:    "degrees",
		},
	}
}

// DefaultDataDir returns the default data directory based on OS.
func DefaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "advcalc")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "AppData", "Roaming", "advcalc")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "advcalc")
	default: // linux and others
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData != "" {
			return filepath.Join(xdgData, "advcalc")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".advcalc")
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// Load loads configuration from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .toml. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand environment variables in the config
	expanded := os.ExpandEnv(string(data))

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension: %s", ext)
	}

	// Expand tilde in data_dir
	if strings.HasPrefix(cfg.Service.DataDir, "~/") {
		home, _ := os.UserHomeDir()
		cfg.Service.DataDir = filepath.Join(home, cfg.Service.DataDir[2:])
	}

	return cfg, nil
}

// Save writes the configuration to a file in the format implied by its
// extension, mirroring Load.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		data, err = toml.Marshal(c)
	default:
		return fmt.Errorf("unsupported config file extension: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Address returns the full address string for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Service.Host, c.Service.Port)
}

// URL returns the browsable base URL of the web UI.
func (c *Config) URL() string {
	return fmt.Sprintf("http://%s", c.Address())
}

// LogPath returns the path to the service log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Service.DataDir, "logs", "advcalc.log")
}

// PIDPath returns the path to the daemon PID file.
func (c *Config) PIDPath() string {
	return filepath.Join(c.Service.DataDir, "advcalc.pid")
}

// EnsureDirectories creates all necessary directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Service.DataDir,
		filepath.Dir(c.LogPath()),
	}

	for _, dir := range dirs {
		if err := fileutil.EnsureDir(dir); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Modes converts the configured defaults into engine display modes.
func (c *Config) Modes() calc.Modes {
	return calc.Modes{
		Fraction: c.Calculator.FractionMode,
		Pi:       c.Calculator.PiMode,
		Angle:    calc.ParseAngleMode(c.Calculator.AngleMode),
	}
}
