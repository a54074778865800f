package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/cinematool/internal/system"
)

// Run modes of the batch converter.
const (
	ModeCheck   = "check"
	ModeExport  = "export"
	ModeYAML    = "yaml"
	ModeMerge   = "merge"
	ModeNew     = "new"
	ModePreview = "preview"
)

var Modes = []string{ModeCheck, ModeExport, ModeYAML, ModeMerge, ModeNew, ModePreview}

type Config struct {
	Mode      string   `yaml:"mode"`
	Inputs    []string `yaml:"inputs"`
	InputDir  string   `yaml:"input_dir"`
	OutputDir string   `yaml:"output_dir"`
	Latest    bool     `yaml:"latest"`
	Workers   int      `yaml:"workers"`

	// Name of the record created by the "new" mode.
	Name string `yaml:"name"`

	PreviewWidth  int `yaml:"preview_width"`
	PreviewHeight int `yaml:"preview_height"`

	// Strict turns decode warnings into errors.
	Strict    bool   `yaml:"strict"`
	LogLevel  string `yaml:"log_level"`
	ShowStats bool   `yaml:"show_stats"`

	BuildVersion string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mode:          ModeCheck,
		InputDir:      "input",
		OutputDir:     "output",
		Workers:       system.DefaultWorkers(),
		Name:          "New Cinema",
		PreviewWidth:  512,
		PreviewHeight: 512,
		LogLevel:      "info",
	}
}

// Load layers the defaults, an optional YAML file and CINEMA_* environment
// variables. Command line flags are applied on top by the caller.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Mode = envStr("CINEMA_MODE", c.Mode)
	c.InputDir = envStr("CINEMA_INPUT_DIR", c.InputDir)
	c.OutputDir = envStr("CINEMA_OUTPUT_DIR", c.OutputDir)
	c.Workers = envInt("CINEMA_WORKERS", c.Workers)
	c.Name = envStr("CINEMA_NAME", c.Name)
	c.PreviewWidth = envInt("CINEMA_PREVIEW_WIDTH", c.PreviewWidth)
	c.PreviewHeight = envInt("CINEMA_PREVIEW_HEIGHT", c.PreviewHeight)
	c.Strict = envBool("CINEMA_STRICT", c.Strict)
	c.LogLevel = envStr("CINEMA_LOG_LEVEL", c.LogLevel)
	c.ShowStats = envBool("CINEMA_SHOW_STATS", c.ShowStats)
	if v := os.Getenv("CINEMA_INPUTS"); v != "" {
		c.Inputs = strings.Split(v, string(os.PathListSeparator))
	}
}

// Validate checks the combined configuration.
func (c *Config) Validate() error {
	var errs []error

	known := false
	for _, m := range Modes {
		if c.Mode == m {
			known = true
			break
		}
	}
	if !known {
		errs = append(errs, fmt.Errorf("config: unknown mode %q (want one of %s)", c.Mode, strings.Join(Modes, ", ")))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("config: workers must be positive, got %d", c.Workers))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("config: output dir is required"))
	}
	if c.Mode == ModePreview && (c.PreviewWidth <= 0 || c.PreviewHeight <= 0) {
		errs = append(errs, fmt.Errorf("config: preview size %dx%d is not positive", c.PreviewWidth, c.PreviewHeight))
	}
	if c.Mode == ModeNew && strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("config: the new mode needs a name"))
	}
	return errors.Join(errs...)
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
