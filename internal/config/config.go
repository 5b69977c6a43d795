// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RESUMEFORGE_"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// OutputPath is where exported PDFs are written.
	OutputPath string `json:"output_path,omitempty"`
	// Paper names the page size: letter, legal or a4.
	Paper string `json:"paper,omitempty" validate:"omitempty,oneof=letter legal a4"`
	// MarginInches is applied to every side of the page. Nil means unset, so
	// an explicit 0 survives merging.
	MarginInches *float64 `json:"margin_inches,omitempty" validate:"omitempty,gte=0,lte=3"`
	Landscape    bool    `json:"landscape,omitempty"`
	// TimeoutSeconds bounds a single PDF print.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" validate:"gte=0,lte=600"`

	// Layout is the form layout: tabs or steps.
	Layout string `json:"layout,omitempty" validate:"omitempty,oneof=tabs steps"`
	// Templates overrides the embedded template for a format.
	Templates map[string]string `json:"templates,omitempty" validate:"omitempty,dive,keys,oneof=text html latex,endkeys,required"`

	LogMode string `json:"log_mode,omitempty" validate:"omitempty,oneof=dev prod"`
	Verbose bool   `json:"verbose,omitempty"`
}

func float64Ptr(v float64) *float64 {
	return &v
}

// Defaults returns the configuration used when nothing else is provided.
func Defaults() Config {
	return Config{
		OutputPath:     "resume.pdf",
		Paper:          "letter",
		MarginInches:   float64Ptr(0.5),
		TimeoutSeconds: 30,
		Layout:         "tabs",
		LogMode:        "dev",
	}
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", jsonName(fe.StructField()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	for format, path := range c.Templates {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s template file not found: %s", format, path)
		}
	}

	return nil
}

func jsonName(field string) string {
	switch field {
	case "OutputPath":
		return "output_path"
	case "MarginInches":
		return "margin_inches"
	case "TimeoutSeconds":
		return "timeout_seconds"
	case "LogMode":
		return "log_mode"
	default:
		return strings.ToLower(field)
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutputPath == "" {
		result.OutputPath = defaults.OutputPath
	}
	if result.Paper == "" {
		result.Paper = defaults.Paper
	}
	if result.Layout == "" {
		result.Layout = defaults.Layout
	}
	if result.LogMode == "" {
		result.LogMode = defaults.LogMode
	}

	if result.MarginInches == nil && defaults.MarginInches != nil {
		result.MarginInches = float64Ptr(*defaults.MarginInches)
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	if len(defaults.Templates) > 0 {
		merged := make(map[string]string, len(defaults.Templates)+len(result.Templates))
		for k, v := range defaults.Templates {
			merged[k] = v
		}
		for k, v := range result.Templates {
			merged[k] = v
		}
		result.Templates = merged
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from RESUMEFORGE_* variables looked up with getenv.
// Unparseable numeric or boolean values are reported as errors.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPrefix + "OUTPUT"); v != "" {
		c.OutputPath = v
	}
	if v := getenv(EnvPrefix + "PAPER"); v != "" {
		c.Paper = strings.ToLower(v)
	}
	if v := getenv(EnvPrefix + "LAYOUT"); v != "" {
		c.Layout = strings.ToLower(v)
	}
	if v := getenv(EnvPrefix + "LOG_MODE"); v != "" {
		c.LogMode = strings.ToLower(v)
	}
	if v := getenv(EnvPrefix + "MARGIN"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sMARGIN %q: %w", EnvPrefix, v, err)
		}
		c.MarginInches = &f
	}
	if v := getenv(EnvPrefix + "TIMEOUT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sTIMEOUT %q: %w", EnvPrefix, v, err)
		}
		c.TimeoutSeconds = n
	}
	if v := getenv(EnvPrefix + "VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sVERBOSE %q: %w", EnvPrefix, v, err)
		}
		c.Verbose = b
	}
	return nil
}

// Resolve builds the effective configuration: the file at path (optional),
// then environment overrides, then defaults, then validation.
func Resolve(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
