// Package config loads practicas.yaml: mock latencies, error display time,
// theme, trace file and HTTP mock port.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/initializ/practicas/internal/latency"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "practicas.yaml"

// Config represents the top-level practicas.yaml configuration.
type Config struct {
	Theme   string    `yaml:"theme,omitempty"`
	LogFile string    `yaml:"log_file,omitempty"`
	Timing  TimingRef `yaml:"timing,omitempty"`
	Server  ServerRef `yaml:"server,omitempty"`
}

// TimingRef expresses every simulated delay as a number of time units.
type TimingRef struct {
	Unit             string  `yaml:"unit,omitempty"`
	CUITCheck        float64 `yaml:"cuit_check,omitempty"`
	CompanyRegister  float64 `yaml:"company_register,omitempty"`
	ProjectLookup    float64 `yaml:"project_lookup,omitempty"`
	ContractEmission float64 `yaml:"contract_emission,omitempty"`
	ErrorDisplay     float64 `yaml:"error_display,omitempty"`
}

// ServerRef configures the HTTP mock backend.
type ServerRef struct {
	Port int `yaml:"port,omitempty"`
}

// Delays are the resolved durations derived from TimingRef.
type Delays struct {
	CUITCheck        time.Duration
	CompanyRegister  time.Duration
	ProjectLookup    time.Duration
	ContractEmission time.Duration
	ErrorDisplay     time.Duration
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Theme:   "auto",
		LogFile: "practicas.log",
		Timing: TimingRef{
			Unit:             "1s",
			CUITCheck:        1.5,
			CompanyRegister:  2.0,
			ProjectLookup:    1.5,
			ContractEmission: 2.0,
			ErrorDisplay:     5,
		},
		Server: ServerRef{Port: 8080},
	}
}

// Load reads path. A missing file yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates raw YAML against the config schema and decodes it over
// the defaults.
func Parse(data []byte) (*Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	problems, err := validateDocument(doc)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.unit(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) unit() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timing.Unit)
	if err != nil {
		return 0, fmt.Errorf("config: timing.unit: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: timing.unit must be positive")
	}
	return d, nil
}

// Delays converts the timing section into durations.
func (c *Config) Delays() Delays {
	unit, err := c.unit()
	if err != nil {
		unit = time.Second
	}
	return Delays{
		CUITCheck:        latency.Units(c.Timing.CUITCheck, unit),
		CompanyRegister:  latency.Units(c.Timing.CompanyRegister, unit),
		ProjectLookup:    latency.Units(c.Timing.ProjectLookup, unit),
		ContractEmission: latency.Units(c.Timing.ContractEmission, unit),
		ErrorDisplay:     latency.Units(c.Timing.ErrorDisplay, unit),
	}
}
