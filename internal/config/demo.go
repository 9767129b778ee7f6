package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical demo defaults file.
// This is the single source of truth for all default demo parameters.
const DefaultConfigPath = "config/demo.defaults.json"

// DemoConfig holds the tunable parameters shared by the demo CLIs and the
// report server. The schema matches the /api/params endpoint so the same
// JSON serves startup configuration and runtime updates. Fields omitted from
// the JSON keep their defaults, so partial configs are safe.
type DemoConfig struct {
	// Monte Carlo params
	MCSamples   *int     `json:"mc_samples,omitempty"`
	MCSeed      *uint64  `json:"mc_seed,omitempty"`
	MCConverge  *[]int   `json:"mc_converge,omitempty"`
	PotentialV0 *float64 `json:"potential_v0,omitempty"`
	PotentialMu *float64 `json:"potential_mu,omitempty"`

	// Evolution params
	EvolveDt    *float64 `json:"evolve_dt,omitempty"`
	EvolveSteps *int     `json:"evolve_steps,omitempty"`
	CouplingJ   *float64 `json:"coupling_j,omitempty"`
	FieldH      *float64 `json:"field_h,omitempty"`

	// Plot params
	PlotDir    *string `json:"plot_dir,omitempty"`
	PlotPoints *int    `json:"plot_points,omitempty"`
}

// Getter methods supply defaults for unset fields.

func (c *DemoConfig) GetMCSamples() int {
	if c != nil && c.MCSamples != nil {
		return *c.MCSamples
	}
	return 100000
}

func (c *DemoConfig) GetMCSeed() uint64 {
	if c != nil && c.MCSeed != nil {
		return *c.MCSeed
	}
	return 1
}

func (c *DemoConfig) GetMCConverge() []int {
	if c != nil && c.MCConverge != nil {
		return *c.MCConverge
	}
	return []int{1000, 10000, 100000}
}

func (c *DemoConfig) GetPotentialV0() float64 {
	if c != nil && c.PotentialV0 != nil {
		return *c.PotentialV0
	}
	return 1
}

func (c *DemoConfig) GetPotentialMu() float64 {
	if c != nil && c.PotentialMu != nil {
		return *c.PotentialMu
	}
	return 1
}

func (c *DemoConfig) GetEvolveDt() float64 {
	if c != nil && c.EvolveDt != nil {
		return *c.EvolveDt
	}
	return 0.02
}

func (c *DemoConfig) GetEvolveSteps() int {
	if c != nil && c.EvolveSteps != nil {
		return *c.EvolveSteps
	}
	return 400
}

func (c *DemoConfig) GetCouplingJ() float64 {
	if c != nil && c.CouplingJ != nil {
		return *c.CouplingJ
	}
	return 1
}

func (c *DemoConfig) GetFieldH() float64 {
	if c != nil && c.FieldH != nil {
		return *c.FieldH
	}
	return 0.7
}

func (c *DemoConfig) GetPlotDir() string {
	if c != nil && c.PlotDir != nil {
		return *c.PlotDir
	}
	return "plots"
}

func (c *DemoConfig) GetPlotPoints() int {
	if c != nil && c.PlotPoints != nil {
		return *c.PlotPoints
	}
	return 400
}

// Validate rejects values that would make a demo loop forever or divide by
// zero.
func (c *DemoConfig) Validate() error {
	if c.MCSamples != nil && *c.MCSamples < 2 {
		return fmt.Errorf("mc_samples must be at least 2, got %d", *c.MCSamples)
	}
	if c.MCConverge != nil {
		for _, n := range *c.MCConverge {
			if n < 2 {
				return fmt.Errorf("mc_converge entries must be at least 2, got %d", n)
			}
		}
	}
	if c.PotentialMu != nil && *c.PotentialMu <= 0 {
		return fmt.Errorf("potential_mu must be positive, got %g", *c.PotentialMu)
	}
	if c.EvolveDt != nil && *c.EvolveDt <= 0 {
		return fmt.Errorf("evolve_dt must be positive, got %g", *c.EvolveDt)
	}
	if c.EvolveSteps != nil && *c.EvolveSteps < 0 {
		return fmt.Errorf("evolve_steps must not be negative, got %d", *c.EvolveSteps)
	}
	if c.PlotPoints != nil && *c.PlotPoints < 2 {
		return fmt.Errorf("plot_points must be at least 2, got %d", *c.PlotPoints)
	}
	return nil
}

// EmptyDemoConfig returns a DemoConfig with all fields unset.
func EmptyDemoConfig() *DemoConfig {
	return &DemoConfig{}
}

// LoadDemoConfig loads a DemoConfig from a JSON file. The file must have a
// .json extension and stay under the max file size.
func LoadDemoConfig(path string) (*DemoConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyDemoConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical demo defaults from
// DefaultConfigPath. It searches for the file in the current directory and
// common parent directories. Panics if the file cannot be loaded, intended
// for test setup.
func MustLoadDefaultConfig() *DemoConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadDemoConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}
