package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output destination values.
const (
	OutputCLI  = "cli"
	OutputFile = "file"
)

// ConfigFileName is the per-directory configuration file looked up in
// the scanned root.
const ConfigFileName = ".dirsummary.yaml"

// DefaultWarnSizeMB is the per-file size threshold, in megabytes, above
// which a read warning is emitted.
const DefaultWarnSizeMB = 10

// Config represents dirsummary configuration options
type Config struct {
	// Include is the list of include patterns applied to every file
	Include []string `yaml:"include"`

	// Exclude is the list of exclude patterns applied to every file
	Exclude []string `yaml:"exclude"`

	// IncludeHidden includes dotfiles and files under dot-directories
	IncludeHidden bool `yaml:"include_hidden"`

	// SummaryStats appends the statistics block to the report
	SummaryStats bool `yaml:"summary_stats"`

	// UseGitignore applies .gitignore rules found in the scanned root
	UseGitignore bool `yaml:"use_gitignore"`

	// Output selects the report destination ("cli" or "file")
	Output string `yaml:"output"`

	// WarnSizeMB is the per-file size threshold for read warnings, in megabytes
	WarnSizeMB int `yaml:"warn_size_mb"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Include:       nil,
		Exclude:       nil,
		IncludeHidden: false,
		SummaryStats:  false,
		UseGitignore:  false,
		Output:        OutputCLI,
		WarnSizeMB:    DefaultWarnSizeMB,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if len(yamlCfg.Include) > 0 {
		cfg.Include = yamlCfg.Include
	}
	if len(yamlCfg.Exclude) > 0 {
		cfg.Exclude = yamlCfg.Exclude
	}
	// Bool defaults are all false, so only explicit true values change
	// the merged result
	if yamlCfg.IncludeHidden {
		cfg.IncludeHidden = true
	}
	if yamlCfg.SummaryStats {
		cfg.SummaryStats = true
	}
	if yamlCfg.UseGitignore {
		cfg.UseGitignore = true
	}
	if yamlCfg.Output != "" {
		cfg.Output = yamlCfg.Output
	}
	if yamlCfg.WarnSizeMB != 0 {
		cfg.WarnSizeMB = yamlCfg.WarnSizeMB
	}

	return cfg, nil
}

// LoadConfigFromRoot loads configuration from .dirsummary.yaml in the
// scanned root directory
// If the directory or file doesn't exist, returns default configuration
// without error
func LoadConfigFromRoot(root string) (*Config, error) {
	return LoadConfig(filepath.Join(root, ConfigFileName))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(include, exclude *[]string, includeHidden, summaryStats, useGitignore *bool, output *string, warnSizeMB *int) {
	if include != nil {
		c.Include = *include
	}
	if exclude != nil {
		c.Exclude = *exclude
	}
	if includeHidden != nil {
		c.IncludeHidden = *includeHidden
	}
	if summaryStats != nil {
		c.SummaryStats = *summaryStats
	}
	if useGitignore != nil {
		c.UseGitignore = *useGitignore
	}
	if output != nil {
		c.Output = *output
	}
	if warnSizeMB != nil {
		c.WarnSizeMB = *warnSizeMB
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.Output != OutputCLI && c.Output != OutputFile {
		return fmt.Errorf("invalid output %q, must be one of: cli, file", c.Output)
	}

	if c.WarnSizeMB < 0 {
		return fmt.Errorf("warn_size_mb must be >= 0, got %d", c.WarnSizeMB)
	}

	for i, p := range c.Include {
		if p == "" {
			return fmt.Errorf("include pattern %d must not be empty", i+1)
		}
	}
	for i, p := range c.Exclude {
		if p == "" {
			return fmt.Errorf("exclude pattern %d must not be empty", i+1)
		}
	}

	return nil
}
