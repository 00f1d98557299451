package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for classgen
type Config struct {
	Package    string           `yaml:"package"`
	ClassName  string           `yaml:"class_name"`
	Input      string           `yaml:"input"`
	Output     string           `yaml:"output"`
	Formatting FormattingConfig `yaml:"formatting"`
	Naming     NamingConfig     `yaml:"naming"`
	Demo       DemoConfig       `yaml:"demo"`
	Dev        DevConfig        `yaml:"dev"`
}

// FormattingConfig controls code formatting options
type FormattingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// NamingConfig controls field naming
type NamingConfig struct {
	PascalCaseFields bool              `yaml:"pascal_case_fields"`
	FieldMappings    map[string]string `yaml:"field_mappings"`
}

// DemoConfig controls the round-trip demonstration step
type DemoConfig struct {
	Enabled bool `yaml:"enabled"`
	Indent  bool `yaml:"indent"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Package: "main",
		Input:   "default.json",
		Output:  "generated_class.go",
		Formatting: FormattingConfig{
			Enabled: true,
		},
		Naming: NamingConfig{
			PascalCaseFields: true,
			FieldMappings:    make(map[string]string),
		},
		Demo: DemoConfig{
			Enabled: true,
			Indent:  true,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".classgen.yml", ".classgen.yaml", "classgen.yml", "classgen.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// GetFieldName returns the Go field name for a JSON key, applying naming rules
func (c *Config) GetFieldName(jsonKey string) string {
	// Check custom mappings first
	if mapped, exists := c.Naming.FieldMappings[jsonKey]; exists {
		return mapped
	}

	if c.Naming.PascalCaseFields {
		name := strcase.ToCamel(jsonKey)
		// Purely symbolic keys (e.g. "_") convert to nothing; fall back to a
		// valid identifier so emission can still report a collision cleanly.
		if name == "" {
			return "Field"
		}
		return name
	}

	return jsonKey
}
