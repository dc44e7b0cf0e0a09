package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/svgextract/internal/charset"
	"github.com/hyperifyio/svgextract/internal/extract"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	OutDir string `yaml:"outDir" json:"outDir"`

	Matcher string `yaml:"matcher" json:"matcher"`
	Charset string `yaml:"charset" json:"charset"`

	Manifest string `yaml:"manifest" json:"manifest"`

	DryRun  bool `yaml:"dryRun" json:"dryRun"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays the non-empty values of fc onto cfg. Callers
// apply env and explicit flags afterwards so those win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if fc.OutDir != "" {
		cfg.OutDir = fc.OutDir
	}
	if fc.Matcher != "" {
		cfg.Matcher = fc.Matcher
	}
	if fc.Charset != "" {
		cfg.Charset = fc.Charset
	}
	if fc.Manifest != "" {
		cfg.ManifestPath = fc.Manifest
	}
	if fc.DryRun {
		cfg.DryRun = true
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return errors.New("config: output directory is required")
	}
	if _, err := extract.MatcherByName(cfg.Matcher); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := charset.Lookup(cfg.Charset); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
