package app

import (
	"os"
	"strings"
)

// ApplyEnvOverrides overrides cfg fields with environment variables when
// they are set. Env takes precedence over a config file; explicit flags are
// applied after this and win over both.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv("SVGEXTRACT_INPUT"); v != "" {
		cfg.InputPath = v
	}
	if v := os.Getenv("SVGEXTRACT_OUT_DIR"); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv("SVGEXTRACT_MATCHER"); v != "" {
		cfg.Matcher = v
	}
	if v := os.Getenv("SVGEXTRACT_CHARSET"); v != "" {
		cfg.Charset = v
	}
	if v := os.Getenv("SVGEXTRACT_MANIFEST"); v != "" {
		cfg.ManifestPath = v
	}

	// Booleans override when env present and truthy/falsey
	setBool := func(dst *bool, envKey string) {
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			switch s {
			case "1", "true", "yes", "on":
				*dst = true
			case "0", "false", "no", "off":
				*dst = false
			}
		}
	}
	setBool(&cfg.DryRun, "DRY_RUN")
	setBool(&cfg.Verbose, "VERBOSE")
}
