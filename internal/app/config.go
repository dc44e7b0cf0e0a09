package app

import "github.com/hyperifyio/svgextract/internal/extract"

// Defaults for flags and unset config fields.
const (
	DefaultInputPath = "index.html"
	DefaultOutDir    = "svgs"
	DefaultMatcher   = extract.MatcherRegex
	DefaultCharset   = "utf-8"
)

// Config holds runtime configuration for the application.
type Config struct {
	InputPath string
	// OutDir is created relative to the working directory and is also the
	// src prefix of generated <img> tags.
	OutDir string

	Matcher string
	Charset string

	// ManifestPath, when set, receives a JSON sidecar describing the run.
	ManifestPath string

	// Behavior
	DryRun  bool
	Verbose bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		InputPath: DefaultInputPath,
		OutDir:    DefaultOutDir,
		Matcher:   DefaultMatcher,
		Charset:   DefaultCharset,
	}
}
