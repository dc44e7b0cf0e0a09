package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/svgextract/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, showVersion, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}
	if showVersion {
		fmt.Printf("svgextract %s (%s, %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// parseConfig layers defaults, an optional config file, the environment
// (including dotenv files) and finally explicitly set flags. A positional
// argument names the input file and wins over -input.
func parseConfig(fs *flag.FlagSet, args []string) (app.Config, bool, error) {
	var (
		flags       = app.DefaultConfig()
		configPath  string
		envFiles    string
		showVersion bool
	)
	fs.StringVar(&flags.InputPath, "input", app.DefaultInputPath, "Path to the HTML file to rewrite in place")
	fs.StringVar(&flags.OutDir, "out.dir", app.DefaultOutDir, "Directory for extracted SVG files; also the img src prefix")
	fs.StringVar(&flags.Matcher, "match", app.DefaultMatcher, "Fragment matcher: regex or tokenizer")
	fs.StringVar(&flags.Charset, "charset", app.DefaultCharset, "Input file encoding (WHATWG label)")
	fs.StringVar(&flags.ManifestPath, "manifest", "", "Optional path for a JSON manifest of extracted files")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "Report what would be extracted without writing anything")
	fs.BoolVar(&flags.Verbose, "v", false, "Verbose logging")
	fs.StringVar(&configPath, "config", os.Getenv("SVGEXTRACT_CONFIG"), "Optional YAML or JSON config file")
	fs.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load; missing files are ignored")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return app.Config{}, false, err
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		return app.Config{}, false, fmt.Errorf("load env: %w", err)
	}

	cfg := app.DefaultConfig()
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return app.Config{}, false, fmt.Errorf("load config %s: %w", configPath, err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvOverrides(&cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = flags.InputPath
		case "out.dir":
			cfg.OutDir = flags.OutDir
		case "match":
			cfg.Matcher = flags.Matcher
		case "charset":
			cfg.Charset = flags.Charset
		case "manifest":
			cfg.ManifestPath = flags.ManifestPath
		case "dry-run":
			cfg.DryRun = flags.DryRun
		case "v":
			cfg.Verbose = flags.Verbose
		}
	})
	if fs.NArg() > 0 {
		cfg.InputPath = fs.Arg(0)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		return app.Config{}, false, err
	}
	return cfg, showVersion, nil
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	_, err = a.Run(ctx)
	return err
}
