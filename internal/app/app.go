package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/svgextract/internal/charset"
	"github.com/hyperifyio/svgextract/internal/extract"
)

// ErrInputNotFound is returned when the input HTML file does not exist. The
// returned error also matches fs.ErrNotExist.
var ErrInputNotFound = errors.New("input file not found")

// Report summarizes one extraction run.
type Report struct {
	Count int
	Files []string
}

type App struct {
	cfg     Config
	matcher extract.Matcher
	codec   charset.Codec
}

func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	m, err := extract.MatcherByName(cfg.Matcher)
	if err != nil {
		return nil, err
	}
	codec, err := charset.Lookup(cfg.Charset)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, matcher: m, codec: codec}, nil
}

func (a *App) Close() {
	// nothing yet
}

// Run extracts every inline SVG of the input file into OutDir and rewrites
// the input in place. The input is only overwritten after all SVG files were
// written; SVG files written before a failure remain on disk.
func (a *App) Run(ctx context.Context) (Report, error) {
	// 1) Read and decode the document before touching the filesystem
	raw, err := os.ReadFile(a.cfg.InputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Report{}, fmt.Errorf("%w: %s: %w", ErrInputNotFound, a.cfg.InputPath, err)
		}
		return Report{}, fmt.Errorf("read input: %w", err)
	}
	doc, err := a.codec.Decode(raw)
	if err != nil {
		return Report{}, fmt.Errorf("decode input: %w", err)
	}

	// 2) Find fragments and plan filenames and tags
	var assets []extract.Asset
	if loc, ok := a.matcher.(extract.Locator); ok {
		assets = extract.PlanSpans(doc, loc.Locate(doc), a.cfg.OutDir)
	} else {
		assets = extract.Plan(a.matcher.Find(doc), a.cfg.OutDir)
	}
	log.Info().Int("count", len(assets)).Str("input", a.cfg.InputPath).Msg("found SVG elements")

	report := Report{Count: len(assets), Files: make([]string, 0, len(assets))}
	for _, as := range assets {
		report.Files = append(report.Files, as.Filename)
	}

	if a.cfg.DryRun {
		for _, as := range assets {
			log.Info().Str("file", filepath.Join(a.cfg.OutDir, as.Filename)).Msg("would extract")
		}
		log.Info().Int("count", report.Count).Msg("dry run; nothing written")
		return report, nil
	}

	// 3) Write each fragment verbatim
	if err := os.MkdirAll(a.cfg.OutDir, 0o755); err != nil {
		return report, fmt.Errorf("create output dir: %w", err)
	}
	for _, as := range assets {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		path := filepath.Join(a.cfg.OutDir, as.Filename)
		if err := os.WriteFile(path, []byte(as.Fragment), 0o644); err != nil {
			return report, fmt.Errorf("write svg %s: %w", path, err)
		}
		log.Info().Str("file", as.Filename).Msg("extracted")
		log.Debug().Int("index", as.Index).Str("tag", as.Tag).Msg("replacement")
	}

	// 4) Replace fragments and persist the document once
	rewrite := extract.Rewrite
	if _, ok := a.matcher.(extract.Locator); ok {
		rewrite = extract.RewriteAt
	}
	out, err := a.codec.Encode(rewrite(doc, assets))
	if err != nil {
		return report, fmt.Errorf("encode output: %w", err)
	}
	if err := os.WriteFile(a.cfg.InputPath, out, 0o644); err != nil {
		return report, fmt.Errorf("write output: %w", err)
	}
	if err := a.writeManifest(assets); err != nil {
		return report, err
	}

	log.Info().Int("count", report.Count).Str("dir", a.cfg.OutDir).Msg("completed")
	log.Info().Str("path", a.cfg.InputPath).Msg("updated with img tags")
	return report, nil
}

func (a *App) writeManifest(assets []extract.Asset) error {
	if a.cfg.ManifestPath == "" {
		return nil
	}
	meta := manifestMeta{
		Input:       a.cfg.InputPath,
		OutDir:      a.cfg.OutDir,
		Matcher:     a.cfg.Matcher,
		Charset:     a.codec.Name,
		Count:       len(assets),
		DryRun:      a.cfg.DryRun,
		GeneratedAt: time.Now().UTC(),
	}
	if err := writeManifest(a.cfg.ManifestPath, meta, assets); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	log.Debug().Str("path", a.cfg.ManifestPath).Msg("wrote manifest")
	return nil
}
