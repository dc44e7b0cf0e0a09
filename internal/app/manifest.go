package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"github.com/hyperifyio/svgextract/internal/extract"
)

// manifestEntry is a compact record of a single extracted SVG.
type manifestEntry struct {
	Index  int    `json:"index"`
	File   string `json:"file"`
	SHA256 string `json:"sha256"`
	Bytes  int    `json:"bytes"`
}

// manifestMeta captures high-level run details.
type manifestMeta struct {
	Input       string    `json:"input"`
	OutDir      string    `json:"out_dir"`
	Matcher     string    `json:"matcher"`
	Charset     string    `json:"charset"`
	Count       int       `json:"count"`
	DryRun      bool      `json:"dry_run"`
	GeneratedAt time.Time `json:"generated_at"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of the given text.
func computeSHA256Hex(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

func buildManifestEntries(assets []extract.Asset) []manifestEntry {
	out := make([]manifestEntry, 0, len(assets))
	for _, a := range assets {
		out = append(out, manifestEntry{
			Index:  a.Index,
			File:   a.Filename,
			SHA256: computeSHA256Hex(a.Fragment),
			Bytes:  len(a.Fragment),
		})
	}
	return out
}

// marshalManifestJSON encodes a machine-readable sidecar manifest.
func marshalManifestJSON(meta manifestMeta, entries []manifestEntry) ([]byte, error) {
	payload := struct {
		Meta   manifestMeta    `json:"meta"`
		Assets []manifestEntry `json:"assets"`
	}{Meta: meta, Assets: entries}
	return json.MarshalIndent(payload, "", "  ")
}

func writeManifest(path string, meta manifestMeta, assets []extract.Asset) error {
	data, err := marshalManifestJSON(meta, buildManifestEntries(assets))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
