// Package charset converts input documents between their on-disk encoding
// and the UTF-8 text the extractor works on.
package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 is returned when UTF-8 input contains invalid sequences.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Codec decodes and re-encodes one named charset.
type Codec struct {
	Name string
	enc  encoding.Encoding
}

// Lookup resolves a WHATWG encoding label such as "utf-8", "latin1" or
// "windows-1252". An empty name means UTF-8.
func Lookup(name string) (Codec, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return Codec{}, fmt.Errorf("charset %q: %w", name, err)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	return Codec{Name: canonical, enc: enc}, nil
}

func (c Codec) isUTF8() bool {
	return c.enc == nil || c.enc == unicode.UTF8
}

// Decode converts raw file bytes into UTF-8 text. UTF-8 input is decoded
// strictly and returned unchanged.
func (c Codec) Decode(b []byte) (string, error) {
	if c.isUTF8() {
		if !utf8.Valid(b) {
			return "", ErrInvalidUTF8
		}
		return string(b), nil
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", c.Name, err)
	}
	return string(out), nil
}

// Encode converts UTF-8 text back into the codec's charset. Runes the
// charset cannot represent are an error.
func (c Codec) Encode(s string) ([]byte, error) {
	if c.isUTF8() {
		return []byte(s), nil
	}
	out, err := c.enc.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.Name, err)
	}
	return []byte(out), nil
}
