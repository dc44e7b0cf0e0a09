package extract

import (
	"fmt"
	"strings"
)

// Matcher locates complete SVG fragments in a document, in order of
// appearance. Implementations must be deterministic and side-effect free.
type Matcher interface {
	Find(doc string) []string
}

// Span is a half-open byte range [Start, End) of a fragment in a document.
type Span struct {
	Start, End int
}

// Locator is implemented by matchers that know where each fragment sits.
// Their fragments are replaced by position rather than by text.
type Locator interface {
	Locate(doc string) []Span
}

const (
	MatcherRegex     = "regex"
	MatcherTokenizer = "tokenizer"
)

// MatcherByName resolves a configured matcher name. Empty means regex.
func MatcherByName(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MatcherRegex:
		return RegexMatcher{}, nil
	case MatcherTokenizer:
		return TokenizerMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", name)
	}
}
