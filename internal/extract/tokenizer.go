package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// TokenizerMatcher finds top-level <svg> elements with the HTML tokenizer.
// Nested <svg> elements stay inside their outer fragment, and "<svg" text in
// comments, scripts or styles is ignored. An unterminated element is dropped.
type TokenizerMatcher struct{}

func (m TokenizerMatcher) Find(doc string) []string {
	spans := m.Locate(doc)
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		out = append(out, doc[s.Start:s.End])
	}
	return out
}

// Locate returns the byte range of every top-level <svg> element.
func (TokenizerMatcher) Locate(doc string) []Span {
	var out []Span
	z := html.NewTokenizer(strings.NewReader(doc))
	offset, start, depth := 0, 0, 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF is the only error a strings.Reader produces.
			return out
		}
		n := len(z.Raw())
		name, _ := z.TagName()
		isSVG := string(name) == "svg"
		switch {
		case tt == html.StartTagToken && isSVG:
			if depth == 0 {
				start = offset
			}
			depth++
		case tt == html.SelfClosingTagToken && isSVG && depth == 0:
			out = append(out, Span{Start: offset, End: offset + n})
		case tt == html.EndTagToken && isSVG && depth > 0:
			depth--
			if depth == 0 {
				out = append(out, Span{Start: start, End: offset + n})
			}
		}
		offset += n
	}
}
