package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// fragmentPattern matches an <svg ...> start tag through the first following
// </svg>. The scan is textual: nested or malformed markup splits wrongly.
var fragmentPattern = regexp.MustCompile(`(?s)<svg[^>]*>.*?</svg>`)

var (
	idAttr     = regexp.MustCompile(`id="([^"]*)"`)
	widthAttr  = regexp.MustCompile(`width="([^"]*)"`)
	heightAttr = regexp.MustCompile(`height="([^"]*)"`)
	classAttr  = regexp.MustCompile(`class="([^"]*)"`)
)

// Asset is one extracted SVG: where it goes and what replaces it.
type Asset struct {
	Index    int
	Filename string
	Fragment string
	Tag      string
	// Span is set when the fragment's position in the document is known.
	Span *Span
}

// RegexMatcher finds fragments with the non-greedy textual pattern.
type RegexMatcher struct{}

func (RegexMatcher) Find(doc string) []string {
	return fragmentPattern.FindAllString(doc, -1)
}

// attr returns the first value of the quoted attribute anywhere in the
// fragment, including child elements and suffix matches like stroke-width.
func attr(re *regexp.Regexp, fragment string) (string, bool) {
	m := re.FindStringSubmatch(fragment)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SanitizeID replaces every rune that is not a letter, digit, underscore or
// hyphen with an underscore.
func SanitizeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// Filename picks svg_NNN.svg for the 1-based index unless the fragment
// carries an id.
func Filename(fragment string, index int) string {
	if id, ok := attr(idAttr, fragment); ok {
		return SanitizeID(id) + ".svg"
	}
	return fmt.Sprintf("svg_%03d.svg", index)
}

// BuildTag renders the <img> replacement. Attribute order is fixed:
// src, width, height, class, id, alt. Missing attributes are omitted.
func BuildTag(fragment, filename, dir string) string {
	var b strings.Builder
	b.WriteString(`<img src="`)
	b.WriteString(srcPath(dir, filename))
	b.WriteByte('"')
	for _, a := range []struct {
		name string
		re   *regexp.Regexp
	}{
		{"width", widthAttr},
		{"height", heightAttr},
		{"class", classAttr},
		{"id", idAttr},
	} {
		if v, ok := attr(a.re, fragment); ok {
			b.WriteString(" " + a.name + `="` + v + `"`)
		}
	}
	b.WriteString(` alt="`)
	b.WriteString(strings.ReplaceAll(filename, ".svg", ""))
	b.WriteString(`" />`)
	return b.String()
}

func srcPath(dir, filename string) string {
	dir = strings.TrimRight(strings.ReplaceAll(dir, `\`, "/"), "/")
	if dir == "" {
		return filename
	}
	return dir + "/" + filename
}

// Plan assigns filenames and replacement tags to fragments in order of
// appearance. Duplicate names are not disambiguated.
func Plan(fragments []string, dir string) []Asset {
	out := make([]Asset, 0, len(fragments))
	for i, frag := range fragments {
		name := Filename(frag, i+1)
		out = append(out, Asset{
			Index:    i + 1,
			Filename: name,
			Fragment: frag,
			Tag:      BuildTag(frag, name, dir),
		})
	}
	return out
}

// PlanSpans is Plan for located fragments; each asset keeps its span.
func PlanSpans(doc string, spans []Span, dir string) []Asset {
	fragments := make([]string, 0, len(spans))
	for _, sp := range spans {
		fragments = append(fragments, doc[sp.Start:sp.End])
	}
	out := Plan(fragments, dir)
	for i := range out {
		sp := spans[i]
		out[i].Span = &sp
	}
	return out
}

// Rewrite replaces, for each asset in order, the first remaining occurrence
// of its fragment text. Byte-identical fragments are consumed in document
// order, so every copy is replaced.
func Rewrite(doc string, assets []Asset) string {
	for _, a := range assets {
		doc = strings.Replace(doc, a.Fragment, a.Tag, 1)
	}
	return doc
}

// RewriteAt replaces each located asset at its span, working from the last
// span to the first so earlier offsets stay valid. Spans must not overlap.
// Assets without a span are left alone.
func RewriteAt(doc string, assets []Asset) string {
	located := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if a.Span != nil {
			located = append(located, a)
		}
	}
	sort.Slice(located, func(i, j int) bool { return located[i].Span.Start > located[j].Span.Start })
	for _, a := range located {
		doc = doc[:a.Span.Start] + a.Tag + doc[a.Span.End:]
	}
	return doc
}
