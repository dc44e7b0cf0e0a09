package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizerMatcher_KeepsNestedSVGTogether(t *testing.T) {
	doc := `<div><svg id="outer"><svg id="inner"><g/></svg></svg></div>`
	got := TokenizerMatcher{}.Find(doc)
	want := []string{`<svg id="outer"><svg id="inner"><g/></svg></svg>`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragments mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerMatcher_IgnoresScriptAndComments(t *testing.T) {
	doc := `<script>var s = "<svg></svg>";</script><!-- <svg></svg> --><svg id="x">
<path d="M0 0"/>
</svg>`
	got := TokenizerMatcher{}.Find(doc)
	want := []string{"<svg id=\"x\">\n<path d=\"M0 0\"/>\n</svg>"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragments mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerMatcher_PreservesRawBytes(t *testing.T) {
	doc := `<P>x</P><SVG Width="4" id="Upper"><Path D="m0 0"/></SVG><svg/>`
	got := TokenizerMatcher{}.Find(doc)
	want := []string{`<SVG Width="4" id="Upper"><Path D="m0 0"/></SVG>`, `<svg/>`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragments mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerMatcher_DropsUnterminated(t *testing.T) {
	if got := (TokenizerMatcher{}).Find(`<svg><g>`); len(got) != 0 {
		t.Fatalf("expected no fragments, got %q", got)
	}
}

func TestTokenizerMatcher_MatchesRegexOnSimpleInput(t *testing.T) {
	doc := `<a><svg class="i"><g/></svg></a><svg><rect/></svg>`
	if diff := cmp.Diff(RegexMatcher{}.Find(doc), TokenizerMatcher{}.Find(doc)); diff != "" {
		t.Fatalf("matchers disagree (-regex +tokenizer):\n%s", diff)
	}
}

func TestTokenizerMatcher_LocateReturnsByteRanges(t *testing.T) {
	doc := `<p>x</p><svg id="a"><g/></svg><br><svg/>`
	got := TokenizerMatcher{}.Locate(doc)
	want := []Span{{Start: 8, End: 30}, {Start: 34, End: 40}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spans mismatch (-want +got):\n%s", diff)
	}
}

// A copy of the fragment inside a comment must survive; only the element is
// replaced.
func TestRewriteAt_LeavesCommentedCopy(t *testing.T) {
	doc := `<!--<svg id="a"></svg>--><svg id="a"></svg>`
	assets := PlanSpans(doc, TokenizerMatcher{}.Locate(doc), "svgs")
	if len(assets) != 1 || assets[0].Span == nil {
		t.Fatalf("expected one located asset, got %+v", assets)
	}
	got := RewriteAt(doc, assets)
	want := `<!--<svg id="a"></svg>--><img src="svgs/a.svg" id="a" alt="a" />`
	if got != want {
		t.Fatalf("rewrite=%q\nwant %q", got, want)
	}
}

func TestRewriteAt_ReplacesEverySpanInOrder(t *testing.T) {
	doc := `A<svg><g/></svg>B<svg><g/></svg>C<svg class="x"></svg>`
	assets := PlanSpans(doc, TokenizerMatcher{}.Locate(doc), "svgs")
	got := RewriteAt(doc, assets)
	want := `A<img src="svgs/svg_001.svg" alt="svg_001" />B<img src="svgs/svg_002.svg" alt="svg_002" />C<img src="svgs/svg_003.svg" class="x" alt="svg_003" />`
	if got != want {
		t.Fatalf("rewrite=%q\nwant %q", got, want)
	}
}

func TestRewriteAt_SkipsAssetsWithoutSpan(t *testing.T) {
	doc := `<svg></svg>`
	if got := RewriteAt(doc, Plan([]string{doc}, "svgs")); got != doc {
		t.Fatalf("unlocated asset should not be applied, got %q", got)
	}
}
