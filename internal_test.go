package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func wrapOpts(width int, preserve bool) *Options {
	o := DefaultOptions()
	o.Wrap.Width = width
	o.Wrap.PreserveNewlines = preserve
	return o
}

// --- Wrap engine ---

func TestWrapEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", wrapText("", wrapOpts(80, false), 0))
}

func TestWrapIdentityWhenShort(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hello world", wrapText("hello world", wrapOpts(80, false), 0))
}

func TestWrapIdempotent(t *testing.T) {
	t.Parallel()
	o := wrapOpts(12, true)
	once := wrapText("the quick brown fox jumps over", o, 0)
	assert.Equal(t, "the quick\nbrown fox\njumps over", once)
	assert.Equal(t, once, wrapText(once, o, 0))
}

func TestWrapFirstLineOffset(t *testing.T) {
	t.Parallel()
	// Six columns already occupied: the first word no longer fits there.
	assert.Equal(t, "\nhello\nworld", wrapText("hello world", wrapOpts(10, false), 6))
}

func TestWrapLeadingSpacePreserved(t *testing.T) {
	t.Parallel()
	assert.Equal(t, " hello", wrapText(" hello", wrapOpts(80, false), 0))
}

func TestWrapTrailingSpacePreserved(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hello ", wrapText("hello ", wrapOpts(80, false), 0))
}

func TestWrapNewlineModes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b", wrapText("a\nb", wrapOpts(80, false), 0))
	assert.Equal(t, "a\nb", wrapText("a\nb", wrapOpts(80, true), 0))
}

func TestWrapLongWordKeptWhole(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "supercalifragilistic", wrapText("supercalifragilistic", wrapOpts(10, false), 0))
}

func TestSplitLongWordAtWrapCharacter(t *testing.T) {
	t.Parallel()
	parts := splitLongWord("super-duper-long-word", 10, []string{"-"})
	assert.Equal(t, []string{"super-", "duper-", "long-word"}, parts)
}

func TestSplitLongWordHardFallback(t *testing.T) {
	t.Parallel()
	parts := splitLongWord("abcdefghij", 4, nil)
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, parts)
}

func TestSplitLongWordRuneBoundary(t *testing.T) {
	t.Parallel()
	// Each character is three bytes; a hard split at four bytes must back
	// off to the previous rune boundary instead of cutting one apart.
	parts := splitLongWord("你好世界", 4, nil)
	assert.Equal(t, []string{"你", "好", "世", "界"}, parts)
}

// --- Selector and locator ---

func TestParseSelector(t *testing.T) {
	t.Parallel()
	sel := parseSelector("div.article.wide#main")
	assert.Equal(t, "div", sel.element)
	assert.Equal(t, []string{"article", "wide"}, sel.classes)
	assert.Equal(t, []string{"main"}, sel.ids)
}

func TestSelectorMatches(t *testing.T) {
	t.Parallel()
	n := &html.Node{
		Type: html.ElementNode,
		Data: "div",
		Attr: []html.Attribute{
			{Key: "class", Val: "article extra"},
			{Key: "id", Val: "main"},
		},
	}
	assert.True(t, parseSelector("div.article#main").matches(n))
	assert.True(t, parseSelector("div").matches(n))
	assert.False(t, parseSelector("div.missing").matches(n))
	assert.False(t, parseSelector("span.article").matches(n))
}

func TestLocateFallback(t *testing.T) {
	t.Parallel()
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.ElementNode, Data: "p"})

	o := DefaultOptions()
	assert.Nil(t, locate(doc, o, "div.missing"))

	o.ReturnWholeTreeIfBaseNotFound = true
	assert.Equal(t, []*html.Node{doc}, locate(doc, o, "div.missing"))
}

// --- Numbering utilities ---

func TestAlphabeticSequence(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", alphabeticSequence(0))
	assert.Equal(t, "a", alphabeticSequence(1))
	assert.Equal(t, "z", alphabeticSequence(26))
	assert.Equal(t, "aa", alphabeticSequence(27))
	assert.Equal(t, "ab", alphabeticSequence(28))
	assert.Equal(t, "aaa", alphabeticSequence(703))
}

func TestRomanNumeral(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", romanNumeral(0))
	assert.Equal(t, "i", romanNumeral(1))
	assert.Equal(t, "iv", romanNumeral(4))
	assert.Equal(t, "xiv", romanNumeral(14))
	assert.Equal(t, "mcmlxxxix", romanNumeral(1989))
	assert.Equal(t, "mmxxiv", romanNumeral(2024))
}

// --- Options normalization ---

func TestNormalizedDefaults(t *testing.T) {
	t.Parallel()
	o, registry, err := (&Options{}).normalized()
	require.NoError(t, err)
	assert.Equal(t, []string{"body"}, o.BaseElements)
	assert.Equal(t, 80, o.Wrap.Width)
	assert.Equal(t, "...", o.Limits.Ellipsis)
	assert.Contains(t, registry, FormatterParagraph)
}

func TestNormalizedOverlaysTagMap(t *testing.T) {
	t.Parallel()
	o, _, err := (&Options{
		TagFormatters: map[string]TagFormat{"a": {Formatter: FormatterSkip}},
	}).normalized()
	require.NoError(t, err)
	assert.Equal(t, FormatterSkip, o.TagFormatters["a"].Formatter)
	assert.Equal(t, FormatterParagraph, o.TagFormatters["p"].Formatter)
}

// --- Walker internals ---

func TestAppendTrimsInlineAfterWhitespace(t *testing.T) {
	t.Parallel()
	c := &Conversion{}
	assert.Equal(t, "foo bar", c.append("foo ", " bar", true))
	assert.Equal(t, 7, c.lineLen)
}

func TestAppendKeepsBlockVerbatim(t *testing.T) {
	t.Parallel()
	c := &Conversion{}
	assert.Equal(t, "foo \n\nbar", c.append("foo ", "\n\nbar", false))
	assert.Equal(t, 3, c.lineLen)
}

func TestTruncateAppendsEllipsis(t *testing.T) {
	t.Parallel()
	c, err := newConversion(nil)
	require.NoError(t, err)
	assert.Equal(t, "x...", c.truncate(nil, c.opts, "x"))
}
