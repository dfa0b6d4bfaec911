package htmltext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// A run of up to four control-whitespace characters followed by a
	// non-newline whitespace character marks a word boundary that must
	// survive wrapping, so e.g. the space in "Hello <a>" is not dropped at
	// the start of the anchor's wrapped text.
	leadingSpaceRE  = regexp.MustCompile(`^[\r\n\t]{0,4}[^\S\n\r]`)
	trailingSpaceRE = regexp.MustCompile(`[^\S\n\r][\r\n\t]{0,4}$`)

	wordsAndNewlinesRE = regexp.MustCompile(`\S+|\n`)
	wordsRE            = regexp.MustCompile(`\S+`)
)

// wrapText reflows text into lines no wider than o.Wrap.Width, with offset
// columns of the first line already occupied by earlier output. Widths are
// counted in bytes. The layout state lives entirely on the stack of this
// call, so identical inputs always produce identical output.
func wrapText(text string, o *Options, offset int) string {
	if text == "" {
		return ""
	}
	width := o.Wrap.Width

	var tokens []string
	if o.Wrap.PreserveNewlines {
		tokens = wordsAndNewlinesRE.FindAllString(text, -1)
	} else {
		tokens = wordsRE.FindAllString(text, -1)
	}

	var lines []string
	var line []string
	lineLen := offset

	flush := func() {
		lines = append(lines, strings.Join(line, " "))
		line = nil
		lineLen = 0
	}

	if leadingSpaceRE.MatchString(text) {
		line = append(line, "")
		lineLen++
	}

	for _, tok := range tokens {
		if tok == "\n" {
			flush()
			continue
		}
		wlen := len(tok)
		cand := lineLen + wlen
		if len(line) > 0 {
			cand++ // joining space
		}
		switch {
		case cand <= width:
			line = append(line, tok)
			lineLen = cand
		case wlen > width && !o.Wrap.LongWordSplit.ForceWrapOnLimit:
			// Unsplittable word: it gets its own line and may exceed the
			// width.
			if lineLen > 0 {
				flush()
			}
			line = append(line, tok)
			lineLen = wlen
		case wlen > width:
			if lineLen > 0 {
				flush()
			}
			parts := splitLongWord(tok, width, o.Wrap.LongWordSplit.WrapCharacters)
			lines = append(lines, parts[:len(parts)-1]...)
			last := parts[len(parts)-1]
			line = append(line, last)
			lineLen = len(last)
		default:
			flush()
			line = append(line, tok)
			lineLen = wlen
		}
	}
	flush()

	out := strings.Join(lines, "\n")
	if trailingSpaceRE.MatchString(text) {
		if !strings.HasSuffix(out, " ") {
			out += " "
		}
	} else {
		out = strings.TrimRight(out, " ")
	}
	return out
}

// splitLongWord splits a word longer than max into segments of at most max
// bytes, preferring to split just after the wrap character nearest to the
// boundary and falling back to a hard split. Hard splits back off to a rune
// boundary so multi-byte characters are never cut apart.
func splitLongWord(word string, max int, wrapCharacters []string) []string {
	var parts []string
	for len(word) > max {
		head := word[:runeBoundary(word, max)]
		split := -1
		for _, wc := range wrapCharacters {
			if i := strings.LastIndex(head, wc); i > split {
				split = i
			}
		}
		if split >= 0 {
			parts = append(parts, word[:split+1])
			word = word[split+1:]
		} else {
			parts = append(parts, head)
			word = word[len(head):]
		}
	}
	return append(parts, word)
}

// runeBoundary returns the largest index <= max that does not cut a rune,
// and at least one rune's worth of bytes so progress is always made.
func runeBoundary(s string, max int) int {
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	if max == 0 {
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	return max
}
