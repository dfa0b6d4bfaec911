// Package htmltext converts parsed HTML documents into word-wrapped plain
// text.
//
// The central entry points are [FromString], [FromReader], and [FromNode],
// which take a document and an optional [Options] value and return the
// rendered text. Parsing is delegated to golang.org/x/net/html; the converter
// only reads the resulting node tree and never mutates it.
//
//	text, err := htmltext.FromString("<p>Hello</p><p>World</p>", nil)
//	// text == "Hello\n\nWorld"
//
// # Options
//
// A nil Options uses [DefaultOptions]: traversal starts at the document
// body and text wraps at 80 columns. A caller-supplied Options is merged
// over the defaults once per call, so a partial value only overrides what
// it names:
//
//	text, err := htmltext.FromString(doc, &htmltext.Options{
//		BaseElements: []string{"div.article#main"},
//		Wrap:         htmltext.WrapOptions{Width: 72},
//	})
//
// Base elements are located by the compact selector grammar
// "tagname(.class)*(#id)*". When a selector matches nothing the conversion
// produces no text for it, unless [Options.ReturnWholeTreeIfBaseNotFound]
// is set.
//
// # Formatters
//
// Each tag is rendered by a [Formatter] resolved through
// [Options.TagFormatters]; unmatched tags fall back to the empty-string
// entry, which renders children in place. The built-in kinds cover
// paragraphs, headings, anchors, images, lists, tables, block quotes,
// preformatted text, and rules. Custom formatters implement [Formatter],
// are registered under a new [FormatterID] via [Options.Formatters], and
// receive a walk callback to recurse into child nodes:
//
//	type shout struct{}
//
//	func (shout) Format(c *htmltext.Conversion, n *html.Node, walk htmltext.WalkFunc) string {
//		return strings.ToUpper(walk(htmltext.Children(n), ""))
//	}
//
// # Wrapping
//
// Text is reflowed by a width-bounded layout engine. [WrapOptions] selects
// the target width, whether source newlines are preserved, and what happens
// to words longer than a line: left intact on their own line, or split at
// the configured wrap characters.
//
// # Limits
//
// [Limits] bounds the traversal by depth and by siblings per level.
// Truncation is a designed degradation, not an error: cut branches are
// marked with the configured ellipsis and the conversion carries on.
//
// # Errors
//
// The converter never fails on malformed trees. The only errors are
// configuration contract violations, reported up front:
//
//   - [ErrInvalidWrapWidth] — negative wrap width
//   - [ErrUnknownFormatter] — a tag mapping references an unregistered id
package htmltext
