package htmltext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// WalkFunc recurses into nodes with the remaining depth budget already
// decremented, appending to acc and returning the new accumulated result.
type WalkFunc func(nodes []*html.Node, acc string) string

// A Formatter renders one element to text. The walk callback recurses into
// child nodes; formatters that wrap their own text can ask the Conversion
// for the current line position.
type Formatter interface {
	Format(c *Conversion, n *html.Node, walk WalkFunc) string
}

// truncateFunc runs in place of descending when the depth budget is spent.
type truncateFunc func(nodes []*html.Node, o *Options, acc string) string

func appendEllipsis(_ []*html.Node, o *Options, acc string) string {
	return acc + o.Limits.Ellipsis
}

// Conversion carries the state of one conversion call: the normalized
// options, the effective formatter registry, and the single mutable cursor
// tracking how many bytes of the current output line are already occupied.
// A Conversion is owned by exactly one call and is not safe for concurrent
// use; run concurrent conversions with separate Conversions instead.
type Conversion struct {
	opts       *Options
	formatters map[FormatterID]Formatter
	truncate   truncateFunc
	lineLen    int
}

func newConversion(opts *Options) (*Conversion, error) {
	o, registry, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	return &Conversion{opts: o, formatters: registry, truncate: appendEllipsis}, nil
}

// Options returns the normalized options in effect for this conversion.
func (c *Conversion) Options() *Options { return c.opts }

// LineLength returns the number of bytes emitted since the last newline in
// the output built so far.
func (c *Conversion) LineLength() int { return c.lineLen }

// WrapText word-wraps text at the configured width, accounting for the
// content already emitted on the current output line.
func (c *Conversion) WrapText(text string) string {
	return wrapText(text, c.opts, c.lineLen)
}

// Children returns the child nodes of n as a slice, for handing to a
// [WalkFunc].
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, child)
	}
	return out
}

// walk traverses nodes depth-first, dispatching each element to its
// formatter and merging the produced chunks into acc. A depth of 0 invokes
// the truncation handler instead of descending; a negative depth is
// unbounded.
func (c *Conversion) walk(nodes []*html.Node, depth int, acc string) string {
	if depth == 0 {
		return c.truncate(nodes, c.opts, acc)
	}
	next := depth - 1
	if depth < 0 {
		next = -1
	}

	truncated := false
	if max := c.opts.Limits.MaxChildNodes; max > 0 && len(nodes) > max {
		nodes = nodes[:max]
		truncated = true
	}

	recurse := func(children []*html.Node, sub string) string {
		return c.walk(children, next, sub)
	}

	for _, n := range nodes {
		switch n.Type {
		case html.DocumentNode:
			// The parser's document wrapper is structural, not a level of
			// the tree; descend without spending depth.
			acc = c.walk(Children(n), depth, acc)
		case html.ElementNode:
			tf, ok := c.opts.TagFormatters[n.Data]
			if !ok {
				tf = c.opts.TagFormatters[""]
			}
			chunk := c.formatters[tf.Formatter].Format(c, n, recurse)
			acc = c.append(acc, chunk, tf.Inline)
		case html.TextNode:
			// htmlparser-style trees represent some line endings as a bare
			// CRLF text node; it carries no content.
			if n.Data == "\r\n" {
				continue
			}
			acc = c.append(acc, c.WrapText(n.Data), true)
		}
	}

	if truncated {
		acc = c.append(acc, c.opts.Limits.Ellipsis, false)
	}
	return acc
}

// append merges a produced chunk into the accumulated result. Inline chunks
// following whitespace have their leading whitespace stripped; trailing
// whitespace is deliberately left alone so a chunk like "Hello " still
// separates itself from what follows. Block chunks are appended verbatim.
func (c *Conversion) append(acc, chunk string, inline bool) string {
	if inline && endsInWhitespace(acc) {
		chunk = strings.TrimLeftFunc(chunk, unicode.IsSpace)
	}
	if chunk == "" {
		return acc
	}
	acc += chunk
	c.lineLen = len(acc) - (strings.LastIndexByte(acc, '\n') + 1)
	return acc
}

func endsInWhitespace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}
