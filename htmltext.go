package htmltext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidWrapWidth = errors.New("invalid wrap width")
	ErrUnknownFormatter = errors.New("unknown formatter")
)

// FromString parses s as HTML and converts it to plain text.
func FromString(s string, opts *Options) (string, error) {
	return FromReader(strings.NewReader(s), opts)
}

// FromReader parses HTML from r and converts it to plain text.
func FromReader(r io.Reader, opts *Options) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return FromNode(doc, opts)
}

// FromNode converts an already-parsed document tree to plain text. The tree
// is only read, never mutated, so the same tree may be converted concurrently
// from multiple goroutines. A nil opts is equivalent to [DefaultOptions].
func FromNode(doc *html.Node, opts *Options) (string, error) {
	c, err := newConversion(opts)
	if err != nil {
		return "", err
	}

	var result string
	for _, selector := range c.opts.BaseElements {
		bases := locate(doc, c.opts, selector)
		result = c.walk(bases, startDepth(c.opts), result)
	}
	return strings.TrimRight(result, " \t\r\n"), nil
}

func startDepth(o *Options) int {
	if o.Limits.MaxDepth > 0 {
		return o.Limits.MaxDepth
	}
	return -1
}
