package htmltext

import "fmt"

// Options controls a single conversion. The zero value of any field means
// "use the default"; see [DefaultOptions] for the documented defaults.
// Options are read-only for the duration of a conversion, so one Options
// value may be shared by concurrent conversions.
type Options struct {
	// BaseElements lists selectors ("tag.class#id") identifying where
	// traversal starts, processed in order with their outputs concatenated.
	BaseElements []string `yaml:"baseElements"`

	// Limits bounds the traversal.
	Limits Limits `yaml:"limits"`

	// TagFormatters maps a tag name to the formatter that renders it. The
	// empty-string key supplies the default for unmatched tags. Entries are
	// overlaid on the built-in map, so a partial map only overrides the
	// named tags.
	TagFormatters map[string]TagFormat `yaml:"tagFormatters"`

	// Formatters registers custom formatter implementations by id, overlaid
	// on the built-in registry. Referenced ids are validated up front.
	Formatters map[FormatterID]Formatter `yaml:"-"`

	// Wrap controls the word-wrap layout engine.
	Wrap WrapOptions `yaml:"wrap"`

	// ReturnWholeTreeIfBaseNotFound makes a selector that matches nothing
	// fall back to the whole tree instead of producing no text.
	ReturnWholeTreeIfBaseNotFound bool `yaml:"returnWholeTreeIfBaseNotFound"`
}

// Limits bounds the walker and the base locator. Zero means unbounded.
type Limits struct {
	// MaxDepth caps recursion depth; truncated branches end with Ellipsis.
	MaxDepth int `yaml:"maxDepth"`

	// MaxChildNodes caps the number of siblings processed per level; one
	// Ellipsis is appended after a truncated sibling list.
	MaxChildNodes int `yaml:"maxChildNodes"`

	// Ellipsis is the truncation marker.
	Ellipsis string `yaml:"ellipsis"`
}

// TagFormat binds a tag name to a formatter kind.
type TagFormat struct {
	Formatter FormatterID `yaml:"formatter"`

	// Inline marks the tag's output as inline content: when appended to a
	// result that already ends in whitespace, its leading whitespace is
	// stripped so inline boundaries never double up spaces or newlines.
	Inline bool `yaml:"inline"`
}

// WrapOptions controls the word-wrap layout engine.
type WrapOptions struct {
	// Width is the target column width. Zero means the default of 80;
	// negative widths are rejected with [ErrInvalidWrapWidth].
	Width int `yaml:"width"`

	// PreserveNewlines keeps explicit line breaks in the source text.
	// When false, line breaks are determined purely by width.
	PreserveNewlines bool `yaml:"preserveNewlines"`

	LongWordSplit LongWordSplit `yaml:"longWordSplit"`
}

// LongWordSplit sets the policy for words longer than the wrap width.
// With ForceWrapOnLimit false, an oversize word is placed on its own line
// unmodified.
type LongWordSplit struct {
	ForceWrapOnLimit bool `yaml:"forceWrapOnLimit"`

	// WrapCharacters are the characters an oversize word may be split
	// after, searched nearest to the width boundary. When none occur in
	// range the word is split at the boundary itself.
	WrapCharacters []string `yaml:"wrapCharacters"`
}

// DefaultOptions returns the fully-specified default configuration:
// traversal starts at "body", lines wrap at 80 columns with newlines
// collapsed, depth and breadth are unbounded, and truncation (when limits
// are set) is marked with "...".
func DefaultOptions() *Options {
	return &Options{
		BaseElements:  []string{"body"},
		Limits:        Limits{Ellipsis: "..."},
		TagFormatters: defaultTagFormatters(),
		Wrap:          WrapOptions{Width: 80},
	}
}

func defaultTagFormatters() map[string]TagFormat {
	return map[string]TagFormat{
		"":           {Formatter: FormatterInline, Inline: true},
		"a":          {Formatter: FormatterAnchor, Inline: true},
		"img":        {Formatter: FormatterImage, Inline: true},
		"p":          {Formatter: FormatterParagraph},
		"h1":         {Formatter: FormatterHeading},
		"h2":         {Formatter: FormatterHeading},
		"h3":         {Formatter: FormatterHeading},
		"h4":         {Formatter: FormatterHeading},
		"h5":         {Formatter: FormatterHeading},
		"h6":         {Formatter: FormatterHeading},
		"br":         {Formatter: FormatterLineBreak},
		"hr":         {Formatter: FormatterHorizontalLine},
		"ul":         {Formatter: FormatterUnorderedList},
		"ol":         {Formatter: FormatterOrderedList},
		"blockquote": {Formatter: FormatterBlockquote},
		"pre":        {Formatter: FormatterPre},
		"table":      {Formatter: FormatterTable},
		"script":     {Formatter: FormatterSkip},
		"style":      {Formatter: FormatterSkip},
	}
}

// normalized returns a fully-specified copy of o with zero-value fields
// filled from the defaults and the tag map overlaid on the built-ins,
// together with the effective formatter registry. It validates the
// configuration contract once, up front.
func (o *Options) normalized() (*Options, map[FormatterID]Formatter, error) {
	out := *DefaultOptions()
	if o != nil {
		if len(o.BaseElements) > 0 {
			out.BaseElements = o.BaseElements
		}
		out.Limits.MaxDepth = o.Limits.MaxDepth
		out.Limits.MaxChildNodes = o.Limits.MaxChildNodes
		if o.Limits.Ellipsis != "" {
			out.Limits.Ellipsis = o.Limits.Ellipsis
		}
		for tag, tf := range o.TagFormatters {
			out.TagFormatters[tag] = tf
		}
		if o.Wrap.Width != 0 {
			out.Wrap.Width = o.Wrap.Width
		}
		out.Wrap.PreserveNewlines = o.Wrap.PreserveNewlines
		out.Wrap.LongWordSplit = o.Wrap.LongWordSplit
		out.ReturnWholeTreeIfBaseNotFound = o.ReturnWholeTreeIfBaseNotFound
	}

	if out.Wrap.Width <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidWrapWidth, out.Wrap.Width)
	}

	registry := builtinFormatters()
	if o != nil {
		for id, f := range o.Formatters {
			registry[id] = f
		}
	}
	for tag, tf := range out.TagFormatters {
		if _, ok := registry[tf.Formatter]; !ok {
			return nil, nil, fmt.Errorf("%w: %q (tag %q)", ErrUnknownFormatter, tf.Formatter, tag)
		}
	}
	return &out, registry, nil
}
