package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// FormatterID names a formatter kind in the registry. Custom formatters are
// registered under new ids via [Options.Formatters].
type FormatterID string

const (
	FormatterInline         FormatterID = "inline"
	FormatterSkip           FormatterID = "skip"
	FormatterAnchor         FormatterID = "anchor"
	FormatterImage          FormatterID = "image"
	FormatterParagraph      FormatterID = "paragraph"
	FormatterHeading        FormatterID = "heading"
	FormatterLineBreak      FormatterID = "lineBreak"
	FormatterHorizontalLine FormatterID = "horizontalLine"
	FormatterUnorderedList  FormatterID = "unorderedList"
	FormatterOrderedList    FormatterID = "orderedList"
	FormatterBlockquote     FormatterID = "blockquote"
	FormatterPre            FormatterID = "pre"
	FormatterTable          FormatterID = "table"
)

func builtinFormatters() map[FormatterID]Formatter {
	return map[FormatterID]Formatter{
		FormatterInline:         inlineFormatter{},
		FormatterSkip:           skipFormatter{},
		FormatterAnchor:         anchorFormatter{},
		FormatterImage:          imageFormatter{},
		FormatterParagraph:      paragraphFormatter{},
		FormatterHeading:        headingFormatter{},
		FormatterLineBreak:      lineBreakFormatter{},
		FormatterHorizontalLine: horizontalLineFormatter{},
		FormatterUnorderedList:  unorderedListFormatter{},
		FormatterOrderedList:    orderedListFormatter{},
		FormatterBlockquote:     blockquoteFormatter{},
		FormatterPre:            preFormatter{},
		FormatterTable:          tableFormatter{},
	}
}

// inlineFormatter is the default for unmatched tags: the element itself
// contributes nothing and its children are rendered in place.
type inlineFormatter struct{}

func (inlineFormatter) Format(_ *Conversion, n *html.Node, walk WalkFunc) string {
	return walk(Children(n), "")
}

type skipFormatter struct{}

func (skipFormatter) Format(*Conversion, *html.Node, WalkFunc) string { return "" }

// anchorFormatter renders "text [href]". The suffix is omitted when the
// href is empty or identical to the link text, and a mailto: scheme is
// stripped so addresses read naturally.
type anchorFormatter struct{}

func (anchorFormatter) Format(_ *Conversion, n *html.Node, walk WalkFunc) string {
	text := walk(Children(n), "")
	href := strings.TrimPrefix(attr(n, "href"), "mailto:")
	switch {
	case href == "" || text == href:
		return text
	case text == "":
		return href
	default:
		return text + " [" + href + "]"
	}
}

type imageFormatter struct{}

func (imageFormatter) Format(_ *Conversion, n *html.Node, _ WalkFunc) string {
	alt, src := attr(n, "alt"), attr(n, "src")
	switch {
	case alt != "" && src != "":
		return alt + " [" + src + "]"
	case src != "":
		return "[" + src + "]"
	default:
		return alt
	}
}

type paragraphFormatter struct{}

func (paragraphFormatter) Format(_ *Conversion, n *html.Node, walk WalkFunc) string {
	return walk(Children(n), "") + "\n\n"
}

type headingFormatter struct{}

func (headingFormatter) Format(_ *Conversion, n *html.Node, walk WalkFunc) string {
	return strings.ToUpper(walk(Children(n), "")) + "\n"
}

type lineBreakFormatter struct{}

func (lineBreakFormatter) Format(*Conversion, *html.Node, WalkFunc) string { return "\n" }

type horizontalLineFormatter struct{}

func (horizontalLineFormatter) Format(c *Conversion, _ *html.Node, _ WalkFunc) string {
	return "\n" + strings.Repeat("-", c.opts.Wrap.Width) + "\n\n"
}

// blockquoteFormatter prefixes every line with "> ", narrowing the wrap
// width so quoted lines still fit the target width.
type blockquoteFormatter struct{}

func (blockquoteFormatter) Format(c *Conversion, n *html.Node, walk WalkFunc) string {
	text := strings.TrimSpace(c.walkNarrowed(n, walk, 2))
	if text == "" {
		return ""
	}
	return "> " + strings.ReplaceAll(text, "\n", "\n> ") + "\n\n"
}

// preFormatter emits the raw character data of the element verbatim,
// bypassing the wrap engine entirely.
type preFormatter struct{}

func (preFormatter) Format(_ *Conversion, n *html.Node, _ WalkFunc) string {
	var b strings.Builder
	rawText(n, &b)
	return b.String() + "\n\n"
}

func rawText(n *html.Node, b *strings.Builder) {
	for _, child := range Children(n) {
		switch child.Type {
		case html.TextNode:
			b.WriteString(child.Data)
		case html.ElementNode:
			rawText(child, b)
		}
	}
}

// walkNarrowed renders n's children with the wrap width reduced by indent
// columns, for formatters that re-indent their output. The options copy
// lives only for the nested walk.
func (c *Conversion) walkNarrowed(n *html.Node, walk WalkFunc, indent int) string {
	sub := *c.opts
	if sub.Wrap.Width > indent {
		sub.Wrap.Width -= indent
	}
	saved := c.opts
	c.opts = &sub
	text := walk(Children(n), "")
	c.opts = saved
	return text
}
