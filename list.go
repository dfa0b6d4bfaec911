package htmltext

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

type unorderedListFormatter struct{}

func (unorderedListFormatter) Format(c *Conversion, n *html.Node, walk WalkFunc) string {
	var out strings.Builder
	for _, item := range listItems(n) {
		out.WriteString(c.formatListItem(item, walk, " * "))
	}
	return out.String() + "\n"
}

// orderedListFormatter numbers items according to the list's type attribute
// (1, a, A, i, I) starting from the start attribute.
type orderedListFormatter struct{}

func (orderedListFormatter) Format(c *Conversion, n *html.Node, walk WalkFunc) string {
	start := 1
	if v, err := strconv.Atoi(attr(n, "start")); err == nil {
		start = v
	}
	label := listLabeler(attr(n, "type"))

	var out strings.Builder
	for i, item := range listItems(n) {
		out.WriteString(c.formatListItem(item, walk, " "+label(start+i)+". "))
	}
	return out.String() + "\n"
}

func listLabeler(olType string) func(int) string {
	switch olType {
	case "a":
		return alphabeticSequence
	case "A":
		return func(i int) string { return strings.ToUpper(alphabeticSequence(i)) }
	case "i":
		return romanNumeral
	case "I":
		return func(i int) string { return strings.ToUpper(romanNumeral(i)) }
	default:
		return strconv.Itoa
	}
}

// listItems returns the list's renderable children, dropping the
// whitespace-only text nodes the parser leaves between <li> tags.
func listItems(n *html.Node) []*html.Node {
	var items []*html.Node
	for _, child := range Children(n) {
		if child.Type == html.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		items = append(items, child)
	}
	return items
}

// formatListItem renders one item behind prefix, indenting continuation
// lines to the prefix width and narrowing the wrap width to match.
func (c *Conversion) formatListItem(n *html.Node, walk WalkFunc, prefix string) string {
	text := strings.TrimRight(c.walkNarrowed(n, walk, len(prefix)), " \n")
	text = strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(" ", len(prefix)))
	return prefix + text + "\n"
}
