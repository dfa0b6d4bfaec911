package htmltext

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Selector grammar is the compact form "tagname(.class)*(#id)*",
// case-sensitive. Characters outside the grammar are passed through
// unvalidated.
var (
	selectorElementRE = regexp.MustCompile(`^(\w*)`)
	selectorClassRE   = regexp.MustCompile(`\.([\w-]*)`)
	selectorIDRE      = regexp.MustCompile(`#([\w-]*)`)
)

type tagSelector struct {
	element string
	classes []string
	ids     []string
}

func parseSelector(s string) tagSelector {
	sel := tagSelector{element: selectorElementRE.FindStringSubmatch(s)[1]}
	for _, m := range selectorClassRE.FindAllStringSubmatch(s, -1) {
		sel.classes = append(sel.classes, m[1])
	}
	for _, m := range selectorIDRE.FindAllStringSubmatch(s, -1) {
		sel.ids = append(sel.ids, m[1])
	}
	return sel
}

// matches reports whether element node n has the selector's tag name and
// carries every required class and id. Attribute values are split on single
// spaces.
func (sel tagSelector) matches(n *html.Node) bool {
	if n.Data != sel.element {
		return false
	}
	if !containsAll(strings.Split(attr(n, "class"), " "), sel.classes) {
		return false
	}
	return containsAll(strings.Split(attr(n, "id"), " "), sel.ids)
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// locate returns the first node in document order matching selector, bounded
// by the same depth and sibling limits as the walker. When nothing matches
// it returns either the whole tree or nothing, per configuration.
func locate(doc *html.Node, o *Options, selector string) []*html.Node {
	sel := parseSelector(selector)
	if found := findFirst([]*html.Node{doc}, o, sel, startDepth(o)); found != nil {
		return []*html.Node{found}
	}
	if o.ReturnWholeTreeIfBaseNotFound {
		return []*html.Node{doc}
	}
	return nil
}

func findFirst(nodes []*html.Node, o *Options, sel tagSelector, depth int) *html.Node {
	if depth == 0 {
		return nil
	}
	next := depth - 1
	if depth < 0 {
		next = -1
	}
	if max := o.Limits.MaxChildNodes; max > 0 && len(nodes) > max {
		nodes = nodes[:max]
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode && sel.matches(n) {
			return n
		}
		childDepth := next
		if n.Type == html.DocumentNode {
			// Mirror the walker: the document wrapper is not a tree level.
			childDepth = depth
		}
		if found := findFirst(Children(n), o, sel, childDepth); found != nil {
			return found
		}
	}
	return nil
}
