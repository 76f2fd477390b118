package hydrate

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// findByID walks the parsed document for the element with the given id.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// attrValue returns the value of the named attribute, if present.
func attrValue(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// elementChildren returns the child nodes that matter for comparison:
// elements and non-empty text. Comments and whitespace-only text are
// layout artifacts of document assembly, not view output.
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.ElementNode:
			out = append(out, child)
		case html.TextNode:
			if strings.TrimSpace(child.Data) != "" {
				out = append(out, child)
			}
		}
	}
	return out
}

// sortedAttrs returns the element's attributes as sorted "key=value"
// strings for order-insensitive comparison.
func sortedAttrs(n *html.Node) []string {
	out := make([]string, 0, len(n.Attr))
	for _, attr := range n.Attr {
		out = append(out, attr.Key+"="+attr.Val)
	}
	sort.Strings(out)
	return out
}

// sameNode compares a single DOM node against a freshly rendered node,
// ignoring child content.
func sameNode(a, b *html.Node) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case html.TextNode:
		return a.Data == b.Data
	case html.ElementNode:
		if a.Data != b.Data {
			return false
		}
		aAttrs, bAttrs := sortedAttrs(a), sortedAttrs(b)
		if len(aAttrs) != len(bAttrs) {
			return false
		}
		for i := range aAttrs {
			if aAttrs[i] != bAttrs[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// detachedClone deep-copies a node so it can be inserted into another
// tree. x/net/html nodes cannot belong to two parents.
func detachedClone(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:     n.Type,
		DataAtom: n.DataAtom,
		Data:     n.Data,
		Attr:     append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		clone.AppendChild(detachedClone(child))
	}
	return clone
}

// replaceChildren swaps all children of parent for clones of the given
// replacement nodes.
func replaceChildren(parent *html.Node, replacements []*html.Node) {
	for parent.FirstChild != nil {
		parent.RemoveChild(parent.FirstChild)
	}
	for _, n := range replacements {
		parent.AppendChild(detachedClone(n))
	}
}
