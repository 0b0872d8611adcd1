package converter

import (
	"strings"

	"golang.org/x/net/html"
)

// DocumentNode is the tree node type the converter operates on, as produced
// by html.Parse or goquery. Converters never mutate the tree.
type DocumentNode = html.Node

// nodeName returns the lowercase tag name for element nodes, "" otherwise.
// html.Parse already lowercases tag names; parsers feeding hand-built trees
// may not, so normalize here.
func nodeName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.Data)
}

// textContent concatenates all descendant text of n in document order,
// matching what a browser's textContent property yields.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// findFirst returns the first descendant element with the given tag in
// document order, or nil.
func findFirst(n *html.Node, tag string) *html.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if nodeName(child) == tag {
			return child
		}
		if found := findFirst(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll collects every descendant element matching one of the given tags,
// in document order.
func findAll(n *html.Node, tags ...string) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			name := nodeName(child)
			for _, tag := range tags {
				if name == tag {
					matches = append(matches, child)
					break
				}
			}
			walk(child)
		}
	}
	walk(n)
	return matches
}

// directChildren returns the element children of n with the given tag,
// ignoring deeper descendants.
func directChildren(n *html.Node, tag string) []*html.Node {
	var matches []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if nodeName(child) == tag {
			matches = append(matches, child)
		}
	}
	return matches
}
