package resolver

import "golang.org/x/net/html"

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value in place.
// Resolvers use it to rewrite attributes (e.g. href) on handed elements.
func SetAttr(n *html.Node, name, value string) {
	for i, attr := range n.Attr {
		if attr.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// hasAttribute reports whether the named attribute is present with exactly
// the expected value. The comparison is case-sensitive.
func hasAttribute(n *html.Node, name, expected string) bool {
	value, ok := Attr(n, name)
	return ok && value == expected
}

// linkText extracts the original link text from an anchor. Only the first
// child node is inspected: when it is a text node its data is returned,
// anything else (element child, no children) yields the empty string. Mixed
// anchor bodies are intentionally lossy.
func linkText(n *html.Node) string {
	if c := n.FirstChild; c != nil && c.Type == html.TextNode {
		return c.Data
	}
	return ""
}

// findCandidate performs a linear lookup among the caller-supplied
// candidates. Content references match by codename, links and images by ID;
// a single key parameter serves both since the two namespaces never collide
// in practice. Returns nil, false when nothing matches.
func findCandidate(candidates []Candidate, key string) (*Candidate, bool) {
	if key == "" {
		return nil, false
	}
	for i := range candidates {
		if candidates[i].Codename == key || candidates[i].ID == key {
			return &candidates[i], true
		}
	}
	return nil, false
}
