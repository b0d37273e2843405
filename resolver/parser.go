// Package resolver walks annotated rich-text markup, classifies elements
// carrying the marker vocabulary into content references, internal links and
// asset references, resolves each through caller-supplied callbacks, and
// collects the referenced codenames in document order.
//
// The traversal is synchronous and allocation-scoped: accumulator, cursor and
// visited set live for exactly one Resolve call. Resolver callbacks run in
// document order and must return before the walk continues.
package resolver

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Resolve parses markup into a node tree, resolves every marked element
// through the supplied resolver bundle, serializes the patched tree back to
// markup and partitions the collected content references into component and
// linked-item codename lists. Candidates are matched best-effort; resolvers
// see nil for unmatched references and decide how to degrade.
//
// The parse fails as a whole when a content reference lacks its codename
// attribute or any resolver returns an error; no partial output is produced.
func Resolve(markup string, res Resolvers, candidates []Candidate) (*Result, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, fmt.Errorf("resolver: parse markup: %w", err)
	}
	// Re-parent the fragment under a synthetic body so patches on top-level
	// elements have a tree to splice into.
	for _, n := range nodes {
		body.AppendChild(n)
	}

	t := newTraversal(res, candidates)
	for c := body.FirstChild; c != nil; {
		next := c.NextSibling
		if err := t.walk(c, 0); err != nil {
			return nil, err
		}
		c = next
	}

	var buf bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return nil, fmt.Errorf("resolver: render markup: %w", err)
		}
	}

	result := &Result{
		HTML:   buf.String(),
		Items:  t.refs.items,
		Links:  t.refs.links,
		Images: t.refs.images,
	}
	for _, ref := range t.refs.items {
		if ref.Kind == KindComponent {
			result.ComponentCodenames = append(result.ComponentCodenames, ref.Codename)
		} else {
			result.LinkedItemCodenames = append(result.LinkedItemCodenames, ref.Codename)
		}
	}
	return result, nil
}
