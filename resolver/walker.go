package resolver

import "golang.org/x/net/html"

// maxTraversalDepth bounds recursion over attacker-controlled markup.
const maxTraversalDepth = 1000

// traversal is the state threaded through one recursive walk: the reference
// accumulator, the shared content-reference cursor, and the visited set
// guarding against re-resolution. One traversal serves one Resolve call and
// is discarded afterwards.
type traversal struct {
	resolvers  Resolvers
	candidates []Candidate

	refs references

	// cursor is incremented exactly once per resolved content reference;
	// links and images do not consume it.
	cursor int

	// visited marks content-reference elements that were already resolved,
	// keyed by node identity. It replaces the legacy synthetic marker
	// attribute so output markup stays free of bookkeeping.
	visited map[*html.Node]struct{}
}

func newTraversal(res Resolvers, candidates []Candidate) *traversal {
	return &traversal{
		resolvers:  res,
		candidates: candidates,
		visited:    make(map[*html.Node]struct{}),
	}
}

// walk visits n and its subtree depth-first in pre-order. Classification and
// recursion are independent: a classified element can still contain nested
// marked elements (e.g. a link wrapping an image) and both must resolve.
// Patches are applied after the subtree was descended so nested references
// are classified before their ancestor is replaced.
func (t *traversal) walk(n *html.Node, depth int) error {
	if depth > maxTraversalDepth {
		return ErrDepthExceeded
	}

	var patch *Patch
	if n.Type == html.ElementNode {
		var err error
		switch {
		case hasAttribute(n, DataTypeAttribute, DataTypeItem):
			patch, err = t.classifyItem(n)
		case n.Data == LinkTag:
			patch, err = t.classifyLink(n)
		case n.Data == ImageTag:
			patch, err = t.classifyImage(n)
		default:
			if t.resolvers.Element != nil {
				err = t.resolvers.Element(n)
			}
		}
		if err != nil {
			return err
		}
	}

	for c := n.FirstChild; c != nil; {
		// Children may replace themselves while being walked; capture the
		// sibling link before descending.
		next := c.NextSibling
		if err := t.walk(c, depth+1); err != nil {
			return err
		}
		c = next
	}

	applyPatch(n, patch)
	return nil
}

// applyPatch swaps n for the patch's replacement nodes within its parent.
// A nil patch leaves the element untouched; a patch with no nodes removes it.
func applyPatch(n *html.Node, p *Patch) {
	if p == nil || n.Parent == nil {
		return
	}
	parent := n.Parent
	for _, repl := range p.nodes {
		if repl.Parent != nil {
			repl.Parent.RemoveChild(repl)
		}
		parent.InsertBefore(repl, n)
	}
	parent.RemoveChild(n)
}
