package resolver

import "golang.org/x/net/html"

// ReferenceKind distinguishes the two flavors of embedded content reference.
type ReferenceKind string

const (
	// KindLinkedItem is a cross-reference to independently managed content.
	KindLinkedItem ReferenceKind = "linked_item"
	// KindComponent is content owned by the containing document.
	KindComponent ReferenceKind = "component"
)

// Candidate is one linked item offered to resolvers for best-effort matching.
// Matching never fails hard; resolvers receive nil when no candidate matches
// and decide how to degrade (e.g. placeholder rendering).
type Candidate struct {
	// ID is the stable identifier links and images are matched against.
	ID string
	// Codename is the lookup key content references are matched against.
	Codename string
	// Type is the content type codename of the candidate.
	Type string
	// Item carries the caller's payload untouched.
	Item any
}

// ItemReference records one embedded content reference in document order.
type ItemReference struct {
	Codename string
	Type     string
	Kind     ReferenceKind
}

// LinkReference records one internal link in document order.
type LinkReference struct {
	ItemID string
}

// ImageReference records one asset reference in document order.
type ImageReference struct {
	ImageID string
}

// Patch is the replacement a resolver wants applied to the element it was
// handed. The walker applies patches after descending into the element's
// children so nested marked elements still resolve.
type Patch struct {
	nodes []*html.Node
}

// ReplaceWith builds a patch substituting the element with the given nodes.
func ReplaceWith(nodes ...*html.Node) *Patch {
	return &Patch{nodes: nodes}
}

// Remove builds a patch that drops the element from the tree.
func Remove() *Patch {
	return &Patch{}
}

// ElementResolver handles elements that carry no marker attributes, letting
// callers perform cosmetic transformation of ordinary HTML. It is not invoked
// for anchors or images, marked or not.
type ElementResolver func(el *html.Node) error

// ItemResolver handles one embedded content reference. index is the ordinal
// position of the reference among all content references in the document,
// assigned in document order regardless of nesting. item is nil when no
// candidate matched the codename.
type ItemResolver func(el *html.Node, codename string, index int, item *Candidate) (*Patch, error)

// LinkResolver handles one internal link. text is the literal content of the
// element's first child when that child is a text node, empty otherwise.
type LinkResolver func(el *html.Node, itemID, text string, item *Candidate) (*Patch, error)

// ImageResolver handles one asset reference.
type ImageResolver func(el *html.Node, imageID string, item *Candidate) (*Patch, error)

// Resolvers bundles the caller-supplied callbacks. Any callback may be nil;
// classification and reference collection still happen without it.
type Resolvers struct {
	Element ElementResolver
	Item    ItemResolver
	Link    LinkResolver
	Image   ImageResolver
}

// Result carries the resolved markup and every reference collected during one
// traversal. All slices preserve document order and keep duplicates.
type Result struct {
	// HTML is the serialized markup after resolver patches were applied.
	HTML string

	Items  []ItemReference
	Links  []LinkReference
	Images []ImageReference

	// LinkedItemCodenames and ComponentCodenames partition Items by kind.
	LinkedItemCodenames []string
	ComponentCodenames  []string
}

// references accumulates collected references for one traversal. Entries are
// only ever appended; duplicate suppression happens by marking elements
// visited, never by deduplicating here.
type references struct {
	items  []ItemReference
	links  []LinkReference
	images []ImageReference
}
