package resolver

import (
	"fmt"

	"golang.org/x/net/html"
)

// classifyItem handles one embedded content reference. It fires only when the
// element was not already resolved within this traversal, records the
// reference, invokes the item resolver with the current cursor value, then
// increments the cursor. A missing codename attribute is fatal.
func (t *traversal) classifyItem(el *html.Node) (*Patch, error) {
	if _, seen := t.visited[el]; seen {
		return nil, nil
	}

	codename, ok := Attr(el, CodenameAttribute)
	if !ok {
		return nil, fmt.Errorf("%w: <%s>", ErrMissingCodename, el.Data)
	}

	kind := KindLinkedItem
	if hasAttribute(el, RelationAttribute, RelationComponent) {
		kind = KindComponent
	}
	typeName, _ := Attr(el, TypeAttribute)

	t.refs.items = append(t.refs.items, ItemReference{
		Codename: codename,
		Type:     typeName,
		Kind:     kind,
	})
	t.visited[el] = struct{}{}

	var patch *Patch
	if t.resolvers.Item != nil {
		candidate, _ := findCandidate(t.candidates, codename)
		p, err := t.resolvers.Item(el, codename, t.cursor, candidate)
		if err != nil {
			return nil, err
		}
		patch = p
	}
	t.cursor++
	return patch, nil
}

// classifyLink handles anchors. Anchors without the item ID attribute are
// ordinary hyperlinks: not collected, not resolved, left untouched.
func (t *traversal) classifyLink(el *html.Node) (*Patch, error) {
	itemID, ok := Attr(el, ItemIDAttribute)
	if !ok {
		return nil, nil
	}

	text := linkText(el)
	t.refs.links = append(t.refs.links, LinkReference{ItemID: itemID})

	if t.resolvers.Link == nil {
		return nil, nil
	}
	candidate, _ := findCandidate(t.candidates, itemID)
	return t.resolvers.Link(el, itemID, text, candidate)
}

// classifyImage handles images. Unlike content references, a missing ID is
// tolerated silently: HTML legitimately contains plain images.
func (t *traversal) classifyImage(el *html.Node) (*Patch, error) {
	imageID, ok := Attr(el, ImageIDAttribute)
	if !ok {
		return nil, nil
	}

	t.refs.images = append(t.refs.images, ImageReference{ImageID: imageID})

	if t.resolvers.Image == nil {
		return nil, nil
	}
	candidate, _ := findCandidate(t.candidates, imageID)
	return t.resolvers.Image(el, imageID, candidate)
}
