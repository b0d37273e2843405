package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-richtext/resolver"
)

// PlaceholderOptions configures placeholder rendering for content references
// that did not match any candidate.
type PlaceholderOptions struct {
	// Class is the CSS class applied to the placeholder element. Defaults to
	// "richtext-unresolved".
	Class string
	// Text is the visible placeholder text. Defaults to the codename.
	Text string
}

// NewPlaceholderItemResolver returns an item resolver that replaces content
// references without a matching candidate with a marked placeholder element.
// References that did match are left in place so callers can chain their own
// rendering on top.
func NewPlaceholderItemResolver(opts PlaceholderOptions) resolver.ItemResolver {
	class := opts.Class
	if class == "" {
		class = "richtext-unresolved"
	}

	return func(el *html.Node, codename string, index int, item *resolver.Candidate) (*resolver.Patch, error) {
		if item != nil {
			return nil, nil
		}

		text := opts.Text
		if text == "" {
			text = codename
		}

		div := &html.Node{
			Type:     html.ElementNode,
			Data:     "div",
			DataAtom: atom.Div,
			Attr: []html.Attribute{
				{Key: "class", Val: class},
				{Key: "data-codename", Val: codename},
			},
		}
		div.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		return resolver.ReplaceWith(div), nil
	}
}

// NewAssetImageResolver returns an image resolver that rewrites the src
// attribute from a map of image ID to URL. Images with unknown IDs keep their
// original src.
func NewAssetImageResolver(urls map[string]string) resolver.ImageResolver {
	return func(el *html.Node, imageID string, item *resolver.Candidate) (*resolver.Patch, error) {
		if url, ok := urls[imageID]; ok {
			resolver.SetAttr(el, "src", url)
		}
		return nil, nil
	}
}
