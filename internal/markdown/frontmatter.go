package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter models the item metadata extracted from a markdown source file.
type FrontMatter struct {
	Codename string `yaml:"codename"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Language string `yaml:"language"`
	// Element is the rich text element codename the body is stored under;
	// defaults to "body" when absent.
	Element string `yaml:"element"`
	// Linked lists codenames of items the body references, mirroring the
	// delivery payload's linked item declaration.
	Linked []string       `yaml:"linked_items"`
	Custom map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. It returns the structured front matter, the body without
// delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if meta.Element == "" {
		meta.Element = "body"
	}
	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	return meta, body, nil
}
