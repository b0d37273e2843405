package items

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ContentItem is the delivery-side record for one piece of content. The
// Elements payload carries the typed element values keyed by element
// codename; rich text elements store their annotated markup and the
// codenames of items it references.
type ContentItem struct {
	bun.BaseModel `bun:"table:content_items,alias:ci"`

	ID        uuid.UUID      `bun:",pk,type:uuid"                json:"id"`
	Codename  string         `bun:"codename,notnull,unique"      json:"codename"`
	Name      string         `bun:"name,notnull"                 json:"name"`
	Type      string         `bun:"type,notnull"                 json:"type"`
	Language  string         `bun:"language,notnull,default:'default'" json:"language"`
	Elements  map[string]any `bun:"elements,type:jsonb"          json:"elements,omitempty"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// RichTextField is one rich text element extracted from an item payload:
// the annotated markup plus the codenames of the items it embeds, as
// delivered alongside the value.
type RichTextField struct {
	// Element is the element codename within the owning item.
	Element string
	// Value is the annotated HTML markup.
	Value string
	// Linked lists the codenames of items referenced by the markup, in the
	// order the delivery payload declares them.
	Linked []string
}

// RichText extracts the named rich text element from the item payload.
// It returns false when the element is absent or not rich-text shaped.
func (i *ContentItem) RichText(element string) (RichTextField, bool) {
	if i == nil || i.Elements == nil {
		return RichTextField{}, false
	}
	raw, ok := i.Elements[element]
	if !ok {
		return RichTextField{}, false
	}
	payload, ok := raw.(map[string]any)
	if !ok {
		return RichTextField{}, false
	}
	value, ok := payload["value"].(string)
	if !ok {
		return RichTextField{}, false
	}

	field := RichTextField{Element: element, Value: value}
	switch linked := payload["linked_items"].(type) {
	case []string:
		field.Linked = append(field.Linked, linked...)
	case []any:
		for _, entry := range linked {
			if codename, ok := entry.(string); ok {
				field.Linked = append(field.Linked, codename)
			}
		}
	}
	return field, true
}

// RichTextElement builds a rich-text element payload in the shape RichText
// expects, for callers assembling item payloads by hand or via import.
func RichTextElement(value string, linked ...string) map[string]any {
	payload := map[string]any{"value": value}
	if len(linked) > 0 {
		payload["linked_items"] = append([]string(nil), linked...)
	}
	return payload
}
