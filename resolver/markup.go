package resolver

// Marker vocabulary understood by the resolver. Rich text fields authored in
// the CMS annotate embedded references with these attributes; everything else
// in the markup is ordinary HTML.
const (
	// LinkTag is the element name carrying internal item links.
	LinkTag = "a"
	// ImageTag is the element name carrying asset references.
	ImageTag = "img"

	// TypeAttribute declares the embed MIME type on content references.
	TypeAttribute = "type"
	// DataTypeAttribute marks an element as an embedded content reference
	// when it carries DataTypeItem.
	DataTypeAttribute = "data-type"
	// DataTypeItem is the DataTypeAttribute value denoting a content item.
	DataTypeItem = "item"
	// CodenameAttribute holds the codename of the referenced item.
	CodenameAttribute = "data-codename"
	// RelationAttribute distinguishes components from linked items.
	RelationAttribute = "rel"
	// RelationComponent is the RelationAttribute value marking a component.
	// Any other value, including absence, denotes a linked item.
	RelationComponent = "component"
	// ItemIDAttribute holds the target item ID on internal links. Anchors
	// without it are ordinary hyperlinks and pass through untouched.
	ItemIDAttribute = "data-item-id"
	// ImageIDAttribute holds the asset ID on images. Images without it are
	// ordinary images and pass through untouched.
	ImageIDAttribute = "data-image-id"
)
