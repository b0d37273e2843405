// Package itemstore implements the items.Service contract over pluggable
// repositories: an in-memory store for scaffolding and tests, and a bun-backed
// store for sqlite/postgres deployments.
package itemstore

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-richtext/items"
)

// Repository is the persistence contract the item service depends on.
type Repository interface {
	Create(ctx context.Context, record *items.ContentItem) (*items.ContentItem, error)
	Update(ctx context.Context, record *items.ContentItem) (*items.ContentItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*items.ContentItem, error)
	GetByCodename(ctx context.Context, codename string) (*items.ContentItem, error)
	List(ctx context.Context) ([]*items.ContentItem, error)
}

// NewItemRepository builds the generic bun repository for content items,
// keyed by codename as the human-readable identifier.
func NewItemRepository(db *bun.DB) repository.Repository[*items.ContentItem] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*items.ContentItem]{
		NewRecord: func() *items.ContentItem { return &items.ContentItem{} },
		GetID: func(ci *items.ContentItem) uuid.UUID {
			return ci.ID
		},
		SetID: func(ci *items.ContentItem, id uuid.UUID) {
			ci.ID = id
		},
		GetIdentifier: func() string {
			return "codename"
		},
		GetIdentifierValue: func(ci *items.ContentItem) string {
			return ci.Codename
		},
	})
}
