package itemstore

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-richtext/items"
)

// BunItemRepository persists content items through the generic bun repository.
type BunItemRepository struct {
	repo repository.Repository[*items.ContentItem]
}

// NewBunItemRepository constructs an uncached bun-backed repository.
func NewBunItemRepository(db *bun.DB) *BunItemRepository {
	return NewBunItemRepositoryWithCache(db, nil, nil)
}

// NewBunItemRepositoryWithCache constructs a bun-backed repository with
// optional read-through caching. Passing nil for either cache collaborator
// disables caching.
func NewBunItemRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunItemRepository {
	base := NewItemRepository(db)
	return &BunItemRepository{repo: wrapWithCache(base, cacheService, keySerializer)}
}

func (r *BunItemRepository) Create(ctx context.Context, record *items.ContentItem) (*items.ContentItem, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("item repository create: %w", err)
	}
	return created, nil
}

func (r *BunItemRepository) Update(ctx context.Context, record *items.ContentItem) (*items.ContentItem, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "item", record.Codename)
	}
	return updated, nil
}

func (r *BunItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*items.ContentItem, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "item", id.String())
	}
	return result, nil
}

func (r *BunItemRepository) GetByCodename(ctx context.Context, codename string) (*items.ContentItem, error) {
	result, err := r.repo.GetByIdentifier(ctx, codename)
	if err != nil {
		return nil, mapRepositoryError(err, "item", codename)
	}
	return result, nil
}

func (r *BunItemRepository) List(ctx context.Context) ([]*items.ContentItem, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("item repository list: %w", err)
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &items.NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache(base repository.Repository[*items.ContentItem], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[*items.ContentItem] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
