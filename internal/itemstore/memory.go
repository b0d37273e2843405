package itemstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-richtext/items"
)

// MemoryItemRepository is an in-memory implementation for scaffolding and tests.
type MemoryItemRepository struct {
	mu            sync.RWMutex
	records       map[uuid.UUID]*items.ContentItem
	codenameIndex map[string]uuid.UUID
}

// NewMemoryItemRepository creates an empty in-memory item repository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		records:       make(map[uuid.UUID]*items.ContentItem),
		codenameIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied item.
func (m *MemoryItemRepository) Create(_ context.Context, record *items.ContentItem) (*items.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneItem(record)
	m.records[copied.ID] = copied
	m.codenameIndex[copied.Codename] = copied.ID
	return cloneItem(copied), nil
}

// Update replaces the stored item, reindexing the codename.
func (m *MemoryItemRepository) Update(_ context.Context, record *items.ContentItem) (*items.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[record.ID]
	if !ok {
		return nil, &items.NotFoundError{Resource: "item", Key: record.ID.String()}
	}
	delete(m.codenameIndex, existing.Codename)

	copied := cloneItem(record)
	m.records[copied.ID] = copied
	m.codenameIndex[copied.Codename] = copied.ID
	return cloneItem(copied), nil
}

// GetByID retrieves an item by identifier.
func (m *MemoryItemRepository) GetByID(_ context.Context, id uuid.UUID) (*items.ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, &items.NotFoundError{Resource: "item", Key: id.String()}
	}
	return cloneItem(rec), nil
}

// GetByCodename retrieves an item by codename, returning NotFoundError when absent.
func (m *MemoryItemRepository) GetByCodename(_ context.Context, codename string) (*items.ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.codenameIndex[codename]
	if !ok {
		return nil, &items.NotFoundError{Resource: "item", Key: codename}
	}
	return cloneItem(m.records[id]), nil
}

// List returns every stored item ordered by codename for stable output.
func (m *MemoryItemRepository) List(_ context.Context) ([]*items.ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*items.ContentItem, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, cloneItem(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codename < out[j].Codename })
	return out, nil
}

func cloneItem(src *items.ContentItem) *items.ContentItem {
	if src == nil {
		return nil
	}
	copied := *src
	if src.Elements != nil {
		elements := make(map[string]any, len(src.Elements))
		for key, value := range src.Elements {
			elements[key] = value
		}
		copied.Elements = elements
	}
	return &copied
}
