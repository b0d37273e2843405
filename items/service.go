package items

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Service exposes the item store use cases the resolver facade depends on.
type Service interface {
	Upsert(ctx context.Context, req UpsertItemRequest) (*ContentItem, error)
	Get(ctx context.Context, codename string) (*ContentItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ContentItem, error)
	List(ctx context.Context) ([]*ContentItem, error)
	// ByCodenames fetches the named items, preserving request order and
	// silently skipping codenames with no stored item. Resolution treats
	// missing candidates as soft failures, so lookup does too.
	ByCodenames(ctx context.Context, codenames []string) ([]*ContentItem, error)
}

// UpsertItemRequest captures the information required to create or replace an
// item. A zero ID derives a deterministic identifier from the codename.
type UpsertItemRequest struct {
	ID       uuid.UUID
	Codename string
	Name     string
	Type     string
	Language string
	Elements map[string]any
}

// Validate ensures the request carries the required fields before it reaches
// the store.
func (r UpsertItemRequest) Validate() error {
	errs := validation.Errors{}
	if r.Codename == "" {
		errs["codename"] = validation.NewError("items.upsert.codename_required", "codename is required")
	} else if !IsValidCodename(r.Codename) {
		errs["codename"] = validation.NewError("items.upsert.codename_invalid", "codename contains invalid characters")
	}
	if r.Name == "" {
		errs["name"] = validation.NewError("items.upsert.name_required", "name is required")
	}
	if r.Type == "" {
		errs["type"] = validation.NewError("items.upsert.type_required", "content type is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
