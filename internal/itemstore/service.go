package itemstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-richtext/internal/identity"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/schema"
	"github.com/goliatone/go-richtext/items"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Service implements items.Service over a Repository.
type Service struct {
	repo    Repository
	schemas *schema.Registry
	logger  interfaces.Logger
	now     func() time.Time
}

// ServiceOption customises service construction.
type ServiceOption func(*Service)

// WithLogger attaches a logger; a no-op logger is used otherwise.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSchemaRegistry enables element payload validation against registered
// content type schemas.
func WithSchemaRegistry(registry *schema.Registry) ServiceOption {
	return func(s *Service) {
		s.schemas = registry
	}
}

// WithClock overrides timestamp generation; tests use it for stable output.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs an item service over the supplied repository.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	svc := &Service{
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Upsert validates the request, normalizes the codename, derives a
// deterministic ID when none was supplied, and creates or replaces the item.
func (s *Service) Upsert(ctx context.Context, req items.UpsertItemRequest) (*items.ContentItem, error) {
	if s.repo == nil {
		return nil, items.ErrRepositoryMissing
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	codename, err := items.NormalizeCodename(req.Codename)
	if err != nil {
		return nil, items.ErrCodenameInvalid
	}

	if s.schemas != nil && s.schemas.Has(req.Type) {
		if err := s.schemas.Validate(req.Type, req.Elements); err != nil {
			return nil, &items.SchemaValidationError{
				Codename: codename,
				Type:     req.Type,
				Reason:   err,
			}
		}
	}

	id := req.ID
	if id == uuid.Nil {
		id = identity.ItemUUID(codename)
	}

	language := req.Language
	if language == "" {
		language = "default"
	}

	record := &items.ContentItem{
		ID:        id,
		Codename:  codename,
		Name:      req.Name,
		Type:      req.Type,
		Language:  language,
		Elements:  req.Elements,
		UpdatedAt: s.now().UTC(),
	}

	existing, err := s.repo.GetByCodename(ctx, codename)
	switch {
	case err == nil:
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		updated, err := s.repo.Update(ctx, record)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("item updated", "codename", codename, "type", req.Type)
		return updated, nil
	case errors.Is(err, items.ErrItemNotFound):
		record.CreatedAt = record.UpdatedAt
		created, err := s.repo.Create(ctx, record)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("item created", "codename", codename, "type", req.Type)
		return created, nil
	default:
		return nil, err
	}
}

// Get retrieves an item by codename.
func (s *Service) Get(ctx context.Context, codename string) (*items.ContentItem, error) {
	if s.repo == nil {
		return nil, items.ErrRepositoryMissing
	}
	return s.repo.GetByCodename(ctx, codename)
}

// GetByID retrieves an item by identifier.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*items.ContentItem, error) {
	if s.repo == nil {
		return nil, items.ErrRepositoryMissing
	}
	return s.repo.GetByID(ctx, id)
}

// List returns every stored item.
func (s *Service) List(ctx context.Context) ([]*items.ContentItem, error) {
	if s.repo == nil {
		return nil, items.ErrRepositoryMissing
	}
	return s.repo.List(ctx)
}

// ByCodenames fetches the named items preserving request order. Codenames
// without a stored item are skipped; resolution degrades per element, so a
// hard failure here would be worse than an unmatched candidate.
func (s *Service) ByCodenames(ctx context.Context, codenames []string) ([]*items.ContentItem, error) {
	if s.repo == nil {
		return nil, items.ErrRepositoryMissing
	}

	out := make([]*items.ContentItem, 0, len(codenames))
	for _, codename := range codenames {
		record, err := s.repo.GetByCodename(ctx, codename)
		if err != nil {
			if errors.Is(err, items.ErrItemNotFound) {
				s.logger.Warn("linked item missing from store", "codename", codename)
				continue
			}
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}
