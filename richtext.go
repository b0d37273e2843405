// Package richtext resolves annotated rich-text HTML: embedded content
// references, internal links and asset references are classified in document
// order and handed to caller-supplied callbacks, with an optional item store,
// schema validation and a markdown import pipeline around the core resolver.
package richtext

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-richtext/internal/itemstore"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/logging/gologger"
	"github.com/goliatone/go-richtext/internal/markdown"
	"github.com/goliatone/go-richtext/internal/persistence"
	"github.com/goliatone/go-richtext/internal/schema"
	"github.com/goliatone/go-richtext/items"
	"github.com/goliatone/go-richtext/pkg/interfaces"
	"github.com/goliatone/go-richtext/render"
	"github.com/goliatone/go-richtext/resolver"
)

var ErrDatabaseRequired = errors.New("richtext: storage driver requires a database handle")
var ErrMarkdownDisabled = errors.New("richtext: markdown feature is not enabled")
var ErrMarkdownSourceMissing = errors.New("richtext: markdown import requires a source filesystem")

// ItemService exports the item store contract for consumers of the package.
type ItemService = items.Service

// ContentItem exports the stored item model.
type ContentItem = items.ContentItem

// RichTextField exports the rich text element view.
type RichTextField = items.RichTextField

// Candidate exports the resolver candidate type.
type Candidate = resolver.Candidate

// Resolvers exports the resolver callback bundle.
type Resolvers = resolver.Resolvers

// Result exports the resolution outcome.
type Result = resolver.Result

// ImportResult exports the markdown import summary.
type ImportResult = markdown.ImportResult

// Module is the top level runtime facade. It owns the item store, the schema
// registry and the optional markdown importer, and exposes resolution entry
// points that feed stored items into the resolver as candidates.
type Module struct {
	cfg Config

	provider interfaces.LoggerProvider
	logger   interfaces.Logger

	db         *bun.DB
	items      items.Service
	schemas    *schema.Registry
	markdownFS fs.FS

	routes *urlkit.RouteManager
	links  *render.URLKitLinkResolver
}

// Option overrides one of the module's default collaborators.
type Option func(*Module)

// WithBunDB supplies the database handle backing the sqlite and postgres
// storage drivers.
func WithBunDB(db *bun.DB) Option {
	return func(m *Module) {
		m.db = db
	}
}

// WithItemService replaces the built-in item store entirely.
func WithItemService(svc items.Service) Option {
	return func(m *Module) {
		if svc != nil {
			m.items = svc
		}
	}
}

// WithLoggerProvider supplies the logger provider; the configured logging
// section is ignored when set.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithMarkdownFS supplies the filesystem markdown content is imported from.
func WithMarkdownFS(fsys fs.FS) Option {
	return func(m *Module) {
		m.markdownFS = fsys
	}
}

// OpenDatabase wraps a database handle with the bun dialect matching the
// storage driver. The result feeds WithBunDB.
func OpenDatabase(sqlDB *sql.DB, driver string) (*bun.DB, error) {
	return persistence.New(sqlDB, driver)
}

// New constructs the module from configuration plus optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{
		cfg:     cfg,
		schemas: schema.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil && cfg.Features.Logger {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    loggerFormat(cfg.Logging),
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}
	m.logger = logging.ModuleLogger(m.provider, "")

	if m.items == nil {
		svc, err := m.buildItemService()
		if err != nil {
			return nil, err
		}
		m.items = svc
	}

	if cfg.Links.RouteConfig != nil {
		m.routes = urlkit.NewRouteManager(cfg.Links.RouteConfig)
		m.links = render.NewURLKitLinkResolver(render.URLKitLinkOptions{
			Manager:   m.routes,
			Group:     cfg.Links.Group,
			Route:     cfg.Links.Route,
			SlugParam: cfg.Links.SlugParam,
			SlugField: cfg.Links.SlugField,
		})
	}

	return m, nil
}

func (m *Module) buildItemService() (items.Service, error) {
	options := []itemstore.ServiceOption{
		itemstore.WithLogger(logging.ItemsLogger(m.provider)),
	}
	if m.cfg.Features.Validation {
		options = append(options, itemstore.WithSchemaRegistry(m.schemas))
	}

	switch strings.ToLower(strings.TrimSpace(m.cfg.Storage.Driver)) {
	case "", "memory":
		return itemstore.NewService(itemstore.NewMemoryItemRepository(), options...), nil
	default:
		if m.db == nil {
			return nil, ErrDatabaseRequired
		}
		return itemstore.NewService(itemstore.NewBunItemRepository(m.db), options...), nil
	}
}

// Items returns the configured item service.
func (m *Module) Items() ItemService {
	return m.items
}

// RouteManager exposes the go-urlkit manager built from the links
// configuration, nil when link routing is not configured.
func (m *Module) RouteManager() *urlkit.RouteManager {
	return m.routes
}

// RegisterTypeSchema registers a JSON Schema for a content type. Upserts of
// that type validate their element payloads against it when the validation
// feature is enabled.
func (m *Module) RegisterTypeSchema(typeName string, document map[string]any) error {
	return m.schemas.Register(typeName, document)
}

// Migrate creates the item store tables. It is a no-op for the memory driver.
func (m *Module) Migrate(ctx context.Context) error {
	if m.db == nil {
		return nil
	}
	return itemstore.Migrate(ctx, m.db)
}

// ImportMarkdown walks the configured content filesystem and upserts every
// markdown file as a rich-text item.
func (m *Module) ImportMarkdown(ctx context.Context) (*ImportResult, error) {
	if !m.cfg.Features.Markdown || !m.cfg.Markdown.Enabled {
		return nil, ErrMarkdownDisabled
	}
	if m.markdownFS == nil {
		return nil, ErrMarkdownSourceMissing
	}

	importer := markdown.NewImporter(m.markdownFS, m.items, markdown.ImporterConfig{
		Dir:         m.cfg.Markdown.ContentDir,
		DefaultType: m.cfg.Markdown.DefaultType,
		Parser: interfaces.ParseOptions{
			Extensions: m.cfg.Markdown.Parser.Extensions,
			HardWraps:  m.cfg.Markdown.Parser.HardWraps,
			SafeMode:   m.cfg.Markdown.Parser.SafeMode,
		},
	}, markdown.WithImporterLogger(logging.MarkdownLogger(m.provider)))

	return importer.Import(ctx)
}

// Resolve traverses the markup with the supplied callbacks and candidates.
// When link routing is configured and no link callback was supplied, the
// go-urlkit backed resolver fills the gap.
func (m *Module) Resolve(markup string, res Resolvers, candidates []Candidate) (*Result, error) {
	if res.Link == nil && m.links != nil {
		res.Link = m.links.Resolve
	}
	return resolver.Resolve(markup, res, candidates)
}

// ResolveField resolves a stored rich text element, loading its declared
// linked items from the item store as candidates.
func (m *Module) ResolveField(ctx context.Context, field RichTextField, res Resolvers) (*Result, error) {
	linked, err := m.items.ByCodenames(ctx, field.Linked)
	if err != nil {
		return nil, err
	}
	return m.Resolve(field.Value, res, Candidates(linked))
}

// Candidates converts stored items into resolver candidates. The stored item
// rides along as the candidate payload.
func Candidates(records []*ContentItem) []Candidate {
	out := make([]Candidate, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		out = append(out, Candidate{
			ID:       record.ID.String(),
			Codename: record.Codename,
			Type:     record.Type,
			Item:     record,
		})
	}
	return out
}

func loggerFormat(cfg LoggingConfig) string {
	if strings.EqualFold(strings.TrimSpace(cfg.Provider), "console") {
		return "console"
	}
	return cfg.Format
}
