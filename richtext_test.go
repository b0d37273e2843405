package richtext_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	urlkit "github.com/goliatone/go-urlkit"
	"golang.org/x/net/html"

	richtext "github.com/goliatone/go-richtext"
	"github.com/goliatone/go-richtext/items"
	"github.com/goliatone/go-richtext/render"
	"github.com/goliatone/go-richtext/resolver"
)

func newTestModule(t *testing.T, mutate func(*richtext.Config), opts ...richtext.Option) *richtext.Module {
	t.Helper()

	cfg := richtext.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	module, err := richtext.New(cfg, opts...)
	if err != nil {
		t.Fatalf("richtext.New: %v", err)
	}
	return module
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := richtext.DefaultConfig()
	cfg.Storage.Driver = "oracle"

	if _, err := richtext.New(cfg); !errors.Is(err, richtext.ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestNewSQLDriverRequiresDatabase(t *testing.T) {
	cfg := richtext.DefaultConfig()
	cfg.Storage.Driver = "sqlite"

	if _, err := richtext.New(cfg); !errors.Is(err, richtext.ErrDatabaseRequired) {
		t.Fatalf("expected ErrDatabaseRequired, got %v", err)
	}
}

func TestResolveFieldLoadsLinkedCandidates(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t, nil)

	if _, err := module.Items().Upsert(ctx, items.UpsertItemRequest{
		Codename: "promo",
		Name:     "Promo banner",
		Type:     "banner",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	field := richtext.RichTextField{
		Element: "body",
		Value: `<p>Intro</p>` +
			`<object type="application/kenticocloud" data-type="item" data-codename="promo"></object>` +
			`<object data-type="item" data-codename="gone"></object>`,
		Linked: []string{"promo", "gone"},
	}

	var seen []string
	var matched []bool

	result, err := module.ResolveField(ctx, field, richtext.Resolvers{
		Item: func(el *html.Node, codename string, index int, candidate *richtext.Candidate) (*resolver.Patch, error) {
			seen = append(seen, codename)
			matched = append(matched, candidate != nil)
			if candidate != nil {
				if _, ok := candidate.Item.(*richtext.ContentItem); !ok {
					t.Fatalf("expected stored item payload, got %T", candidate.Item)
				}
			}
			return nil, nil
		},
	})
	if err != nil {
		t.Fatalf("ResolveField: %v", err)
	}

	if len(seen) != 2 || seen[0] != "promo" || seen[1] != "gone" {
		t.Fatalf("unexpected codenames %v", seen)
	}
	if !matched[0] || matched[1] {
		t.Fatalf("expected stored item matched and missing item unmatched, got %v", matched)
	}
	if len(result.LinkedItemCodenames) != 2 {
		t.Fatalf("unexpected linked item codenames %v", result.LinkedItemCodenames)
	}
}

func TestResolveUsesConfiguredLinkRouting(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t, func(cfg *richtext.Config) {
		cfg.Links.RouteConfig = &urlkit.Config{
			Groups: []urlkit.GroupConfig{
				{
					Name:    "frontend",
					BaseURL: "https://example.com",
					Paths:   map[string]string{"page": "/pages/:slug"},
				},
			},
		}
		cfg.Links.Group = "frontend"
	})

	about, err := module.Items().Upsert(ctx, items.UpsertItemRequest{
		Codename: "about-us",
		Name:     "About us",
		Type:     "page",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	markup := `<a href="" data-item-id="` + about.ID.String() + `">about</a>`
	candidates := richtext.Candidates([]*richtext.ContentItem{about})

	result, err := module.Resolve(markup, richtext.Resolvers{}, candidates)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !strings.Contains(result.HTML, `href="https://example.com/pages/about-us"`) {
		t.Fatalf("expected routed href, got %q", result.HTML)
	}
}

func TestSchemaValidationOnUpsert(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t, func(cfg *richtext.Config) {
		cfg.Features.Validation = true
	})

	err := module.RegisterTypeSchema("article", map[string]any{
		"type":     "object",
		"required": []any{"body"},
	})
	if err != nil {
		t.Fatalf("RegisterTypeSchema: %v", err)
	}

	_, err = module.Items().Upsert(ctx, items.UpsertItemRequest{
		Codename: "post",
		Name:     "Post",
		Type:     "article",
		Elements: map[string]any{"title": "no body"},
	})
	if !errors.Is(err, items.ErrElementsInvalid) {
		t.Fatalf("expected schema validation failure, got %v", err)
	}

	_, err = module.Items().Upsert(ctx, items.UpsertItemRequest{
		Codename: "post",
		Name:     "Post",
		Type:     "article",
		Elements: map[string]any{"body": items.RichTextElement("<p>hi</p>")},
	})
	if err != nil {
		t.Fatalf("expected valid payload to upsert, got %v", err)
	}
}

func TestImportMarkdownEndToEnd(t *testing.T) {
	ctx := context.Background()

	fsys := fstest.MapFS{
		"content/welcome.md": &fstest.MapFile{Data: []byte(`---
name: Welcome
type: page
---
# Welcome

Hello there.
`)},
	}

	module := newTestModule(t, func(cfg *richtext.Config) {
		cfg.Features.Markdown = true
		cfg.Markdown.Enabled = true
	}, richtext.WithMarkdownFS(fsys))

	result, err := module.ImportMarkdown(ctx)
	if err != nil {
		t.Fatalf("ImportMarkdown: %v", err)
	}
	if len(result.Imported) != 1 {
		t.Fatalf("expected one imported file, got %v", result.Imported)
	}

	welcome, err := module.Items().Get(ctx, "welcome")
	if err != nil {
		t.Fatalf("get welcome: %v", err)
	}
	field, ok := welcome.RichText("body")
	if !ok {
		t.Fatalf("expected rich text body")
	}
	if !strings.Contains(field.Value, "Welcome</h1>") {
		t.Fatalf("expected rendered heading, got %q", field.Value)
	}

	if _, err := module.ResolveField(ctx, field, richtext.Resolvers{}); err != nil {
		t.Fatalf("ResolveField on imported content: %v", err)
	}
}

func TestImportMarkdownGuards(t *testing.T) {
	module := newTestModule(t, nil)

	if _, err := module.ImportMarkdown(context.Background()); !errors.Is(err, richtext.ErrMarkdownDisabled) {
		t.Fatalf("expected ErrMarkdownDisabled, got %v", err)
	}

	module = newTestModule(t, func(cfg *richtext.Config) {
		cfg.Features.Markdown = true
		cfg.Markdown.Enabled = true
	})
	if _, err := module.ImportMarkdown(context.Background()); !errors.Is(err, richtext.ErrMarkdownSourceMissing) {
		t.Fatalf("expected ErrMarkdownSourceMissing, got %v", err)
	}
}

func TestPlaceholderRendering(t *testing.T) {
	module := newTestModule(t, nil)

	markup := `<object data-type="item" data-codename="gone"></object>`
	result, err := module.Resolve(markup, richtext.Resolvers{
		Item: render.NewPlaceholderItemResolver(render.PlaceholderOptions{}),
	}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !strings.Contains(result.HTML, `class="richtext-unresolved"`) {
		t.Fatalf("expected placeholder output, got %q", result.HTML)
	}
}
