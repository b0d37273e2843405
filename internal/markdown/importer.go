package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/items"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// ImporterConfig configures how markdown files are discovered and mapped to
// items.
type ImporterConfig struct {
	// Dir is the root directory within the filesystem; "." imports the whole
	// filesystem.
	Dir string
	// DefaultType is applied when a file's front matter omits the content
	// type.
	DefaultType string
	// Parser options used when rendering bodies to HTML.
	Parser interfaces.ParseOptions
}

// Importer loads markdown files from a filesystem and upserts them into the
// item store as rich-text items.
type Importer struct {
	fsys    fs.FS
	cfg     ImporterConfig
	parser  interfaces.MarkdownParser
	service items.Service
	logger  interfaces.Logger
}

// ImporterOption customises importer construction.
type ImporterOption func(*Importer)

// WithImporterLogger attaches a logger to the importer.
func WithImporterLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithParser overrides the markdown parser; goldmark is used otherwise.
func WithParser(parser interfaces.MarkdownParser) ImporterOption {
	return func(i *Importer) {
		if parser != nil {
			i.parser = parser
		}
	}
}

// NewImporter constructs an importer over the supplied filesystem and item
// service.
func NewImporter(fsys fs.FS, service items.Service, cfg ImporterConfig, opts ...ImporterOption) *Importer {
	imp := &Importer{
		fsys:    fsys,
		cfg:     cfg,
		parser:  NewGoldmarkParser(cfg.Parser),
		service: service,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// ImportResult summarises one import run.
type ImportResult struct {
	Imported []string
	Skipped  []string
}

// Import walks the filesystem for markdown files and upserts each into the
// item store. Files without a codename in their front matter derive one from
// the file name. The walk order is deterministic (lexical by path).
func (i *Importer) Import(ctx context.Context) (*ImportResult, error) {
	dir := i.cfg.Dir
	if dir == "" {
		dir = "."
	}

	result := &ImportResult{}

	var paths []string
	err := fs.WalkDir(i.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(p, ".md") {
			result.Skipped = append(result.Skipped, p)
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("markdown import walk: %w", err)
	}
	sort.Strings(paths)
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := i.importFile(ctx, p); err != nil {
			return nil, fmt.Errorf("markdown import %s: %w", p, err)
		}
		result.Imported = append(result.Imported, p)
	}
	return result, nil
}

func (i *Importer) importFile(ctx context.Context, p string) error {
	source, err := fs.ReadFile(i.fsys, p)
	if err != nil {
		return err
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return err
	}

	rendered, err := i.parser.ParseWithOptions(body, i.cfg.Parser)
	if err != nil {
		return err
	}

	codename := meta.Codename
	if codename == "" {
		base := strings.TrimSuffix(path.Base(p), ".md")
		codename, err = items.NormalizeCodename(base)
		if err != nil {
			return err
		}
	}

	name := meta.Name
	if name == "" {
		name = codename
	}
	typeName := meta.Type
	if typeName == "" {
		typeName = i.cfg.DefaultType
	}

	_, err = i.service.Upsert(ctx, items.UpsertItemRequest{
		Codename: codename,
		Name:     name,
		Type:     typeName,
		Language: meta.Language,
		Elements: map[string]any{
			meta.Element: items.RichTextElement(string(rendered), meta.Linked...),
		},
	})
	if err != nil {
		return err
	}

	i.logger.Debug("markdown file imported", "path", p, "codename", codename)
	return nil
}
