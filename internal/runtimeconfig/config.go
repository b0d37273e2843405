// Package runtimeconfig holds the module configuration surface. The root
// package re-exports its types so host applications never import it directly.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrDefaultLanguageRequired = errors.New("richtext config: default language is required")
var ErrStorageDriverUnknown = errors.New("richtext config: storage driver is invalid")
var ErrMarkdownFeatureRequired = errors.New("richtext config: markdown feature must be enabled to configure markdown")
var ErrMarkdownContentDirRequired = errors.New("richtext config: markdown content directory is required when markdown is enabled")
var ErrLinksGroupRequired = errors.New("richtext config: link route group is required when link routing is configured")
var ErrLoggingProviderRequired = errors.New("richtext config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("richtext config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("richtext config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("richtext config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the module.
type Config struct {
	DefaultLanguage string
	Storage         StorageConfig
	Links           LinksConfig
	Markdown        MarkdownConfig
	Logging         LoggingConfig
	Features        Features
}

// StorageConfig selects the item store backend.
type StorageConfig struct {
	// Driver is one of "memory", "sqlite" or "postgres". The SQL drivers
	// require a database handle supplied at construction.
	Driver string
}

// LinksConfig captures routing configuration for internal link resolution.
type LinksConfig struct {
	RouteConfig *urlkit.Config
	Group       string
	Route       string
	SlugParam   string
	SlugField   string
}

// MarkdownConfig controls the markdown import pipeline.
type MarkdownConfig struct {
	Enabled     bool
	ContentDir  string
	DefaultType string
	Parser      MarkdownParserConfig
}

// MarkdownParserConfig configures the goldmark engine.
type MarkdownParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// Features toggles module functionality.
type Features struct {
	Markdown   bool
	Validation bool
	Logger     bool
}

// DefaultConfig returns opinionated defaults.
func DefaultConfig() Config {
	return Config{
		DefaultLanguage: "default",
		Storage: StorageConfig{
			Driver: "memory",
		},
		Links: LinksConfig{
			Route:     "page",
			SlugParam: "slug",
			SlugField: "slug",
		},
		Markdown: MarkdownConfig{
			ContentDir:  "content",
			DefaultType: "article",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLanguage) == "" {
		return ErrDefaultLanguageRequired
	}
	if driver := normalizeDriver(cfg.Storage.Driver); !isSupportedDriver(driver) {
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}
	if cfg.Links.RouteConfig != nil && strings.TrimSpace(cfg.Links.Group) == "" {
		return ErrLinksGroupRequired
	}
	if cfg.Markdown.Enabled {
		if !cfg.Features.Markdown {
			return ErrMarkdownFeatureRequired
		}
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case "", "memory", "sqlite", "sqlite3", "postgres", "pg", "postgresql":
		return true
	default:
		return false
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
