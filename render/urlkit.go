// Package render provides ready-made resolver callbacks: URL construction for
// internal links via go-urlkit, placeholder rendering for unresolved content
// references, and asset URL rewriting for images.
package render

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
	"golang.org/x/net/html"

	"github.com/goliatone/go-richtext/resolver"
)

// URLKitLinkOptions configures the go-urlkit backed link resolver.
type URLKitLinkOptions struct {
	Manager *urlkit.RouteManager
	// Group is the route group path; nested groups are joined with dots.
	Group string
	// Route names the route within the group. Defaults to "page".
	Route string
	// SlugParam is the route parameter the slug is bound to. Defaults to
	// "slug".
	SlugParam string
	// SlugField is the key looked up in a candidate's Item payload (when it
	// is a map) to obtain the slug. Defaults to "slug". The candidate
	// codename is the fallback.
	SlugField string
}

// URLKitLinkResolver builds hrefs for internal links using a go-urlkit
// RouteManager. Anchors whose item has no matching candidate are left
// untouched so callers can layer their own fallback.
type URLKitLinkResolver struct {
	manager *urlkit.RouteManager

	groupPath string
	route     string
	slugParam string
	slugField string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewURLKitLinkResolver constructs a link resolver backed by go-urlkit.
func NewURLKitLinkResolver(opts URLKitLinkOptions) *URLKitLinkResolver {
	if opts.Route == "" {
		opts.Route = "page"
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	if opts.SlugField == "" {
		opts.SlugField = "slug"
	}

	return &URLKitLinkResolver{
		manager:    opts.Manager,
		groupPath:  strings.TrimSpace(opts.Group),
		route:      opts.Route,
		slugParam:  opts.SlugParam,
		slugField:  opts.SlugField,
		groupCache: make(map[string]*urlkit.Group),
	}
}

// Resolve satisfies resolver.LinkResolver. The anchor keeps its children; only
// the href attribute is rewritten.
func (r *URLKitLinkResolver) Resolve(el *html.Node, itemID, text string, item *resolver.Candidate) (*resolver.Patch, error) {
	_ = text
	if r == nil || r.manager == nil || item == nil {
		return nil, nil
	}

	group, err := r.groupForPath(r.groupPath)
	if err != nil {
		return nil, err
	}

	builder, err := r.safeBuilder(group, r.route)
	if err != nil {
		return nil, err
	}

	builder.WithParam(r.slugParam, r.slugFor(item))

	url, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("render: build link url for %q: %w", itemID, err)
	}

	resolver.SetAttr(el, "href", url)
	return nil, nil
}

func (r *URLKitLinkResolver) slugFor(item *resolver.Candidate) string {
	if payload, ok := item.Item.(map[string]any); ok {
		if raw, ok := payload[r.slugField]; ok {
			if slug := strings.TrimSpace(fmt.Sprint(raw)); slug != "" {
				return slug
			}
		}
	}
	return item.Codename
}

func (r *URLKitLinkResolver) groupForPath(path string) (*urlkit.Group, error) {
	if path == "" {
		return nil, fmt.Errorf("render: route group not configured")
	}

	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	current, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

// safeBuilder wraps Builder in a recover since go-urlkit panics on unknown
// route names.
func (r *URLKitLinkResolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("render: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("render: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, nil
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("render: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, nil
}
