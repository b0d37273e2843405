package render_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-richtext/render"
	"github.com/goliatone/go-richtext/resolver"
)

func TestPlaceholderItemResolverUnmatched(t *testing.T) {
	item := render.NewPlaceholderItemResolver(render.PlaceholderOptions{Class: "missing"})

	markup := `<p><object data-type="item" data-codename="gone"></object></p>`

	result, err := resolver.Resolve(markup, resolver.Resolvers{Item: item}, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(result.HTML, `<div class="missing" data-codename="gone">gone</div>`) {
		t.Fatalf("expected placeholder div, got %q", result.HTML)
	}
	if strings.Contains(result.HTML, "<object") {
		t.Fatalf("expected marker element replaced, got %q", result.HTML)
	}
}

func TestPlaceholderItemResolverMatchedLeftInPlace(t *testing.T) {
	item := render.NewPlaceholderItemResolver(render.PlaceholderOptions{})

	markup := `<object data-type="item" data-codename="promo"></object>`
	candidates := []resolver.Candidate{{Codename: "promo", Type: "banner"}}

	result, err := resolver.Resolve(markup, resolver.Resolvers{Item: item}, candidates)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(result.HTML, "<object") {
		t.Fatalf("expected matched reference untouched, got %q", result.HTML)
	}
}

func TestAssetImageResolverRewritesSrc(t *testing.T) {
	image := render.NewAssetImageResolver(map[string]string{
		"img-1": "https://cdn.example.com/img-1.png",
	})

	markup := `<img src="#" data-image-id="img-1"><img src="/keep.png" data-image-id="img-2">`

	result, err := resolver.Resolve(markup, resolver.Resolvers{Image: image}, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(result.HTML, `src="https://cdn.example.com/img-1.png"`) {
		t.Fatalf("expected rewritten src, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, `src="/keep.png"`) {
		t.Fatalf("expected unknown image untouched, got %q", result.HTML)
	}
}
