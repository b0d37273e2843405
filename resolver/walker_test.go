package resolver

import (
	"errors"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func walkBody(t *testing.T, tr *traversal, body *html.Node) {
	t.Helper()
	for c := body.FirstChild; c != nil; {
		next := c.NextSibling
		if err := tr.walk(c, 0); err != nil {
			t.Fatalf("walk: %v", err)
		}
		c = next
	}
}

func TestWalkAssignsOrdinalsInDocumentOrder(t *testing.T) {
	body := parseBody(t, `<object data-type="item" data-codename="a"></object>`+
		`<div><object data-type="item" data-codename="b"></object>`+
		`<span><object data-type="item" data-codename="c"></object></span></div>`+
		`<object data-type="item" data-codename="d"></object>`)

	var order []string
	var ordinals []int
	tr := newTraversal(Resolvers{
		Item: func(_ *html.Node, codename string, index int, _ *Candidate) (*Patch, error) {
			order = append(order, codename)
			ordinals = append(ordinals, index)
			return nil, nil
		},
	}, nil)
	walkBody(t, tr, body)

	want := []string{"a", "b", "c", "d"}
	if len(order) != len(want) {
		t.Fatalf("expected %d resolver invocations, got %d", len(want), len(order))
	}
	for i, codename := range want {
		if order[i] != codename {
			t.Fatalf("invocation %d resolved %q, want %q", i, order[i], codename)
		}
		if ordinals[i] != i {
			t.Fatalf("codename %q got ordinal %d, want %d", codename, ordinals[i], i)
		}
	}
}

func TestWalkIsIdempotentAcrossRepeatedTraversal(t *testing.T) {
	body := parseBody(t, `<object data-type="item" data-codename="a"></object>`)

	calls := 0
	tr := newTraversal(Resolvers{
		Item: func(_ *html.Node, _ string, _ int, _ *Candidate) (*Patch, error) {
			calls++
			return nil, nil
		},
	}, nil)

	walkBody(t, tr, body)
	walkBody(t, tr, body)

	if calls != 1 {
		t.Fatalf("expected a single resolution across repeated traversal, got %d", calls)
	}
	if len(tr.refs.items) != 1 {
		t.Fatalf("expected a single collected reference, got %d", len(tr.refs.items))
	}
}

func TestWalkLinksAndImagesDoNotConsumeCursor(t *testing.T) {
	body := parseBody(t, `<a data-item-id="l1">one</a>`+
		`<img data-image-id="i1"/>`+
		`<object data-type="item" data-codename="a"></object>`)

	var gotIndex = -1
	tr := newTraversal(Resolvers{
		Item: func(_ *html.Node, _ string, index int, _ *Candidate) (*Patch, error) {
			gotIndex = index
			return nil, nil
		},
	}, nil)
	walkBody(t, tr, body)

	if gotIndex != 0 {
		t.Fatalf("expected content reference ordinal 0 after link and image, got %d", gotIndex)
	}
	if len(tr.refs.links) != 1 || tr.refs.links[0].ItemID != "l1" {
		t.Fatalf("unexpected link references: %+v", tr.refs.links)
	}
	if len(tr.refs.images) != 1 || tr.refs.images[0].ImageID != "i1" {
		t.Fatalf("unexpected image references: %+v", tr.refs.images)
	}
}

func TestWalkGenericCallbackSkipsAnchorsAndImages(t *testing.T) {
	body := parseBody(t, `<p>text <a href="/plain">plain</a> <img src="p.png"/> <em>x</em></p>`)

	var tags []string
	tr := newTraversal(Resolvers{
		Element: func(el *html.Node) error {
			tags = append(tags, el.Data)
			return nil
		},
	}, nil)
	walkBody(t, tr, body)

	for _, tag := range tags {
		if tag == "a" || tag == "img" {
			t.Fatalf("generic callback invoked for <%s>", tag)
		}
	}
	want := map[string]bool{"p": false, "em": false}
	for _, tag := range tags {
		if _, ok := want[tag]; ok {
			want[tag] = true
		}
	}
	for tag, seen := range want {
		if !seen {
			t.Fatalf("generic callback never saw <%s>", tag)
		}
	}
}

func TestWalkResolvesNestedMarkersInsideClassifiedElement(t *testing.T) {
	body := parseBody(t, `<a data-item-id="l1"><img data-image-id="i1"/></a>`)

	var linkCalls, imageCalls int
	tr := newTraversal(Resolvers{
		Link: func(el *html.Node, itemID, _ string, _ *Candidate) (*Patch, error) {
			linkCalls++
			span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
			return ReplaceWith(span), nil
		},
		Image: func(_ *html.Node, _ string, _ *Candidate) (*Patch, error) {
			imageCalls++
			return nil, nil
		},
	}, nil)
	walkBody(t, tr, body)

	if linkCalls != 1 || imageCalls != 1 {
		t.Fatalf("expected both nested markers resolved, got link=%d image=%d", linkCalls, imageCalls)
	}
	if body.FirstChild == nil || body.FirstChild.Data != "span" {
		t.Fatalf("expected patch to replace the anchor after descent")
	}
}

func TestWalkResolverErrorAbortsTraversal(t *testing.T) {
	body := parseBody(t, `<object data-type="item" data-codename="a"></object>`+
		`<object data-type="item" data-codename="b"></object>`)

	boom := errors.New("boom")
	calls := 0
	tr := newTraversal(Resolvers{
		Item: func(_ *html.Node, _ string, _ int, _ *Candidate) (*Patch, error) {
			calls++
			return nil, boom
		},
	}, nil)

	var err error
	for c := body.FirstChild; c != nil && err == nil; c = c.NextSibling {
		err = tr.walk(c, 0)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected resolver error to propagate, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected traversal to stop after the failing resolver, got %d calls", calls)
	}
}

func TestWalkDepthGuard(t *testing.T) {
	// Build the chain directly; parsing this deep is not the guard under test.
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	current := root
	for i := 0; i < maxTraversalDepth+1; i++ {
		child := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
		current.AppendChild(child)
		current = child
	}

	tr := newTraversal(Resolvers{}, nil)
	if err := tr.walk(root, 0); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got %v", err)
	}
}

func TestApplyPatchRemove(t *testing.T) {
	body := parseBody(t, `<object data-type="item" data-codename="a"></object><p>keep</p>`)

	tr := newTraversal(Resolvers{
		Item: func(_ *html.Node, _ string, _ int, _ *Candidate) (*Patch, error) {
			return Remove(), nil
		},
	}, nil)
	walkBody(t, tr, body)

	if body.FirstChild == nil || body.FirstChild.Data != "p" {
		t.Fatalf("expected removed element to leave only <p>")
	}
}
