package resolver

import "errors"

var (
	// ErrMissingCodename aborts the parse: a content reference without its
	// codename attribute is an unrecoverable authoring error that would
	// otherwise vanish invisibly from the output.
	ErrMissingCodename = errors.New("resolver: content reference is missing its codename attribute")
	// ErrDepthExceeded aborts the parse when markup nesting goes past the
	// traversal depth limit. Nesting depth is input-controlled.
	ErrDepthExceeded = errors.New("resolver: markup nesting exceeds the traversal depth limit")
)
