// Package schema validates item element payloads against per-type JSON
// Schemas. Registration is optional; unregistered types pass through.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrTypeNameRequired = errors.New("schema: type name is required")
	ErrSchemaInvalid    = errors.New("schema: schema document is invalid")
)

// Registry holds compiled schemas keyed by content type codename. Safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{compiled: make(map[string]*jsonschema.Schema)}
}

// Register compiles and stores the schema document for a content type,
// replacing any previous registration.
func (r *Registry) Register(typeName string, document map[string]any) error {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return ErrTypeNameRequired
	}

	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := jsonschema.CompileString(typeName+".json", string(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}

	r.mu.Lock()
	r.compiled[typeName] = compiled
	r.mu.Unlock()
	return nil
}

// Has reports whether a schema is registered for the content type.
func (r *Registry) Has(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.compiled[strings.TrimSpace(typeName)]
	return ok
}

// Validate checks an element payload against the content type's schema.
// Unregistered types validate successfully.
func (r *Registry) Validate(typeName string, payload map[string]any) error {
	r.mu.RLock()
	compiled, ok := r.compiled[strings.TrimSpace(typeName)]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	// Round-trip through JSON so the validator sees canonical types
	// regardless of how the payload map was assembled.
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("schema: encode payload: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("schema: decode payload: %w", err)
	}
	return compiled.Validate(doc)
}
