package items

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCodenameRequired  = errors.New("items: codename is required")
	ErrCodenameInvalid   = errors.New("items: codename contains invalid characters")
	ErrNameRequired      = errors.New("items: name is required")
	ErrTypeRequired      = errors.New("items: content type is required")
	ErrItemNotFound      = errors.New("items: item not found")
	ErrElementsInvalid   = errors.New("items: element payload failed schema validation")
	ErrRepositoryMissing = errors.New("items: repository not configured")
)

// NotFoundError captures missing item lookups with the key that failed.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrItemNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return ErrItemNotFound.Error()
	}
	return fmt.Sprintf("%s: %s=%s", ErrItemNotFound.Error(), e.resource(), key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrItemNotFound
}

func (e *NotFoundError) resource() string {
	if resource := strings.TrimSpace(e.Resource); resource != "" {
		return resource
	}
	return "item"
}

// SchemaValidationError captures a payload that failed its content type schema.
type SchemaValidationError struct {
	Codename string
	Type     string
	Reason   error
}

func (e *SchemaValidationError) Error() string {
	if e == nil {
		return ErrElementsInvalid.Error()
	}
	if e.Reason != nil {
		return fmt.Sprintf("%s: type=%s codename=%s: %v", ErrElementsInvalid.Error(), e.Type, e.Codename, e.Reason)
	}
	return fmt.Sprintf("%s: type=%s codename=%s", ErrElementsInvalid.Error(), e.Type, e.Codename)
}

func (e *SchemaValidationError) Unwrap() error {
	return ErrElementsInvalid
}
