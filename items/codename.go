package items

import "github.com/goliatone/go-slug"

// CodenameNormalizer exposes the codename normalizer interface.
type CodenameNormalizer = slug.Normalizer

// DefaultCodenameNormalizer returns the default codename normalizer.
func DefaultCodenameNormalizer() CodenameNormalizer {
	return slug.Default()
}

// NormalizeCodename applies the default codename normalization rules.
func NormalizeCodename(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidCodename reports whether the codename matches the default rules.
func IsValidCodename(value string) bool {
	return slug.IsValid(value)
}
