// Package normalizers provides lookup normalization policies for user
// and role names.
package normalizers

import (
	"strings"

	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.LookupNormalizer = (*UpperInvariant)(nil)

// UpperInvariant maps names to an invariant uppercase form using
// Unicode simple case mapping, which is stable across process locales.
// Normalized output is used as a uniqueness and lookup key, so the
// mapping must never depend on environment state.
type UpperInvariant struct{}

// NewUpperInvariant creates the default lookup normalizer.
func NewUpperInvariant() *UpperInvariant {
	return &UpperInvariant{}
}

// Normalize returns the invariant uppercase form of name.
func (n *UpperInvariant) Normalize(name string) string {
	return strings.ToUpper(name)
}
