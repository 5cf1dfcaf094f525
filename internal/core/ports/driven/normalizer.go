package driven

// LookupNormalizer maps names and emails to the canonical form used as
// uniqueness and lookup keys. Normalize is pure and deterministic:
// equal inputs produce equal outputs regardless of process locale, and
// normalizing twice equals normalizing once.
type LookupNormalizer interface {
	Normalize(name string) string
}
