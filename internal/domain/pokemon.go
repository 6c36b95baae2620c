// Package domain contains core business entities and rules.
package domain

// cavernHabitat is the only habitat value that influences dialect routing.
// The comparison is literal and case-sensitive.
const cavernHabitat = "Cave"

// SpeciesInfo describes a Pokémon species as exposed by this service.
// It is a value type: copies are independent and nothing mutates a
// SpeciesInfo after it has been built.
type SpeciesInfo struct {
	// Name is the species name exactly as returned upstream.
	Name string

	// Description is the flavor text, or its translation.
	Description string

	// Habitat is the upstream habitat name.
	Habitat string

	// IsLegendary reports whether the species is legendary.
	IsLegendary bool
}

// WithDescription returns a copy of the info carrying a new description.
func (s SpeciesInfo) WithDescription(description string) SpeciesInfo {
	s.Description = description
	return s
}

// Dialect is a translation target.
type Dialect int

const (
	// DialectShakespeare rewrites text in Shakespearean English.
	DialectShakespeare Dialect = iota

	// DialectYoda rewrites text in Yoda-speak.
	DialectYoda
)

// String returns the dialect name used in logs and endpoint lookups.
func (d Dialect) String() string {
	switch d {
	case DialectYoda:
		return "yoda"
	case DialectShakespeare:
		return "shakespeare"
	default:
		return "unknown"
	}
}

// SelectDialect picks the translation dialect for a species.
// Cave dwellers and legendary species get Yoda, everything else Shakespeare.
func SelectDialect(habitat string, isLegendary bool) Dialect {
	if habitat == cavernHabitat || isLegendary {
		return DialectYoda
	}

	return DialectShakespeare
}
