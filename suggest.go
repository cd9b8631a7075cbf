package urlfind

import (
	"strings"

	"github.com/sajari/fuzzy"
)

// SchemeSuggester suggests a known scheme for a possibly mistyped one,
// e.g. "htps" -> "https". It is backed by a fuzzy spelling model
// trained on a table's scheme names.
type SchemeSuggester struct {
	model   *fuzzy.Model
	schemes map[string]bool
}

// NewSchemeSuggester builds a suggester from the table's literals.
func NewSchemeSuggester(table *SchemeTable) *SchemeSuggester {
	model := fuzzy.NewModel()

	// Depth 2 catches the common one- and two-edit typos.
	model.SetDepth(2)
	// Every scheme name occurs once, so accept any trained word.
	model.SetThreshold(1)

	schemes := make(map[string]bool, table.Len())
	for i := 0; i < table.Len(); i++ {
		name := schemeName(table.Literal(i))
		schemes[name] = true
		model.TrainWord(name)
	}

	return &SchemeSuggester{model: model, schemes: schemes}
}

// Known reports whether scheme is one of the table's scheme names.
func (s *SchemeSuggester) Known(scheme string) bool {
	return s.schemes[strings.ToLower(scheme)]
}

// Suggest returns the closest known scheme name for the given one, or
// "" if the scheme is already known or nothing is close enough.
func (s *SchemeSuggester) Suggest(scheme string) string {
	lower := strings.ToLower(scheme)
	if s.schemes[lower] {
		return ""
	}

	correction := s.model.SpellCheck(lower)
	if correction == "" || correction == lower {
		return ""
	}
	return correction
}

// schemeName strips the separator from a scheme literal: "https://"
// and "mailto:" become "https" and "mailto".
func schemeName(literal string) string {
	return strings.ToLower(strings.TrimRight(literal, ":/"))
}
