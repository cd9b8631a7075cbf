// Package urlfind locates URLs in text fed one character at a time in
// reverse order, from a point of interest backward toward the start of
// the text. It is built for interactive callers, like a terminal
// highlighting the link under the pointer, that cannot afford to
// re-tokenize a whole buffer on every render.
package urlfind

import "fmt"

// VerdictKind classifies the state of the current run after a step.
type VerdictKind int

const (
	// NoURL means no match is in progress.
	NoURL VerdictKind = iota
	// PossibleURL means a run of valid URL characters is in progress
	// but no scheme has been matched yet.
	PossibleURL
	// CompleteURL means the run, read forward, begins with a known
	// scheme and is a recognized URL.
	CompleteURL
)

// Verdict is the result of advancing the parser by one character.
// Len is the number of characters in the current run; it is 0 when
// Kind is NoURL and positive otherwise.
type Verdict struct {
	Kind VerdictKind
	Len  int
}

func (v Verdict) String() string {
	switch v.Kind {
	case PossibleURL:
		return fmt.Sprintf("PossibleURL(%d)", v.Len)
	case CompleteURL:
		return fmt.Sprintf("CompleteURL(%d)", v.Len)
	default:
		return "NoURL"
	}
}
