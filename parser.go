package urlfind

// Parser is a state machine for finding URLs. It takes the characters
// of a string in reverse order and reports after every character
// whether the characters seen so far form a URL.
//
// A Parser is owned by a single scanning session and is not safe for
// concurrent use; independent parsers may run in parallel since they
// share only their immutable SchemeTable.
type Parser struct {
	table *SchemeTable

	// indices[i] is the number of trailing characters of scheme i
	// matched so far; 0 means no candidate is alive for that scheme.
	indices []int
	length  int
}

// NewParser creates a parser using the default scheme table.
func NewParser() *Parser {
	return NewParserWithTable(defaultTable)
}

// NewParserWithTable creates a parser that recognizes the schemes in
// the given table.
func NewParserWithTable(table *SchemeTable) *Parser {
	return &Parser{
		table:   table,
		indices: make([]int, table.Len()),
	}
}

// Advance feeds the parser the next character, scanning backward, and
// returns the verdict for the run so far. It never fails: every rune
// is a legal input.
func (p *Parser) Advance(c rune) Verdict {
	// Advance alive candidates; note a scheme whose final character
	// just matched.
	completed := -1
	for i, idx := range p.indices {
		if idx == 0 {
			continue
		}
		if p.table.runeAt(i, idx) != c {
			p.indices[i] = 0
			continue
		}
		idx++
		if idx == p.table.runeLen(i) {
			completed = i
			p.indices[i] = 0
		} else {
			p.indices[i] = idx
		}
	}

	// No scheme literal is a suffix of another, so at most one
	// candidate completes per step.
	if completed >= 0 {
		p.length++
		return Verdict{Kind: CompleteURL, Len: p.length}
	}

	if !IsURLChar(c) {
		p.Reset()
		return Verdict{Kind: NoURL}
	}

	p.length++

	// A scheme may also begin later in the run: start a fresh
	// candidate wherever c matches a literal's last character.
	for i := 0; i < p.table.Len(); i++ {
		if p.indices[i] == 0 && p.table.runeAt(i, 0) == c {
			p.indices[i] = 1
		}
	}

	return Verdict{Kind: PossibleURL, Len: p.length}
}

// Reset returns the parser to its initial state, discarding the
// current run and all candidates.
func (p *Parser) Reset() {
	for i := range p.indices {
		p.indices[i] = 0
	}
	p.length = 0
}
