package urlfind

// DefaultSchemes lists the scheme literals recognized by default. Each
// literal includes its separator, so a run only completes once the
// full prefix (e.g. "https://") has been seen.
var DefaultSchemes = []string{
	"http://",
	"https://",
	"mailto:",
	"news:",
	"file://",
	"git://",
	"ssh://",
	"ftp://",
}

// SchemeTable is an immutable set of scheme literals stored for
// back-to-front matching. A single table is safely shared read-only by
// any number of parsers.
type SchemeTable struct {
	literals []string
	reversed [][]rune // literals[i] back to front
}

// NewSchemeTable builds a table from the given literals. Enumeration
// order follows the argument order; it does not affect correctness.
func NewSchemeTable(literals ...string) *SchemeTable {
	t := &SchemeTable{
		literals: make([]string, len(literals)),
		reversed: make([][]rune, len(literals)),
	}
	copy(t.literals, literals)
	for i, lit := range literals {
		runes := []rune(lit)
		rev := make([]rune, len(runes))
		for j, r := range runes {
			rev[len(runes)-1-j] = r
		}
		t.reversed[i] = rev
	}
	return t
}

var defaultTable = NewSchemeTable(DefaultSchemes...)

// DefaultSchemeTable returns the shared table built from DefaultSchemes.
func DefaultSchemeTable() *SchemeTable { return defaultTable }

// Len returns the number of literals in the table.
func (t *SchemeTable) Len() int { return len(t.literals) }

// Literal returns the i-th scheme literal.
func (t *SchemeTable) Literal(i int) string { return t.literals[i] }

// runeAt returns the literal's idx-th character counting from its end,
// so runeAt(i, 0) is the last character of literals[i].
func (t *SchemeTable) runeAt(i, idx int) rune { return t.reversed[i][idx] }

// runeLen returns the length of the i-th literal in runes.
func (t *SchemeTable) runeLen(i int) int { return len(t.reversed[i]) }
