package urlfind

// Span marks a URL located within a scanned string. Start and End are
// rune offsets; the range is [Start, End).
type Span struct {
	Start int
	End   int
	URL   string
}

// Contains reports whether the rune offset pos falls inside the span.
func (sp Span) Contains(pos int) bool {
	return pos >= sp.Start && pos < sp.End
}

// Find scans s from its end toward its start and returns the rightmost
// URL, which is the first one a reverse scan completes. The reported
// span covers the shortest recognized URL ending its run; use FindAll
// for the longest form.
func Find(s string) (Span, bool) {
	runes := []rune(s)
	parser := NewParser()

	for i := len(runes) - 1; i >= 0; i-- {
		v := parser.Advance(runes[i])
		if v.Kind == CompleteURL {
			return Span{Start: i, End: i + v.Len, URL: string(runes[i : i+v.Len])}, true
		}
	}
	return Span{}, false
}

// FindAll returns every URL in s in forward order. When a run
// completes more than once (a URL prefixed by another scheme), the
// longest completion wins.
func FindAll(s string) []Span {
	runes := []rune(s)
	parser := NewParser()

	var spans []Span
	for i := len(runes) - 1; i >= 0; i-- {
		v := parser.Advance(runes[i])
		if v.Kind != CompleteURL {
			continue
		}
		sp := Span{Start: i, End: i + v.Len, URL: string(runes[i : i+v.Len])}
		// A later completion in the same run shares its end and
		// supersedes the earlier, shorter match.
		if len(spans) > 0 && spans[len(spans)-1].End == sp.End {
			spans[len(spans)-1] = sp
		} else {
			spans = append(spans, sp)
		}
	}

	// Reverse into forward order.
	for i, j := 0, len(spans)-1; i < j; i, j = i+1, j-1 {
		spans[i], spans[j] = spans[j], spans[i]
	}
	return spans
}

// URLAt returns the URL covering the rune offset pos in s, if any.
// This is the "link under the pointer" query: pos is typically a
// cursor column.
func URLAt(s string, pos int) (Span, bool) {
	for _, sp := range FindAll(s) {
		if sp.Contains(pos) {
			return sp, true
		}
	}
	return Span{}, false
}
