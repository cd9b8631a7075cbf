package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"

	"github.com/JackWReid/urlfind"
)

type scanOptions struct {
	Hyperlink bool
	Suggester *urlfind.SchemeSuggester
}

// schemeTokenRe picks out scheme-shaped prefixes (RFC 3986 scheme
// characters followed by "://") so mistyped schemes can be reported.
var schemeTokenRe = regexp.MustCompile(`([A-Za-z][A-Za-z0-9+.-]*)://`)

// scanReader scans r line by line and writes one match per line as
// name:line:column: url. Columns are 1-based rune offsets.
func scanReader(w io.Writer, name string, r io.Reader, opts scanOptions) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()

		for _, sp := range urlfind.FindAll(line) {
			url := sp.URL
			if opts.Hyperlink {
				url = wrapHyperlink(url)
			}
			fmt.Fprintf(w, "%s:%d:%d: %s\n", name, lineNum, sp.Start+1, url)
		}

		if opts.Suggester != nil {
			reportUnknownSchemes(w, name, lineNum, line, opts.Suggester)
		}
	}
	return sc.Err()
}

func reportUnknownSchemes(w io.Writer, name string, lineNum int, line string, suggester *urlfind.SchemeSuggester) {
	for _, m := range schemeTokenRe.FindAllStringSubmatchIndex(line, -1) {
		scheme := line[m[2]:m[3]]
		if suggester.Known(scheme) {
			continue
		}
		fix := suggester.Suggest(scheme)
		if fix == "" {
			continue
		}
		col := utf8.RuneCountInString(line[:m[2]]) + 1
		fmt.Fprintf(w, "%s:%d:%d: unknown scheme %q, did you mean %q?\n", name, lineNum, col, scheme, fix)
	}
}
