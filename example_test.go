package urlfind_test

import (
	"fmt"

	"github.com/JackWReid/urlfind"
)

// Feed characters in reverse order; the parser reports a complete URL
// as soon as its first character arrives.
func ExampleParser_Advance() {
	parser := urlfind.NewParser()

	parser.Advance(' ')
	for _, c := range reverse("ttps://example.org") {
		parser.Advance(c)
	}

	fmt.Println(parser.Advance('h'))
	// Output: CompleteURL(19)
}

func ExampleFind() {
	span, ok := urlfind.Find("before https://example.org after")
	if ok {
		fmt.Printf("%q at %d..%d\n", span.URL, span.Start, span.End)
	}
	// Output: "https://example.org" at 7..26
}

func reverse(s string) []rune {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return runes
}
