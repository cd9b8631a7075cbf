package urlfind

import "testing"

func TestFindPosition(t *testing.T) {
	tests := []struct {
		input string
		start int
		end   int
		url   string
	}{
		{"before https://example.org after", 7, 26, "https://example.org"},
		{"before https://example.org", 7, 26, "https://example.org"},
		{"https://example.org after", 0, 19, "https://example.org"},
		{"https://example.org", 0, 19, "https://example.org"},
	}
	for _, tc := range tests {
		sp, ok := Find(tc.input)
		if !ok {
			t.Errorf("Find(%q): no URL found", tc.input)
			continue
		}
		if sp.Start != tc.start || sp.End != tc.end || sp.URL != tc.url {
			t.Errorf("Find(%q) = {%d %d %q}, want {%d %d %q}",
				tc.input, sp.Start, sp.End, sp.URL, tc.start, tc.end, tc.url)
		}
	}
}

func TestFindNone(t *testing.T) {
	for _, input := range []string{"", "no urls here", "invalidscheme://example.org"} {
		if sp, ok := Find(input); ok {
			t.Errorf("Find(%q) = %v, want none", input, sp)
		}
	}
}

func TestFindAllMultiple(t *testing.T) {
	input := "test https://example.org illegal://example.com https://example.com/test 123"
	spans := FindAll(input)

	want := []Span{
		{Start: 5, End: 24, URL: "https://example.org"},
		{Start: 47, End: 71, URL: "https://example.com/test"},
	}
	if len(spans) != len(want) {
		t.Fatalf("FindAll returned %d spans, want %d: %v", len(spans), len(want), spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d: got %v, want %v", i, spans[i], want[i])
		}
	}
}

func TestFindAllLongestPerRun(t *testing.T) {
	// Both completions share a run; the longer URL wins.
	spans := FindAll("git://http://x")
	if len(spans) != 1 || spans[0].URL != "git://http://x" {
		t.Errorf("expected the longest completion only, got %v", spans)
	}
}

func TestFindUnicodeOffsets(t *testing.T) {
	// Offsets are rune counts, not bytes.
	sp, ok := Find("héllo https://üñîçøðé.com/ä done")
	if !ok {
		t.Fatal("no URL found")
	}
	if sp.Start != 6 || sp.End != 27 || sp.URL != "https://üñîçøðé.com/ä" {
		t.Errorf("got {%d %d %q}", sp.Start, sp.End, sp.URL)
	}
}

func TestURLAt(t *testing.T) {
	line := "see https://example.org and ftp://host/file"

	tests := []struct {
		pos  int
		url  string
		want bool
	}{
		{0, "", false},
		{4, "https://example.org", true},
		{12, "https://example.org", true},
		{22, "https://example.org", true},
		{23, "", false},
		{28, "ftp://host/file", true},
		{42, "ftp://host/file", true},
		{43, "", false},
	}
	for _, tc := range tests {
		sp, ok := URLAt(line, tc.pos)
		if ok != tc.want {
			t.Errorf("URLAt(%d): ok = %v, want %v", tc.pos, ok, tc.want)
			continue
		}
		if ok && sp.URL != tc.url {
			t.Errorf("URLAt(%d) = %q, want %q", tc.pos, sp.URL, tc.url)
		}
	}
}
