package urlfind

import "testing"

func TestSuggestTypos(t *testing.T) {
	s := NewSchemeSuggester(DefaultSchemeTable())

	tests := []struct {
		scheme string
		want   string
	}{
		{"htps", "https"},
		{"mailtoo", "mailto"},
		{"mailt", "mailto"},
	}
	for _, tc := range tests {
		if got := s.Suggest(tc.scheme); got != tc.want {
			t.Errorf("Suggest(%q) = %q, want %q", tc.scheme, got, tc.want)
		}
	}
}

func TestSuggestKnownScheme(t *testing.T) {
	s := NewSchemeSuggester(DefaultSchemeTable())

	for _, scheme := range []string{"https", "ftp", "MAILTO"} {
		if !s.Known(scheme) {
			t.Errorf("Known(%q) = false, want true", scheme)
		}
		if got := s.Suggest(scheme); got != "" {
			t.Errorf("Suggest(%q) = %q, want no suggestion for a known scheme", scheme, got)
		}
	}
}

func TestSuggestNothingClose(t *testing.T) {
	s := NewSchemeSuggester(DefaultSchemeTable())

	if got := s.Suggest("zzzzzzzz"); got != "" {
		t.Errorf("Suggest(zzzzzzzz) = %q, want no suggestion", got)
	}
}

func TestSchemeName(t *testing.T) {
	tests := []struct {
		literal string
		want    string
	}{
		{"https://", "https"},
		{"mailto:", "mailto"},
		{"FTP://", "ftp"},
	}
	for _, tc := range tests {
		if got := schemeName(tc.literal); got != tc.want {
			t.Errorf("schemeName(%q) = %q, want %q", tc.literal, got, tc.want)
		}
	}
}
