package urlfind

import "testing"

func TestIsURLChar(t *testing.T) {
	valid := []rune{'a', 'Z', '0', '9', 'ü', 'é', '認',
		'-', '.', '_', '~', ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', '%'}
	for _, r := range valid {
		if !IsURLChar(r) {
			t.Errorf("IsURLChar(%q) = false, want true", r)
		}
	}

	invalid := []rune{' ', '\t', '\n', '\r', '\x00', '\x1f', '\x7f',
		'<', '>', '"', '{', '}', '\\', '^', '`', '|', '│'}
	for _, r := range invalid {
		if IsURLChar(r) {
			t.Errorf("IsURLChar(%q) = true, want false", r)
		}
	}
}
