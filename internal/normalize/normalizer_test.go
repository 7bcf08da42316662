package normalize

import "testing"

func TestNormalize(t *testing.T) {
	n := New(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"uppercases and trims", "  abc-100 rare figure  ", "ABC-100 RARE FIGURE"},
		{"collapses space runs", "ABC   \t 100", "ABC 100"},
		{"line breaks survive as single newlines", "SKU ABC-100\n\n\nRARE FIGURE", "SKU ABC-100\nRARE FIGURE"},
		{"mixed run with newline collapses to newline", "A \n B", "A\nB"},
		{"soft hyphen stripped", "WHISTLE­BLOWER", "WHISTLEBLOWER"},
		{"typographic quotes folded", "CLARKE’S PROP", "CLARKE'S PROP"},
		{"em dash folded", "RARE — FIGURE", "RARE - FIGURE"},
		{"nbsp treated as space", "ABC 100", "ABC 100"},
		{"digit confusables untouched", "ABC-1OO I5", "ABC-1OO I5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := New(nil)
	inputs := []string{
		"",
		"  abc-100 rare figure  ",
		"CERT OF AUTH\nSKU ABC-100 RARE FIGURE",
		"WHISTLE­BLOWER – CLARKE’S BACKPACK",
		"ümlaut ﬁgure   2O24",
	}
	for _, input := range inputs {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeCustomTable(t *testing.T) {
	n := New(map[string]string{"|": "I"})
	if got := n.Normalize("f|gure"); got != "FIGURE" {
		t.Errorf("custom table: got %q, want %q", got, "FIGURE")
	}
}
