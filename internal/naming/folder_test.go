package naming

import "testing"

func TestAnchorFolder(t *testing.T) {
	folders := map[string]string{
		"ABC": "Action Figures",
		"PRP": "Props",
	}

	tests := []struct {
		name string
		sku  string
		want string
	}{
		{"mapped prefix", "ABC-100", "Action Figures"},
		{"mapped prefix is case insensitive", "abc-100", "Action Figures"},
		{"unmapped prefix falls back to literal", "ZZZ-9", "ZZZ"},
		{"no separator strips trailing digits", "PRP4410", "Props"},
		{"all digits after letters unmapped", "QRS77", "QRS"},
		{"empty sku goes unsorted", "", "UNSORTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnchorFolder(tt.sku, folders); got != tt.want {
				t.Errorf("AnchorFolder(%q) = %q, want %q", tt.sku, got, tt.want)
			}
		})
	}
}
