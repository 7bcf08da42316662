package classify

import "testing"

func TestRepairDigitTail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ABC-1OO", "ABC-100"},
		{"ABC-100", "ABC-100"},
		{"PRP44O1", "PRP4401"},
		{"ABC-OO", "ABC-OO"},    // block too short
		{"ABC-OOO", "ABC-OOO"},  // no digit in block, likely letters
		{"ABC-12", "ABC-12"},
	}
	for _, tt := range tests {
		if got := repairDigitTail(tt.in); got != tt.want {
			t.Errorf("repairDigitTail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitMergedWord(t *testing.T) {
	tests := []struct {
		in       string
		wantSKU  string
		wantWord string
	}{
		{"ABC-100RARE", "ABC-100", "RARE"},
		{"ABC-100", "ABC-100", ""},
		{"ABC-100XY", "ABC-100XY", ""}, // two letters, plausible suffix
	}
	for _, tt := range tests {
		sku, word := splitMergedWord(tt.in)
		if sku != tt.wantSKU || word != tt.wantWord {
			t.Errorf("splitMergedWord(%q) = (%q, %q), want (%q, %q)",
				tt.in, sku, word, tt.wantSKU, tt.wantWord)
		}
	}
}

func TestIsSKUToken(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"ABC-100", true},
		{"ABC-1OO", true},
		{"PRP&4410", true},
		{"X1A", true},
		{"RARE", false},     // no digit
		{"100", false},      // no letter
		{"1AB", false},      // digit first
		{"-AB1", false},     // leading hyphen
		{"AB1-", false},     // trailing hyphen
		{"S01E05", false},   // season code
		{"AB", false},       // too short
	}
	for _, tt := range tests {
		if got := isSKUToken(tt.tok); got != tt.want {
			t.Errorf("isSKUToken(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func TestCleanDescriptionSeasonRelocation(t *testing.T) {
	c := New(testConfig())
	got := c.Classify("DEF-200 S03E07 SCREEN MATCHED HELMET")
	if got.CandidateSKU != "DEF-200" {
		t.Fatalf("CandidateSKU = %q, want %q", got.CandidateSKU, "DEF-200")
	}
	if got.CandidateDesc != "SCREEN MATCHED HELMET S03E07" {
		t.Errorf("CandidateDesc = %q, want %q", got.CandidateDesc, "SCREEN MATCHED HELMET S03E07")
	}
}

func TestCleanDescriptionDateStamps(t *testing.T) {
	c := New(testConfig())
	got := c.Classify("ABC-100 RARE FIGURE 12/31/2024")
	if got.CandidateDesc != "RARE FIGURE" {
		t.Errorf("CandidateDesc = %q, want %q", got.CandidateDesc, "RARE FIGURE")
	}
}

func TestExtractMergedToken(t *testing.T) {
	c := New(testConfig())
	got := c.Classify("SKU ABC-100RARE FIGURE")
	if got.CandidateSKU != "ABC-100" {
		t.Errorf("CandidateSKU = %q, want %q", got.CandidateSKU, "ABC-100")
	}
	if got.CandidateDesc != "RARE FIGURE" {
		t.Errorf("CandidateDesc = %q, want %q", got.CandidateDesc, "RARE FIGURE")
	}
}
