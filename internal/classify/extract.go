package classify

import (
	"regexp"
	"strings"
)

var (
	// usedInPattern captures "SKU DESCRIPTION WAS USED IN ..." certificate
	// sentences. The first group requires a digit so prose never matches.
	usedInPattern = regexp.MustCompile(`(?s)([A-Z&][A-Z0-9&]*-?[0-9][A-Z0-9]*)\s+(.+?)\s+WAS USED IN`)
	// mergedWordPattern finds a word OCR fused onto the SKU's digit tail.
	mergedWordPattern = regexp.MustCompile(`^(.*[0-9])([A-Z]{3,})$`)
	// skuTailPattern isolates the trailing digit block for O/0 repair.
	skuTailPattern   = regexp.MustCompile(`([0-9O]{3,})$`)
	dateStampPattern = regexp.MustCompile(`\b[0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4}\b`)
	seasonPattern    = regexp.MustCompile(`\bS[0-9]{1,2}E[0-9]{1,2}\b`)
)

// anchorPhrases introduce the item line on certificate layouts that put the
// SKU on its own line below the preamble.
var anchorPhrases = []string{
	"THE FOLLOWING ITEM",
	"ITEM DESCRIBED BELOW",
	"PRODUCTION OF THE ABOVE",
}

// extract pulls SKU and description candidates out of normalized text.
// Strategies run most-specific first; the first one that yields a plausible
// SKU token wins. Extraction never fails, it just returns empty candidates.
func (c *Classifier) extract(text string) (string, string) {
	if m := usedInPattern.FindStringSubmatch(text); m != nil && isSKUToken(m[1]) {
		sku, lead := splitMergedWord(m[1])
		desc := c.cleanDescription(joinWords(lead, m[2]), m[1])
		return repairDigitTail(sku), desc
	}
	if sku, rest, ok := c.anchorLine(text); ok {
		repaired, lead := splitMergedWord(sku)
		desc := c.cleanDescription(joinWords(lead, rest), sku)
		return repairDigitTail(repaired), desc
	}
	if sku, ok := c.labelAdjacent(text); ok {
		repaired, lead := splitMergedWord(sku)
		desc := joinWords(lead, c.cleanDescription(text, sku))
		return repairDigitTail(repaired), desc
	}
	if sku, ok := firstStructuralToken(text); ok {
		repaired, lead := splitMergedWord(sku)
		desc := joinWords(lead, c.cleanDescription(text, sku))
		return repairDigitTail(repaired), desc
	}
	return "", c.cleanDescription(text, "")
}

// anchorLine looks for an anchor phrase and reads the SKU off the first
// non-empty line that follows it.
func (c *Classifier) anchorLine(text string) (sku, rest string, ok bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !containsAnyPhrase(line, anchorPhrases) && !containsAnyPhrase(line, c.strong) {
			continue
		}
		for _, next := range lines[i+1:] {
			fields := strings.Fields(next)
			if len(fields) == 0 {
				continue
			}
			tok := strings.Trim(fields[0], ",.:;()")
			if isSKUToken(tok) {
				return tok, strings.Join(fields[1:], " "), true
			}
			break
		}
	}
	return "", "", false
}

// labelAdjacent finds a SKU introduced by a configured label keyword.
func (c *Classifier) labelAdjacent(text string) (string, bool) {
	flat := flatten(text)
	for _, pat := range c.labelPatterns {
		m := pat.FindStringSubmatch(flat)
		if m == nil {
			continue
		}
		tok := strings.Trim(m[1], ",.:;()")
		if isSKUToken(tok) {
			return tok, true
		}
	}
	return "", false
}

// firstStructuralToken falls back to the first token that looks like a SKU.
func firstStructuralToken(text string) (string, bool) {
	for _, tok := range strings.Fields(flatten(text)) {
		tok = strings.Trim(tok, ",.:;()")
		if isSKUToken(tok) {
			return tok, true
		}
	}
	return "", false
}

// cleanDescription strips the SKU, its label, keyword boilerplate, and date
// stamps from the text and tidies what remains into description form.
func (c *Classifier) cleanDescription(text, skuToken string) string {
	s := flatten(text)
	if skuToken != "" {
		for _, label := range c.labels {
			s = strings.ReplaceAll(s, label+" "+skuToken, skuToken)
			s = strings.ReplaceAll(s, label+": "+skuToken, skuToken)
		}
		wordPat := regexp.MustCompile(`\b` + regexp.QuoteMeta(skuToken) + `\b`)
		s = wordPat.ReplaceAllString(s, " ")
	}
	for _, kw := range c.strong {
		s = strings.ReplaceAll(s, kw, " ")
	}
	for _, kw := range c.weak {
		s = strings.ReplaceAll(s, kw, " ")
	}
	s = dateStampPattern.ReplaceAllString(s, " ")
	s = tidy(s)
	return relocateSeasonCode(s)
}

// relocateSeasonCode moves a mid-text season/episode code to the end of the
// description so filenames read "DESC S01E05" regardless of OCR layout.
func relocateSeasonCode(desc string) string {
	code := seasonPattern.FindString(desc)
	if code == "" || strings.HasSuffix(desc, code) {
		return desc
	}
	rest := tidy(strings.Replace(desc, code, " ", 1))
	return joinWords(rest, code)
}

// splitMergedWord separates a word that OCR fused onto the end of a SKU,
// e.g. "ABC-100RARE" becomes ("ABC-100", "RARE").
func splitMergedWord(sku string) (string, string) {
	if m := mergedWordPattern.FindStringSubmatch(sku); m != nil {
		return m[1], m[2]
	}
	return sku, ""
}

// repairDigitTail corrects letter O misreads inside the SKU's trailing digit
// block ("ABC-1OO" becomes "ABC-100"). The repair only fires when the block
// mixes digits and O, so alphabetic SKU stems are never touched.
func repairDigitTail(sku string) string {
	loc := skuTailPattern.FindStringIndex(sku)
	if loc == nil {
		return sku
	}
	tail := sku[loc[0]:loc[1]]
	if !strings.Contains(tail, "O") || !strings.ContainsAny(tail, "0123456789") {
		return sku
	}
	return sku[:loc[0]] + strings.ReplaceAll(tail, "O", "0")
}

// isSKUToken reports whether a token has SKU shape: starts with a letter,
// mixes letters and digits, uses only A-Z, 0-9, ampersand, and interior
// hyphens, and stays within catalog length. Season/episode codes are
// excluded; they belong to the description.
func isSKUToken(tok string) bool {
	if len(tok) < 3 || len(tok) > 24 {
		return false
	}
	if tok[0] < 'A' || tok[0] > 'Z' {
		return false
	}
	hasLetter, hasDigit := false, false
	for i, r := range tok {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '&':
		case r == '-':
			if i == 0 || i == len(tok)-1 {
				return false
			}
		default:
			return false
		}
	}
	if !hasLetter || !hasDigit {
		return false
	}
	return seasonPattern.FindString(tok) != tok
}

func containsAnyPhrase(line string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}

func flatten(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}

// tidy collapses whitespace and trims stray separator punctuation left over
// after removals.
func tidy(s string) string {
	return strings.Trim(strings.Join(strings.Fields(s), " "), "-,.:; ")
}

func joinWords(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
