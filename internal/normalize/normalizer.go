package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultReplacements maps OCR artifacts to their canonical forms. Only
// genuinely ambiguous typography is corrected; characters that could encode
// real SKU distinctions are never merged.
func DefaultReplacements() map[string]string {
	return map[string]string{
		"\u00ad": "",    // soft hyphen
		"\u200b": "",    // zero-width space
		"\u200c": "",    // zero-width non-joiner
		"\u200d": "",    // zero-width joiner
		"\ufeff": "",    // byte order mark
		"\u00a0": " ",   // non-breaking space
		"\u2018": "'",   // left single quote
		"\u2019": "'",   // right single quote
		"\u201c": `"`,   // left double quote
		"\u201d": `"`,   // right double quote
		"\u2013": "-",   // en dash
		"\u2014": "-",   // em dash
		"\u2026": "...", // ellipsis
	}
}

// Normalizer converts raw OCR output into canonical comparison text.
type Normalizer struct {
	replacer *strings.Replacer
}

// New builds a normalizer from a replacement table. A nil or empty table
// falls back to DefaultReplacements.
func New(replacements map[string]string) *Normalizer {
	if len(replacements) == 0 {
		replacements = DefaultReplacements()
	}
	pairs := make([]string, 0, len(replacements)*2)
	for from, to := range replacements {
		pairs = append(pairs, from, to)
	}
	return &Normalizer{replacer: strings.NewReplacer(pairs...)}
}

// Normalize cleans a single raw OCR string. Empty or whitespace-only input
// yields the empty string, which downstream stages read as "no evidence".
//
// Whitespace runs collapse to a single space, except runs containing a line
// break collapse to a single newline: line structure is evidence for the
// extraction heuristics and must survive normalization.
func (n *Normalizer) Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	text := norm.NFKC.String(raw)
	text = n.replacer.Replace(text)
	text = strings.ToUpper(text)
	return collapseWhitespace(text)
}

func collapseWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	pendingNewline := false
	for _, r := range text {
		switch r {
		case '\n', '\r', '\v', '\f':
			pendingNewline = true
			pendingSpace = false
		case ' ', '\t':
			if !pendingNewline {
				pendingSpace = true
			}
		default:
			if b.Len() > 0 {
				if pendingNewline {
					b.WriteByte('\n')
				} else if pendingSpace {
					b.WriteByte(' ')
				}
			}
			pendingSpace = false
			pendingNewline = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
