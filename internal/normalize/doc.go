// Package normalize cleans raw OCR text into the canonical form the rest of
// the pipeline compares against.
//
// Normalization is deterministic and idempotent: Unicode compatibility
// folding, removal of genuinely ambiguous artifacts (soft hyphens, zero-width
// runes, typographic punctuation), uppercasing, and whitespace collapsing.
// Digit/letter confusables such as O/0 or I/1 are deliberately left alone
// here; destroying those distinctions globally would corrupt real SKUs.
// The artifact table is injectable so product-specific tuning never requires
// touching the algorithm.
package normalize
