// Package textutil provides text utilities for filename sanitization and
// fuzzy string comparison.
//
// Similarity is a normalized Levenshtein ratio in [0,1], used for matching
// noisy OCR readings of the same SKU or description. Sanitization strips the
// characters that are unsafe in filenames while leaving spacing and case
// untouched, and Slug derives short stable identifiers from arbitrary text.
package textutil
