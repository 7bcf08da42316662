package textutil

import "strings"

// fileNameReplacer removes filesystem-unsafe characters from a filename
// segment. Path separators and colons become dashes so adjacent words stay
// readable; the rest are dropped outright.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename
// segment. Case and interior spacing are preserved; the result is trimmed of
// leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// Slug reduces a string to a lowercase alphanumeric identifier of at most
// maxLen runes. Used to derive stable disambiguation suffixes from image
// identifiers. Returns "x" when nothing survives, so callers always get a
// usable token.
func Slug(value string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 8
	}
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
		if b.Len() >= maxLen {
			break
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}
