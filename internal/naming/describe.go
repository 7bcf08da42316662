package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// smallWords stay lowercase under display casing except in first position.
var smallWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "by": {}, "for": {},
	"from": {}, "in": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {},
	"with": {},
}

// romanNumerals covers the sequel numbering range seen on real product
// descriptions. Single letters and ambiguous words like "mix" stay out.
var romanNumerals = map[string]struct{}{
	"ii": {}, "iii": {}, "iv": {}, "vi": {}, "vii": {}, "viii": {}, "ix": {},
	"xi": {}, "xii": {}, "xiii": {}, "xiv": {}, "xv": {},
}

var seasonCodePattern = regexp.MustCompile(`^S[0-9]{1,2}E[0-9]{1,2}$`)

var titleCaser = cases.Title(language.English)

// DisplayCase renders an uppercase pipeline description in title case for
// human-facing filenames. Configured acronyms, roman numerals, and
// season/episode codes keep their canonical uppercase form; connective words
// stay lowercase except at the start.
func DisplayCase(desc string, forceUppercase []string) string {
	if desc == "" {
		return ""
	}
	force := make(map[string]struct{}, len(forceUppercase))
	for _, w := range forceUppercase {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			force[w] = struct{}{}
		}
	}

	words := strings.Fields(desc)
	for i, w := range words {
		upper := strings.ToUpper(w)
		lower := strings.ToLower(w)
		switch {
		case hasWord(force, upper):
			words[i] = upper
		case seasonCodePattern.MatchString(upper):
			words[i] = upper
		case hasWord(romanNumerals, lower):
			words[i] = upper
		case i > 0 && hasWord(smallWords, lower):
			words[i] = lower
		default:
			words[i] = fixPossessive(titleCaser.String(lower))
		}
	}
	return strings.Join(words, " ")
}

func hasWord(set map[string]struct{}, w string) bool {
	key := strings.Trim(w, ",.:;()")
	_, ok := set[key]
	return ok
}

// fixPossessive undoes title casing of the possessive suffix ("Clarke'S"
// becomes "Clarke's").
func fixPossessive(w string) string {
	if strings.HasSuffix(w, "'S") {
		return strings.TrimSuffix(w, "'S") + "'s"
	}
	return w
}
