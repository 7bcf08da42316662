package naming

import (
	"sort"
	"strings"
	"unicode"
)

// UnsortedFolder receives output for groups that resolved without a SKU.
const UnsortedFolder = "UNSORTED"

// AnchorFolder maps a SKU to its destination folder. The anchor prefix is
// the SKU segment before the first separator (or the SKU minus its trailing
// digit run when it has no separator); mapped prefixes use the configured
// folder name and unmapped prefixes fall back to the literal prefix, so new
// product lines land somewhere predictable instead of failing.
func AnchorFolder(sku string, prefixFolders map[string]string) string {
	prefix := anchorPrefix(sku)
	if prefix == "" {
		return UnsortedFolder
	}
	if folder, ok := prefixFolders[prefix]; ok {
		return folder
	}
	keys := make([]string, 0, len(prefixFolders))
	for key := range prefixFolders {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.EqualFold(key, prefix) {
			return prefixFolders[key]
		}
	}
	return prefix
}

func anchorPrefix(sku string) string {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return ""
	}
	if i := strings.IndexAny(sku, "-_."); i > 0 {
		return sku[:i]
	}
	// No separator: strip the trailing digit run ("PRP4410" anchors at "PRP").
	trimmed := strings.TrimRightFunc(sku, unicode.IsDigit)
	if trimmed == "" {
		return sku
	}
	return trimmed
}
