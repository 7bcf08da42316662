package naming

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"argus/internal/consensus"
	"argus/internal/ocr"
	"argus/internal/textutil"
)

// DefaultMaxDescriptionLength bounds the description segment of filenames.
const DefaultMaxDescriptionLength = 80

// coaMarker replaces the sequence number on certificate photos.
const coaMarker = "COA"

// Config controls filename construction and folder anchoring.
type Config struct {
	// DiscardCOA excludes certificate photos from output.
	DiscardCOA bool
	// MaxDescriptionLength truncates overlong descriptions; zero or negative
	// means DefaultMaxDescriptionLength.
	MaxDescriptionLength int
	// SequenceCountsExcluded keeps positional numbering: excluded members
	// still consume a sequence slot. The default renumbers survivors
	// contiguously.
	SequenceCountsExcluded bool
	// PrettyDescriptions applies display title casing to descriptions.
	PrettyDescriptions bool
	// ForceUppercase lists acronyms kept uppercase under display casing.
	ForceUppercase []string
	// PrefixFolders maps SKU prefixes to anchor folder names. Prefixes
	// without a mapping anchor to a folder named after the prefix itself.
	PrefixFolders map[string]string
}

// Assignment is the naming outcome for one member.
type Assignment struct {
	ImageID     string `json:"image_id"`
	GroupKey    string `json:"group_key"`
	SKU         string `json:"sku,omitempty"`
	Description string `json:"description,omitempty"`
	Sequence    int    `json:"sequence,omitempty"`
	FileName    string `json:"file_name"`
	Folder      string `json:"folder"`
	// Excluded members are not materialized; the name is kept for audit.
	Excluded  bool `json:"excluded,omitempty"`
	Truncated bool `json:"truncated,omitempty"`
	Collision bool `json:"collision,omitempty"`
}

// Namer assigns output names. It remembers names it has handed out, so one
// namer must serve a whole run for collision handling to work.
type Namer struct {
	cfg    Config
	maxLen int
	used   map[string]struct{}
}

// New builds a namer for a single run.
func New(cfg Config) *Namer {
	maxLen := cfg.MaxDescriptionLength
	if maxLen <= 0 {
		maxLen = DefaultMaxDescriptionLength
	}
	return &Namer{cfg: cfg, maxLen: maxLen, used: make(map[string]struct{})}
}

// Assign names every member of one resolved group. Members must be in batch
// input order; assignments come back in the same order.
func (n *Namer) Assign(groupKey string, members []ocr.Record, res consensus.Resolution) []Assignment {
	desc := res.Description
	if n.cfg.PrettyDescriptions {
		desc = DisplayCase(desc, n.cfg.ForceUppercase)
	}
	desc, truncated := truncate(desc, n.maxLen)
	folder := AnchorFolder(res.SKU, n.cfg.PrefixFolders)

	assignments := make([]Assignment, 0, len(members))
	seq := 0
	for _, m := range members {
		isCOA := m.Role == ocr.RoleCOA
		excluded := n.cfg.DiscardCOA && isCOA

		marker := ""
		switch {
		case isCOA:
			marker = coaMarker
			if n.cfg.SequenceCountsExcluded {
				seq++
			}
		default:
			seq++
			marker = fmt.Sprintf("%d", seq)
		}

		a := Assignment{
			ImageID:     m.ImageID,
			GroupKey:    groupKey,
			SKU:         res.SKU,
			Description: desc,
			FileName:    buildFileName(res.SKU, desc, marker, m.Ext()),
			Folder:      folder,
			Excluded:    excluded,
			Truncated:   truncated,
		}
		if !isCOA {
			a.Sequence = seq
		}
		if !excluded {
			n.reserve(&a, m)
		}
		assignments = append(assignments, a)
	}
	return assignments
}

// reserve claims the assignment's name, rewriting it with an image-id suffix
// when an earlier assignment already took it.
func (n *Namer) reserve(a *Assignment, m ocr.Record) {
	key := nameKey(a.Folder, a.FileName)
	if _, taken := n.used[key]; taken {
		a.Collision = true
		ext := m.Ext()
		base := strings.TrimSuffix(a.FileName, "."+ext)
		a.FileName = base + "-" + textutil.Slug(m.ImageID, 8) + "." + ext
		key = nameKey(a.Folder, a.FileName)
	}
	n.used[key] = struct{}{}
}

func nameKey(folder, name string) string {
	return strings.ToUpper(folder + "/" + name)
}

// buildFileName joins the non-empty segments with hyphens and appends the
// extension. A group with no SKU still names cleanly from the description.
func buildFileName(sku, desc, marker, ext string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{sku, desc, marker} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	base := textutil.SanitizeFileName(strings.Join(parts, "-"))
	return base + "." + ext
}

// truncate shortens a description to max runes, trimming a dangling
// separator so names never end in punctuation.
func truncate(desc string, max int) (string, bool) {
	if utf8.RuneCountInString(desc) <= max {
		return desc, false
	}
	runes := []rune(desc)
	cut := strings.TrimRight(string(runes[:max]), "- ,.")
	return cut, true
}
