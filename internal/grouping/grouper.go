package grouping

import (
	"fmt"
	"strings"

	"argus/internal/ocr"
	"argus/internal/textutil"
)

// DefaultThreshold is the similarity floor for joining a group when no exact
// SKU match exists.
const DefaultThreshold = 0.8

// Group is one cluster of records believed to show the same physical item.
// Members stay in batch input order. Each group carries a representative SKU
// and description, the first non-empty candidates seen among its members;
// matching decisions read only the representatives, never later members.
type Group struct {
	Key     string
	Members []ocr.Record

	created  int
	repSKU   string
	repDesc  string
	fallback string
}

// HasSKU reports whether the group's representative SKU matches the given
// value. Comparison is case-insensitive.
func (g *Group) HasSKU(sku string) bool {
	return g.repSKU != "" && g.repSKU == strings.ToUpper(sku)
}

func (g *Group) add(rec ocr.Record) {
	g.Members = append(g.Members, rec)
	if g.repSKU == "" && rec.CandidateSKU != "" {
		g.repSKU = strings.ToUpper(rec.CandidateSKU)
	}
	if g.repDesc == "" {
		g.repDesc = rec.CandidateDesc
	}
}

// repText is the string incoming records are measured against: the
// representative description when one exists, otherwise the founding
// member's normalized text.
func (g *Group) repText() string {
	if g.repDesc != "" {
		return g.repDesc
	}
	return g.fallback
}

// Grouper assigns records to groups one at a time.
type Grouper struct {
	threshold float64
	groups    []*Group
}

// New builds a grouper. Thresholds outside (0, 1] fall back to
// DefaultThreshold.
func New(threshold float64) *Grouper {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Grouper{threshold: threshold}
}

// Add places one record. Records must arrive in batch input order; the
// assignment is deterministic for a given sequence.
func (gr *Grouper) Add(rec ocr.Record) *Group {
	sku := strings.ToUpper(rec.CandidateSKU)
	if sku != "" {
		for _, g := range gr.groups {
			if g.repSKU == sku {
				g.add(rec)
				return g
			}
		}
	}

	key := comparisonText(rec)
	if key != "" {
		var best *Group
		bestScore := 0.0
		for _, g := range gr.groups {
			rep := g.repText()
			if rep == "" {
				continue
			}
			score := textutil.Similarity(key, rep)
			// Strict comparisons keep ties with the earliest group,
			// since iteration follows creation order.
			if best == nil || score > bestScore ||
				(score == bestScore && len(g.Members) > len(best.Members)) {
				best = g
				bestScore = score
			}
		}
		if best != nil && bestScore >= gr.threshold {
			best.add(rec)
			return best
		}
	}

	g := &Group{
		Key:      fmt.Sprintf("G%03d", len(gr.groups)+1),
		created:  len(gr.groups),
		fallback: key,
	}
	g.add(rec)
	gr.groups = append(gr.groups, g)
	return g
}

// Groups returns all groups in creation order.
func (gr *Grouper) Groups() []*Group {
	return gr.groups
}

// comparisonText is the string a record is measured by: the extracted
// description when present, otherwise the full normalized text.
func comparisonText(rec ocr.Record) string {
	if rec.CandidateDesc != "" {
		return rec.CandidateDesc
	}
	return strings.ReplaceAll(rec.NormalizedText, "\n", " ")
}
