package consensus

import (
	"strings"
	"unicode/utf8"

	"argus/internal/ocr"
	"argus/internal/textutil"
)

// Resolution is the canonical identity agreed for one group.
type Resolution struct {
	SKU         string
	Description string
	// FromCOA records that a certificate member supplied the SKU.
	FromCOA bool
	// Resolved is false when the group carried no usable candidates at all.
	Resolved bool
}

// Resolver reduces a group's member candidates to a single identity.
type Resolver struct {
	threshold float64
}

// New builds a resolver. Thresholds outside (0, 1] fall back to the grouping
// default so both stages agree on what "near duplicate" means.
func New(threshold float64) *Resolver {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.8
	}
	return &Resolver{threshold: threshold}
}

// Resolve derives the canonical SKU and description for the given members.
// Members must be in batch input order.
func (r *Resolver) Resolve(members []ocr.Record) Resolution {
	res := Resolution{
		SKU:         r.resolveSKU(members),
		Description: r.resolveDescription(members),
	}
	res.FromCOA = res.SKU != "" && skuFromCOA(members, res.SKU)
	res.Resolved = res.SKU != "" || res.Description != ""
	return res
}

// resolveSKU prefers the first certificate member's SKU, then falls back to
// an exact-value majority with lexicographic tie-breaks.
func (r *Resolver) resolveSKU(members []ocr.Record) string {
	for _, m := range members {
		if m.Role == ocr.RoleCOA && m.CandidateSKU != "" {
			return strings.ToUpper(m.CandidateSKU)
		}
	}

	counts := make(map[string]int)
	for _, m := range members {
		if sku := strings.ToUpper(m.CandidateSKU); sku != "" {
			counts[sku]++
		}
	}
	winner := ""
	for sku, n := range counts {
		if winner == "" || n > counts[winner] || (n == counts[winner] && sku < winner) {
			winner = sku
		}
	}
	return winner
}

// resolveDescription pools near-duplicate candidates into equivalence
// classes, picks the class with the most votes (earliest class on ties), and
// resolves it to its longest member, lexicographically smallest on ties.
func (r *Resolver) resolveDescription(members []ocr.Record) string {
	type class struct {
		rep     string
		members []string
	}
	var classes []*class
	for _, m := range members {
		desc := m.CandidateDesc
		if desc == "" {
			continue
		}
		placed := false
		for _, cl := range classes {
			if textutil.Similarity(desc, cl.rep) >= r.threshold {
				cl.members = append(cl.members, desc)
				placed = true
				break
			}
		}
		if !placed {
			classes = append(classes, &class{rep: desc, members: []string{desc}})
		}
	}
	if len(classes) == 0 {
		return ""
	}

	winning := classes[0]
	for _, cl := range classes[1:] {
		if len(cl.members) > len(winning.members) {
			winning = cl
		}
	}

	best := winning.members[0]
	for _, d := range winning.members[1:] {
		dl, bl := utf8.RuneCountInString(d), utf8.RuneCountInString(best)
		if dl > bl || (dl == bl && d < best) {
			best = d
		}
	}
	return best
}

func skuFromCOA(members []ocr.Record, sku string) bool {
	for _, m := range members {
		if m.Role == ocr.RoleCOA && strings.EqualFold(m.CandidateSKU, sku) {
			return true
		}
	}
	return false
}
