// Package consensus derives one canonical SKU and description per group.
//
// Certificate members are authoritative for the SKU; without one, the most
// frequent exact candidate wins with lexicographic tie-breaks. Descriptions
// vote through fuzzy equivalence classes so OCR near-duplicates pool their
// votes, and the winning class resolves to its longest member. Every rule has
// a total order, so resolution is deterministic for a given member sequence.
package consensus
