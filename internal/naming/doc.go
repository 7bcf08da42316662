// Package naming turns resolved groups into concrete file assignments.
//
// Each member gets a filename of the form SKU-DESCRIPTION-SEQUENCE with the
// original extension preserved, placed in an anchor folder derived from the
// SKU prefix. Certificate photos carry a COA marker instead of a sequence
// number and can be excluded from output entirely; excluded members still
// receive a computed name so run reports stay auditable. Name collisions pick
// up a short suffix derived from the image id rather than failing the batch.
package naming
