// Package pipeline runs a batch of OCR records through the full engine:
// normalize, classify, group, resolve, name.
//
// A run is total. Records that cannot be classified or groups that cannot be
// resolved never abort the batch; they surface as diagnostics on the result
// while every other group proceeds. Given the same records in the same order
// and the same options, a run produces byte-identical results.
package pipeline
