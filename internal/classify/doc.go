// Package classify labels normalized OCR text as certificate-of-authenticity
// or subject-photo evidence and extracts SKU/description candidates.
//
// Detection uses configured keyword lists: any strong keyword hit is
// conclusive, weak keywords classify only when enough of them co-occur.
// Extraction runs several strategies in order (certificate sentence pattern,
// context anchor lines, label adjacency, first structural token) and then
// repairs the common OCR damage seen on real certificates: merged SKU/word
// tokens and letter O misreads inside the trailing digit block.
//
// Classification is pure: keyword configuration travels in the Config value,
// never in package state, so tests can vary it per call.
package classify
