// Package ingest loads OCR records from the supported input layouts: a JSON
// Lines file pairing image ids with raw text, or a directory of sidecar .txt
// files named after the images they describe.
package ingest
