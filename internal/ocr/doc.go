// Package ocr defines the record shape produced at the OCR boundary.
//
// The external recognition engine delivers (image id, raw text) pairs; they
// are converted into Record values at the edge so engine-specific quirks never
// leak into the pipeline. An empty raw text signals a failed read and is
// treated as absent evidence, not an error.
package ocr
