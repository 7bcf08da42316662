package ocr

import "strings"

// Role classifies what an image shows: the certificate of authenticity for an
// item, the item itself, or nothing usable.
type Role string

const (
	RoleCOA     Role = "coa"
	RoleSubject Role = "subject"
	RoleUnknown Role = "unknown"
)

// Record is one scanned image with everything derived from its OCR text.
// ImageID and RawText are immutable once produced; the remaining fields are
// filled in by the pipeline stages.
type Record struct {
	ImageID        string
	RawText        string
	NormalizedText string
	Role           Role
	CandidateSKU   string
	CandidateDesc  string
}

// NewRecord builds a record at the OCR boundary. Role starts as unknown until
// classification runs.
func NewRecord(imageID, rawText string) Record {
	return Record{
		ImageID: strings.TrimSpace(imageID),
		RawText: rawText,
		Role:    RoleUnknown,
	}
}

// HasEvidence reports whether the record carries any usable candidate text.
func (r Record) HasEvidence() bool {
	return r.CandidateSKU != "" || r.CandidateDesc != ""
}

// Ext returns the lowercase file extension of the image id without the dot,
// falling back to "jpg" when the id carries none.
func (r Record) Ext() string {
	idx := strings.LastIndex(r.ImageID, ".")
	if idx < 0 || idx == len(r.ImageID)-1 {
		return "jpg"
	}
	ext := strings.ToLower(r.ImageID[idx+1:])
	if strings.ContainsAny(ext, "/\\") {
		return "jpg"
	}
	return ext
}
