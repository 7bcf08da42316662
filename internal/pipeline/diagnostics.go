package pipeline

// Diagnostic reasons. Reasons are stable identifiers; Detail carries the
// human-readable specifics.
const (
	// ReasonOCRMissing marks a record whose OCR text was empty or pure noise.
	ReasonOCRMissing = "ocr_missing"
	// ReasonUnknownSingleton marks a single-photo group with no usable
	// evidence at all.
	ReasonUnknownSingleton = "unknown_singleton"
	// ReasonUnresolvedGroup marks a group that produced neither a SKU nor a
	// description; its files keep their original names.
	ReasonUnresolvedGroup = "unresolved_group"
	// ReasonAmbiguousClassification marks a certificate call that rode
	// exactly on the weak keyword minimum.
	ReasonAmbiguousClassification = "ambiguous_classification"
	// ReasonDescriptionTruncated marks a group whose description exceeded
	// the configured filename length limit.
	ReasonDescriptionTruncated = "description_truncated"
	// ReasonNameCollision marks an assignment renamed to avoid overwriting
	// an earlier one.
	ReasonNameCollision = "name_collision"
)

// Diagnostic is one non-fatal finding from a run.
type Diagnostic struct {
	GroupKey string   `json:"group_key,omitempty"`
	Reason   string   `json:"reason"`
	Detail   string   `json:"detail"`
	ImageIDs []string `json:"image_ids,omitempty"`
}
