package classify

import (
	"regexp"
	"strings"

	"argus/internal/ocr"
)

// Config carries the keyword heuristics used for role detection and the
// label vocabulary used during SKU extraction.
type Config struct {
	// StrongKeywords are conclusive certificate markers; one hit is enough.
	StrongKeywords []string
	// WeakKeywords are suggestive markers; WeakMinimum of them must co-occur.
	WeakKeywords []string
	// WeakMinimum is the number of weak hits required for a certificate
	// classification when no strong keyword matched. Minimum 1.
	WeakMinimum int
	// LabelKeywords name the tokens that introduce a SKU (e.g. "SKU", "ITEM").
	LabelKeywords []string
}

// DefaultConfig mirrors the certificate vocabulary of the shipped product.
func DefaultConfig() Config {
	return Config{
		StrongKeywords: []string{
			"CERTIFICATE OF AUTHENTICITY",
			"THIS DOCUMENT CERTIFIES",
			"WAS USED IN THE PRODUCTION",
			"PRODUCTION OF THE ABOVE",
		},
		WeakKeywords: []string{
			"PROPABILIA",
			"MEMORABILIA",
			"AUTHORIZED SIGNATURE",
			"MOVIE & TV",
			"OFFICIAL PROP",
		},
		WeakMinimum:   3,
		LabelKeywords: []string{"SKU", "ITEM", "ITEM NO", "ITEM NUMBER"},
	}
}

// Result is the classification outcome for one normalized text.
type Result struct {
	Role          ocr.Role
	CandidateSKU  string
	CandidateDesc string
	// StrongHit records whether a strong keyword decided the role.
	StrongHit bool
	// WeakHits is the number of distinct weak keywords found.
	WeakHits int
}

// Classifier applies keyword heuristics to normalized text.
type Classifier struct {
	cfg           Config
	strong        []string
	weak          []string
	labels        []string
	labelPatterns []*regexp.Regexp
	minimum       int
}

// New builds a classifier, uppercasing and pruning the configured keyword
// lists so they compare cleanly against normalized text.
func New(cfg Config) *Classifier {
	minimum := cfg.WeakMinimum
	if minimum < 1 {
		minimum = DefaultConfig().WeakMinimum
	}
	c := &Classifier{
		cfg:     cfg,
		strong:  upperList(cfg.StrongKeywords),
		weak:    upperList(cfg.WeakKeywords),
		labels:  upperList(cfg.LabelKeywords),
		minimum: minimum,
	}
	if len(c.labels) == 0 {
		c.labels = upperList(DefaultConfig().LabelKeywords)
	}
	c.labelPatterns = make([]*regexp.Regexp, 0, len(c.labels))
	for _, label := range c.labels {
		c.labelPatterns = append(c.labelPatterns,
			regexp.MustCompile(`\b`+regexp.QuoteMeta(label)+`[.:#]?\s+([A-Z0-9&-]+)`))
	}
	return c
}

// WeakMinimum exposes the effective weak-hit threshold.
func (c *Classifier) WeakMinimum() int { return c.minimum }

// Classify labels a normalized text and extracts SKU/description candidates.
// Empty text yields an unknown role with no candidates; classification never
// mutates shared state.
func (c *Classifier) Classify(normalized string) Result {
	if strings.TrimSpace(normalized) == "" {
		return Result{Role: ocr.RoleUnknown}
	}

	result := Result{Role: ocr.RoleSubject}
	for _, kw := range c.strong {
		if strings.Contains(normalized, kw) {
			result.Role = ocr.RoleCOA
			result.StrongHit = true
			break
		}
	}
	for _, kw := range c.weak {
		if strings.Contains(normalized, kw) {
			result.WeakHits++
		}
	}
	if !result.StrongHit && result.WeakHits >= c.minimum {
		result.Role = ocr.RoleCOA
	}

	sku, desc := c.extract(normalized)
	result.CandidateSKU = sku
	result.CandidateDesc = desc
	return result
}

// AtWeakBoundary reports whether a result rode exactly on the weak keyword
// minimum. The outcome is still deterministic; callers surface it as an
// informational diagnostic.
func (c *Classifier) AtWeakBoundary(r Result) bool {
	return r.Role == ocr.RoleCOA && !r.StrongHit && r.WeakHits == c.minimum
}

func upperList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
