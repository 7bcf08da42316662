package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"argus/internal/classify"
	"argus/internal/consensus"
	"argus/internal/grouping"
	"argus/internal/logging"
	"argus/internal/naming"
	"argus/internal/normalize"
	"argus/internal/ocr"
	"argus/internal/services"
)

// Options assembles the per-stage configuration for one run.
type Options struct {
	// Replacements overrides the normalizer's artifact table; nil keeps the
	// defaults.
	Replacements map[string]string
	// Classifier carries the keyword heuristics.
	Classifier classify.Config
	// Threshold is the similarity floor shared by grouping and consensus.
	Threshold float64
	// Naming controls filename construction and folder anchoring.
	Naming naming.Config
}

// GroupResult is the outcome for one group.
type GroupResult struct {
	Key         string              `json:"key"`
	SKU         string              `json:"sku,omitempty"`
	Description string              `json:"description,omitempty"`
	FromCOA     bool                `json:"from_coa,omitempty"`
	Resolved    bool                `json:"resolved"`
	ImageIDs    []string            `json:"image_ids"`
	Assignments []naming.Assignment `json:"assignments,omitempty"`
}

// Result is the complete outcome of a run.
type Result struct {
	Groups      []GroupResult `json:"groups"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty"`
	Records     int           `json:"records"`
	Excluded    int           `json:"excluded"`
	Unresolved  int           `json:"unresolved"`
}

// Assignments flattens all group assignments in group creation order.
func (r *Result) Assignments() []naming.Assignment {
	var out []naming.Assignment
	for _, g := range r.Groups {
		out = append(out, g.Assignments...)
	}
	return out
}

// Pipeline wires the engine stages together.
type Pipeline struct {
	normalizer *normalize.Normalizer
	classifier *classify.Classifier
	resolver   *consensus.Resolver
	threshold  float64
	namingCfg  naming.Config
	logger     *slog.Logger
}

// New builds a pipeline. A nil logger discards log output.
func New(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		normalizer: normalize.New(opts.Replacements),
		classifier: classify.New(opts.Classifier),
		resolver:   consensus.New(opts.Threshold),
		threshold:  opts.Threshold,
		namingCfg:  opts.Naming,
		logger:     logging.NewComponentLogger(logger, "pipeline"),
	}
}

// Run processes one batch. Records are handled in the order given; the only
// error condition is context cancellation, everything else lands in the
// result's diagnostics.
func (p *Pipeline) Run(ctx context.Context, records []ocr.Record) (*Result, error) {
	result := &Result{Records: len(records)}
	grouper := grouping.New(p.threshold)

	ctx = services.WithStage(ctx, "classify")
	for i := range records {
		if err := ctx.Err(); err != nil {
			return nil, services.Wrap(services.ErrTransient, "pipeline", "classify", "run canceled", err)
		}
		rec := &records[i]
		rec.NormalizedText = p.normalizer.Normalize(rec.RawText)
		if rec.NormalizedText == "" {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Reason:   ReasonOCRMissing,
				Detail:   "no usable OCR text",
				ImageIDs: []string{rec.ImageID},
			})
		}

		cls := p.classifier.Classify(rec.NormalizedText)
		rec.Role = cls.Role
		rec.CandidateSKU = cls.CandidateSKU
		rec.CandidateDesc = cls.CandidateDesc
		if p.classifier.AtWeakBoundary(cls) {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Reason:   ReasonAmbiguousClassification,
				Detail:   fmt.Sprintf("certificate call made on exactly %d weak keywords", cls.WeakHits),
				ImageIDs: []string{rec.ImageID},
			})
		}
		p.logger.Debug("classified record",
			logging.String(logging.FieldImageID, rec.ImageID),
			logging.String("role", string(rec.Role)),
			logging.String("sku", rec.CandidateSKU))

		grouper.Add(*rec)
	}

	ctx = services.WithStage(ctx, "resolve")
	namer := naming.New(p.namingCfg)
	for _, group := range grouper.Groups() {
		if err := ctx.Err(); err != nil {
			return nil, services.Wrap(services.ErrTransient, "pipeline", "resolve", "run canceled", err)
		}
		gr := p.resolveGroup(group, namer, result)
		result.Groups = append(result.Groups, gr)
	}

	p.logger.Info("run complete",
		logging.Int("records", result.Records),
		logging.Int("groups", len(result.Groups)),
		logging.Int("excluded", result.Excluded),
		logging.Int("unresolved", result.Unresolved),
		logging.Int("diagnostics", len(result.Diagnostics)))
	return result, nil
}

func (p *Pipeline) resolveGroup(group *grouping.Group, namer *naming.Namer, result *Result) GroupResult {
	gr := GroupResult{Key: group.Key, ImageIDs: imageIDs(group.Members)}

	res := p.resolver.Resolve(group.Members)
	gr.SKU = res.SKU
	gr.Description = res.Description
	gr.FromCOA = res.FromCOA
	gr.Resolved = res.Resolved

	if !res.Resolved {
		result.Unresolved++
		reason := ReasonUnresolvedGroup
		detail := "no consensus identity, files keep their original names"
		if len(group.Members) == 1 && group.Members[0].Role == ocr.RoleUnknown &&
			!group.Members[0].HasEvidence() {
			reason = ReasonUnknownSingleton
			detail = "single photo with no usable evidence"
		}
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			GroupKey: group.Key,
			Reason:   reason,
			Detail:   detail,
			ImageIDs: gr.ImageIDs,
		})
		p.logger.Warn("group unresolved", logging.String(logging.FieldGroupKey, group.Key))
		return gr
	}

	gr.Assignments = namer.Assign(group.Key, group.Members, res)
	truncated := false
	for _, a := range gr.Assignments {
		if a.Excluded {
			result.Excluded++
		}
		truncated = truncated || a.Truncated
		if a.Collision {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				GroupKey: group.Key,
				Reason:   ReasonNameCollision,
				Detail:   fmt.Sprintf("renamed to %s to avoid overwrite", a.FileName),
				ImageIDs: []string{a.ImageID},
			})
		}
	}
	if truncated {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			GroupKey: group.Key,
			Reason:   ReasonDescriptionTruncated,
			Detail:   fmt.Sprintf("description shortened to %q", gr.Assignments[0].Description),
			ImageIDs: gr.ImageIDs,
		})
	}
	p.logger.Info("group resolved",
		logging.String(logging.FieldGroupKey, group.Key),
		logging.String("sku", res.SKU),
		logging.Int("members", len(group.Members)))
	return gr
}

func imageIDs(members []ocr.Record) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ImageID
	}
	return ids
}
