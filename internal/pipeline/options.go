package pipeline

import (
	"argus/internal/classify"
	"argus/internal/config"
	"argus/internal/naming"
)

// OptionsFromConfig maps a loaded configuration onto per-stage options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Replacements: cfg.Matching.Replacements,
		Classifier: classify.Config{
			StrongKeywords: cfg.Keywords.Strong,
			WeakKeywords:   cfg.Keywords.Weak,
			WeakMinimum:    cfg.Keywords.WeakMinimum,
			LabelKeywords:  cfg.Keywords.Labels,
		},
		Threshold: cfg.Matching.SimilarityThreshold,
		Naming: naming.Config{
			DiscardCOA:             cfg.Naming.DiscardCOA,
			MaxDescriptionLength:   cfg.Naming.MaxDescriptionLength,
			SequenceCountsExcluded: cfg.Naming.SequenceCountsExcluded,
			PrettyDescriptions:     cfg.Naming.PrettyDescriptions,
			ForceUppercase:         cfg.Naming.ForceUppercase,
			PrefixFolders:          cfg.Naming.PrefixFolders,
		},
	}
}
