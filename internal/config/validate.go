package config

import "argus/internal/services"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateKeywords(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateNaming()
}

func (c *Config) validateKeywords() error {
	if len(c.Keywords.Strong) == 0 && len(c.Keywords.Weak) == 0 {
		return invalid("keywords.strong or keywords.weak must list at least one certificate marker")
	}
	if c.Keywords.WeakMinimum < 1 {
		return invalid("keywords.weak_minimum must be >= 1")
	}
	if len(c.Keywords.Weak) > 0 && c.Keywords.WeakMinimum > len(c.Keywords.Weak) {
		return invalid("keywords.weak_minimum cannot exceed the number of weak keywords")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.SimilarityThreshold <= 0 || c.Matching.SimilarityThreshold > 1 {
		return invalid("matching.similarity_threshold must be between 0 (exclusive) and 1")
	}
	return nil
}

func (c *Config) validateNaming() error {
	if c.Naming.MaxDescriptionLength < 8 {
		return invalid("naming.max_description_length must be at least 8")
	}
	return nil
}

func invalid(message string) error {
	return services.Wrap(services.ErrValidation, "config", "validate", message, nil)
}
