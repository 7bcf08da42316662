package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeKeywords()
	c.normalizeNaming()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StorePath) == "" {
		c.Paths.StorePath = defaultStorePath
	}
	if c.Paths.StorePath, err = expandPath(c.Paths.StorePath); err != nil {
		return fmt.Errorf("paths.store_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeKeywords() {
	c.Keywords.Strong = upperKeywordList(c.Keywords.Strong)
	c.Keywords.Weak = upperKeywordList(c.Keywords.Weak)
	c.Keywords.Labels = upperKeywordList(c.Keywords.Labels)
	if c.Keywords.WeakMinimum < 1 {
		c.Keywords.WeakMinimum = defaultWeakMinimum
	}
}

func (c *Config) normalizeNaming() {
	if c.Naming.MaxDescriptionLength <= 0 {
		c.Naming.MaxDescriptionLength = defaultMaxDescriptionLength
	}
	c.Naming.ForceUppercase = upperKeywordList(c.Naming.ForceUppercase)
	if len(c.Naming.PrefixFolders) > 0 {
		folders := make(map[string]string, len(c.Naming.PrefixFolders))
		for prefix, folder := range c.Naming.PrefixFolders {
			prefix = strings.ToUpper(strings.TrimSpace(prefix))
			folder = strings.TrimSpace(folder)
			if prefix == "" || folder == "" {
				continue
			}
			folders[prefix] = folder
		}
		c.Naming.PrefixFolders = folders
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func upperKeywordList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
