package config

const (
	defaultOutputDir            = "~/argus/output"
	defaultLogDir               = "~/.local/share/argus/logs"
	defaultStorePath            = "~/.local/share/argus/argus.db"
	defaultSimilarityThreshold  = 0.8
	defaultWeakMinimum          = 3
	defaultMaxDescriptionLength = 80
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			StorePath: defaultStorePath,
		},
		Keywords: Keywords{
			Strong: []string{
				"CERTIFICATE OF AUTHENTICITY",
				"THIS DOCUMENT CERTIFIES",
				"WAS USED IN THE PRODUCTION",
				"PRODUCTION OF THE ABOVE",
			},
			Weak: []string{
				"PROPABILIA",
				"MEMORABILIA",
				"AUTHORIZED SIGNATURE",
				"MOVIE & TV",
				"OFFICIAL PROP",
			},
			WeakMinimum: defaultWeakMinimum,
			Labels:      []string{"SKU", "ITEM", "ITEM NO", "ITEM NUMBER"},
		},
		Matching: Matching{
			SimilarityThreshold: defaultSimilarityThreshold,
		},
		Naming: Naming{
			DiscardCOA:           true,
			MaxDescriptionLength: defaultMaxDescriptionLength,
			PrettyDescriptions:   false,
			ForceUppercase: []string{
				"TV", "DVD", "USA", "UK", "FBI", "CIA", "NASA", "SWAT", "UFO", "VIP",
			},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
