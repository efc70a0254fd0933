package config

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() *Config {
	return &Config{
		Addr:                  ":8080",
		DefaultTemplate:       "template1",
		AppTitle:              "Generador de Artículos Científicos",
		Lang:                  "es",
		Variant:               "light",
		RequestTimeoutSeconds: 10,
		Sanitize:              true,
		ExportDir:             ".",
	}
}
