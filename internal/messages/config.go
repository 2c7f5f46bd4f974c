package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFailedFmt formats config read errors other than a missing file.
	ConfigReadFailedFmt         = "read config %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "config %s contains unrecognized keys: %v"
	ConfigValidationFmt         = "config %s: %w"
	ConfigValidationGuidanceFmt = "(fix %s or remove it to use the defaults)"
	ConfigUnsupportedArchFmt    = "unsupported architecture %q; set arch in the config file"
)
