package builder

// Config is the layout of the generated files inside the target extension.
// Paths are relative to the extension directory; %s placeholders receive
// the content type identifier (LanguageFile) or its UpperCamelCase form
// (TemplateFile).
type Config struct {
	// Table is the content table. Default: "tt_content"
	Table string

	// ContentTypesDir holds one type definition file per content type.
	// Default: "Configuration/TCA/ContentTypes"
	ContentTypesDir string

	// OverridesFile is the table's TCA overrides file.
	// Default: "Configuration/TCA/Overrides/tt_content.php"
	OverridesFile string

	// LanguageFile is the label file of a content type.
	// Default: "Resources/Private/Language/locallang_%s.xlf"
	LanguageFile string

	// TemplateFile is the frontend template of a content type.
	// Default: "Resources/Private/Templates/Content/%s.html"
	TemplateFile string

	// DefaultGroup is the wizard group offered when the source has none.
	// Default: "container"
	DefaultGroup string
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg Config) Config {
	if cfg.Table == "" {
		cfg.Table = "tt_content"
	}
	if cfg.ContentTypesDir == "" {
		cfg.ContentTypesDir = "Configuration/TCA/ContentTypes"
	}
	if cfg.OverridesFile == "" {
		cfg.OverridesFile = "Configuration/TCA/Overrides/" + cfg.Table + ".php"
	}
	if cfg.LanguageFile == "" {
		cfg.LanguageFile = "Resources/Private/Language/locallang_%s.xlf"
	}
	if cfg.TemplateFile == "" {
		cfg.TemplateFile = "Resources/Private/Templates/Content/%s.html"
	}
	if cfg.DefaultGroup == "" {
		cfg.DefaultGroup = "container"
	}
	return cfg
}
