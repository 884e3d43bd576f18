package config

// CurrentVersion is the preferences file version written by this build.
const CurrentVersion = 1

// Config represents the entire preferences file.
type Config struct {
	Version int          `yaml:"version"`
	Reader  ReaderPrefs  `yaml:"reader"`
	Preview PreviewPrefs `yaml:"preview"`
	Logging LoggingPrefs `yaml:"logging"`
}

// ReaderPrefs controls the terminal reader.
type ReaderPrefs struct {
	CatalogPath string `yaml:"catalog_path,omitempty"` // YAML catalog replacing the built-in one
	ArticlePath string `yaml:"article_path,omitempty"` // Text file shown instead of the sample article
	Mouse       bool   `yaml:"mouse"`                  // Enable mouse reporting (needed for outside-click close)
	AltScreen   bool   `yaml:"alt_screen"`             // Run in the alternate screen buffer
}

// PreviewPrefs controls the browser preview hub.
type PreviewPrefs struct {
	Enabled     bool   `yaml:"enabled"`
	Addr        string `yaml:"addr"`                   // Listen address, e.g. "127.0.0.1:7420"
	Advertise   bool   `yaml:"advertise"`              // Announce the hub over mDNS
	ServiceName string `yaml:"service_name,omitempty"` // mDNS instance name
}

// LoggingPrefs controls zap output.
type LoggingPrefs struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error; empty is silent
	File  string `yaml:"file,omitempty"`  // Log file; empty means stdout
}

// Default returns the preferences used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Reader: ReaderPrefs{
			Mouse:     true,
			AltScreen: true,
		},
		Preview: PreviewPrefs{
			Enabled:     false,
			Addr:        "127.0.0.1:7420",
			ServiceName: "readerstyle",
		},
	}
}

// fillDefaults sets zero-valued fields that have a non-zero default.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Preview.Addr == "" {
		c.Preview.Addr = def.Preview.Addr
	}
	if c.Preview.ServiceName == "" {
		c.Preview.ServiceName = def.Preview.ServiceName
	}
}
