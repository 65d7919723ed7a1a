package domain

// Config represents the unitix configuration loaded from unitix.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

// DefaultsConfig preselects the form when the TUI starts.
type DefaultsConfig struct {
	Category string
	From     string
	To       string
	Value    string
}

type PathsConfig struct {
	TablesDir string
}

// DefaultConfig provides sane defaults if unitix.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Category: "Length",
			Value:    "1",
		},
		Paths: PathsConfig{
			TablesDir: "tables",
		},
	}
}
