package yamltables

type YAMLTables struct {
	Categories []YAMLCategory `yaml:"categories"`
}

type YAMLCategory struct {
	Name     string     `yaml:"name"`
	Phrasing string     `yaml:"phrasing"`
	Units    []YAMLUnit `yaml:"units"`
}

type YAMLUnit struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Base   *float64 `yaml:"base"`
	Scale  *float64 `yaml:"scale"`
	Offset *float64 `yaml:"offset"`
}
