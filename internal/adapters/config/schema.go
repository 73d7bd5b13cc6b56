package config

// ontocheckFile is the YAML schema of .ontocheck.yaml. All fields are
// optional; zero values fall back to the domain defaults.
type ontocheckFile struct {
	RulesFilename string     `yaml:"rules_filename"`
	MaxDepth      int        `yaml:"max_depth"`
	CacheSize     int        `yaml:"cache_size"`
	LatestDirname string     `yaml:"latest_dirname"`
	Engine        engineFile `yaml:"engine"`
}

type engineFile struct {
	Command  []string `yaml:"command"`
	Advanced *bool    `yaml:"advanced"`
}
