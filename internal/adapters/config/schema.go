package config

// Manifestfile represents the structure of the featcheck.yaml manifest.
type Manifestfile struct {
	Version  string   `yaml:"version"`
	Build    BuildDTO `yaml:"build"`
	Features []string `yaml:"features"`
}

// BuildDTO represents the fixed build parameters in the manifest.
type BuildDTO struct {
	Workspace   string            `yaml:"workspace"`
	Package     string            `yaml:"package"`
	Profile     string            `yaml:"profile"`
	Environment map[string]string `yaml:"environment"`
}
