package config

// Kilnfile represents the structure of the kiln.yaml configuration file.
type Kilnfile struct {
	Version    string            `yaml:"version"`
	Emsdk      string            `yaml:"emsdk"`
	Generator  string            `yaml:"generator"`
	Vars       map[string]string `yaml:"vars"`
	Server     *ServerDTO        `yaml:"server"`
	PublishDir string            `yaml:"publishDir"`
}

// ServerDTO configures the local web server.
type ServerDTO struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}
