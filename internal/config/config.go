package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type HostConfig struct {
	Host   string `yaml:"host"`
	User   string `yaml:"user"`
	SSHKey string `yaml:"ssh_key"`
	Tmux   string `yaml:"tmux"`

	// Modality is the binary remote mode-switch bindings run, "modality"
	// on the remote PATH when empty.
	Modality string `yaml:"modality"`
}

type Config struct {
	Tmux        string                       `yaml:"tmux"`
	PassThrough bool                         `yaml:"pass_through"`
	Color       bool                         `yaml:"color"`
	NoTempFile  bool                         `yaml:"no_temp_file"`
	LogLevel    string                       `yaml:"log_level"`
	Colors      map[string]map[string]string `yaml:"colors"`
	Hosts       map[string]HostConfig        `yaml:"hosts"`
}

// DefaultPath returns ~/.config/modality/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "modality", "config.yaml")
}

// Load reads the config at path, or DefaultPath when path is empty.
// Returns an empty config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	home, _ := os.UserHomeDir()
	for name, h := range cfg.Hosts {
		// Expand ~ in ssh_key
		if home != "" && len(h.SSHKey) > 0 && h.SSHKey[0] == '~' {
			h.SSHKey = filepath.Join(home, h.SSHKey[1:])
		}
		cfg.Hosts[name] = h
	}

	return &cfg, nil
}
