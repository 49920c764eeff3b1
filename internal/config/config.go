package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level grana.yaml configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Ledger      LedgerConfig      `yaml:"ledger"`
	Transcriber TranscriberConfig `yaml:"transcriber,omitempty"`
	Log         LogConfig         `yaml:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LedgerConfig points at the cash journal on disk.
type LedgerConfig struct {
	Dir string `yaml:"dir"`
}

// TranscriberConfig configures the external speech-to-text provider.
// An empty URL disables audio turns.
type TranscriberConfig struct {
	URL       string `yaml:"url,omitempty"`
	Model     string `yaml:"model,omitempty"`
	Language  string `yaml:"language,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"` // env var holding the bearer key
}

// LogConfig controls structured log output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a grana.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Ledger: LedgerConfig{Dir: "ledger"},
		Transcriber: TranscriberConfig{
			Model:     "whisper-1",
			Language:  "pt",
			APIKeyEnv: "GRANA_STT_API_KEY",
		},
		Log: LogConfig{Level: "info"},
	}
}
