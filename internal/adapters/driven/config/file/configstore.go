package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvToken is the environment variable that overrides the stored token.
const EnvToken = "SPACESYNC_TOKEN"

// Config holds the CLI configuration persisted in TOML.
type Config struct {
	// Token authenticates against the management API.
	Token string `toml:"token,omitempty"`

	// SourceSpaceID is the default source space.
	SourceSpaceID int64 `toml:"source_space_id,omitempty"`

	// TargetSpaceID is the default target space.
	TargetSpaceID int64 `toml:"target_space_id,omitempty"`
}

// ConfigStore loads and saves the CLI configuration file.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a config store. If configDir is empty, defaults to
// ~/.spacesync/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".spacesync")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}
	return &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load reads the configuration. A missing file yields a zero config.
// The SPACESYNC_TOKEN environment variable takes precedence over the file.
func (s *ConfigStore) Load() (Config, error) {
	var cfg Config

	data, err := os.ReadFile(s.filePath)
	switch {
	case os.IsNotExist(err):
		// fall through to env override
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if token := os.Getenv(EnvToken); token != "" {
		cfg.Token = token
	}
	return cfg, nil
}

// Save writes the configuration with owner-only permissions; the file
// contains the management token.
func (s *ConfigStore) Save(cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
