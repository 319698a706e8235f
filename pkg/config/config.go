package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvBaseURL is the environment variable holding the API base URL.
	EnvBaseURL = "CURSOR_AGENTS_URL"

	// DefaultBaseURL is used when no other source provides a base URL.
	DefaultBaseURL = "http://cursor-agents:3002"

	// FileName is the optional per-user/per-project configuration file.
	FileName = ".agentctl.yml"

	// DefaultTimeout is the client-side HTTP timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds the resolved settings for one invocation. It is built once
// at process entry and passed into the client explicitly.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// fileConfig is the shape of .agentctl.yml.
type fileConfig struct {
	APIURL         string `yaml:"api_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Resolve determines the base URL and timeout for this invocation.
// Precedence, first non-empty wins: the --api-url flag value, the
// CURSOR_AGENTS_URL environment variable, the api_url key of an
// .agentctl.yml in the working directory or home directory, then
// DefaultBaseURL. The chosen URL is used verbatim.
func Resolve(flagURL string) (*Config, error) {
	cfg := &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}

	fc, err := loadFile()
	if err != nil {
		return nil, err
	}
	if fc != nil {
		if fc.APIURL != "" {
			cfg.BaseURL = fc.APIURL
		}
		if fc.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
		}
	}

	if env := os.Getenv(EnvBaseURL); env != "" {
		cfg.BaseURL = env
	}
	if flagURL != "" {
		cfg.BaseURL = flagURL
	}

	return cfg, nil
}

// loadFile reads the first .agentctl.yml found in the working directory
// or the home directory. Returns nil when no file exists.
func loadFile() (*fileConfig, error) {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, FileName))
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return &fc, nil
	}

	return nil, nil
}
