package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
)

// Defaults applied to fields a config leaves unset.
const (
	DefaultDestination = "src-tauri/binaries"
	DefaultAPI         = "https://ffbinaries.com/api/v1"
	DefaultVersion     = "latest"
	DefaultCache       = "~/.cache/quilter/ffbinaries"
	DefaultRetries     = 2
	DefaultTimeout     = 300
)

// Config represents a parsed quilter.lua.
type Config struct {
	Fetch      FetchConfig
	FFBinaries FFBinariesConfig
}

// FetchConfig controls where binaries go and which targets run.
type FetchConfig struct {
	// Destination is relative to the project root unless absolute.
	Destination string
	// HostOnly limits the run to the build matching the current machine.
	HostOnly bool
}

// FFBinariesConfig configures the download provider.
type FFBinariesConfig struct {
	API     string
	Version string
	// Cache is the archive cache directory; empty disables caching.
	Cache   string
	Retries int
	// Timeout is the per-request timeout in seconds.
	Timeout int
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{Destination: DefaultDestination},
		FFBinaries: FFBinariesConfig{
			API:     DefaultAPI,
			Version: DefaultVersion,
			Cache:   DefaultCache,
			Retries: DefaultRetries,
			Timeout: DefaultTimeout,
		},
	}
}

// Validate checks the config for values the fetcher cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Fetch.Destination == "" {
		errs = append(errs, errors.New("fetch.destination must not be empty"))
	}
	if c.FFBinaries.API == "" {
		errs = append(errs, errors.New("ffbinaries.api must not be empty"))
	}
	if c.FFBinaries.Version == "" {
		errs = append(errs, errors.New("ffbinaries.version must not be empty"))
	}
	if c.FFBinaries.Retries < 0 {
		errs = append(errs, fmt.Errorf("ffbinaries.retries must be >= 0, got %d", c.FFBinaries.Retries))
	}
	if c.FFBinaries.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("ffbinaries.timeout must be > 0, got %d", c.FFBinaries.Timeout))
	}
	return errors.Join(errs...)
}

// TimeoutDuration returns the per-request timeout.
func (c *FFBinariesConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// DestinationPath resolves the destination against projectRoot, expanding ~.
func (c *Config) DestinationPath(projectRoot string) (string, error) {
	dest, err := homedir.Expand(c.Fetch.Destination)
	if err != nil {
		return "", fmt.Errorf("expand destination: %w", err)
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(projectRoot, dest)
	}
	return filepath.Clean(dest), nil
}

// CachePath returns the expanded cache directory, or "" when caching is off.
func (c *Config) CachePath() (string, error) {
	if c.FFBinaries.Cache == "" {
		return "", nil
	}
	cache, err := homedir.Expand(c.FFBinaries.Cache)
	if err != nil {
		return "", fmt.Errorf("expand cache: %w", err)
	}
	return filepath.Clean(cache), nil
}
