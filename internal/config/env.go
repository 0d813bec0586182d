package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Env holds the environment overrides read at startup.
type Env struct {
	ConfigPath  string `env:"QUILTER_CONFIG" env-description:"path to quilter.lua"`
	ProjectRoot string `env:"QUILTER_PROJECT_ROOT" env-description:"project root containing src-tauri"`
	CacheDir    string `env:"QUILTER_CACHE_DIR" env-description:"archive cache directory"`
	LogLevel    string `env:"QUILTER_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogFormat   string `env:"QUILTER_LOG_FORMAT" env-default:"console" env-description:"console or json"`
}

// ReadEnv loads Env from the process environment.
func ReadEnv() (*Env, error) {
	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &env, nil
}

// EnvUsage describes the supported environment variables.
func EnvUsage() (string, error) {
	return cleanenv.GetDescription(&Env{}, nil)
}

// Apply overlays environment overrides onto c.
func (e *Env) Apply(c *Config) {
	if e.CacheDir != "" {
		c.FFBinaries.Cache = e.CacheDir
	}
}
