package config

import (
	"os"
	"strings"
	"testing"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestReadEnv(t *testing.T) {
	t.Setenv("QUILTER_CONFIG", "/etc/quilter.lua")
	t.Setenv("QUILTER_PROJECT_ROOT", "/work/app")
	t.Setenv("QUILTER_CACHE_DIR", "/tmp/ffcache")
	t.Setenv("QUILTER_LOG_LEVEL", "debug")
	unsetEnv(t, "QUILTER_LOG_FORMAT")

	env, err := ReadEnv()
	if err != nil {
		t.Fatalf("ReadEnv() error = %v", err)
	}

	if env.ConfigPath != "/etc/quilter.lua" || env.ProjectRoot != "/work/app" || env.CacheDir != "/tmp/ffcache" {
		t.Errorf("env = %+v", env)
	}
	if env.LogLevel != "debug" || env.LogFormat != "console" {
		t.Errorf("log settings = %q/%q, want debug/console", env.LogLevel, env.LogFormat)
	}
}

func TestReadEnvDefaults(t *testing.T) {
	for _, key := range []string{"QUILTER_CONFIG", "QUILTER_PROJECT_ROOT", "QUILTER_CACHE_DIR", "QUILTER_LOG_LEVEL", "QUILTER_LOG_FORMAT"} {
		unsetEnv(t, key)
	}

	env, err := ReadEnv()
	if err != nil {
		t.Fatalf("ReadEnv() error = %v", err)
	}
	if env.LogLevel != "info" || env.LogFormat != "console" {
		t.Errorf("defaults = %q/%q, want info/console", env.LogLevel, env.LogFormat)
	}
}

func TestEnvApply(t *testing.T) {
	c := Default()
	(&Env{}).Apply(c)
	if c.FFBinaries.Cache != DefaultCache {
		t.Errorf("empty override changed cache to %q", c.FFBinaries.Cache)
	}

	(&Env{CacheDir: "/tmp/other"}).Apply(c)
	if c.FFBinaries.Cache != "/tmp/other" {
		t.Errorf("Cache = %q, want /tmp/other", c.FFBinaries.Cache)
	}
}

func TestEnvUsage(t *testing.T) {
	usage, err := EnvUsage()
	if err != nil {
		t.Fatalf("EnvUsage() error = %v", err)
	}
	if !strings.Contains(usage, "QUILTER_CACHE_DIR") {
		t.Errorf("usage missing QUILTER_CACHE_DIR:\n%s", usage)
	}
}
