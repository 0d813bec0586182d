package ffbinaries

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ZebulonRouseFrantzich/quilter/internal/logging"
)

const (
	// DefaultAPIURL is the ffbinaries v1 API root.
	DefaultAPIURL = "https://ffbinaries.com/api/v1"
	// DefaultVersion selects the newest published release.
	DefaultVersion = "latest"
)

// Config holds configuration for the ffbinaries client
type Config struct {
	// APIURL is the API root (default: DefaultAPIURL)
	APIURL string
	// Version is a release version such as "6.1", or "latest"
	Version string
	// CacheDir stores downloaded archives between runs; empty disables caching
	CacheDir string
	// Retries is the number of retries per HTTP request
	Retries int
	// Timeout bounds a single HTTP request
	Timeout time.Duration
	// Logger receives progress messages (default: no-op)
	Logger logging.Logger
}

// Client downloads ffmpeg family binaries published by ffbinaries.
// It is safe for concurrent use.
type Client struct {
	apiURL   string
	version  string
	cacheDir string
	log      logging.Logger
	dl       *downloader

	mu      sync.Mutex
	release *Release
}

// NewClient creates a new ffbinaries client
func NewClient(config Config) *Client {
	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}
	if config.Version == "" {
		config.Version = DefaultVersion
	}
	if config.Logger == nil {
		config.Logger = logging.Nop()
	}

	return &Client{
		apiURL:   strings.TrimRight(config.APIURL, "/"),
		version:  config.Version,
		cacheDir: config.CacheDir,
		log:      config.Logger,
		dl:       newDownloader(config.Timeout, config.Retries),
	}
}

// Release resolves the configured version against the API. The result is
// fetched once and reused for the lifetime of the client.
func (c *Client) Release(ctx context.Context) (*Release, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.release != nil {
		return c.release, nil
	}

	url := fmt.Sprintf("%s/version/%s", c.apiURL, c.version)
	c.log.Debug("resolving release", "url", url)

	body, err := c.dl.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch release index: %w", err)
	}

	release, err := parseRelease(body)
	if err != nil {
		return nil, err
	}

	c.log.Info("resolved ffbinaries release", "version", release.Version)
	c.release = release
	return release, nil
}

// parseRelease decodes a version document:
//
//	{"version": "6.1", "bin": {"linux-64": {"ffmpeg": "https://..."}}}
func parseRelease(body []byte) (*Release, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("release index is not valid JSON")
	}

	doc := gjson.ParseBytes(body)
	version := doc.Get("version")
	if !version.Exists() || version.String() == "" {
		return nil, fmt.Errorf("release index has no version")
	}

	bin := doc.Get("bin")
	if !bin.IsObject() {
		return nil, fmt.Errorf("release index has no bin table")
	}

	release := &Release{
		Version: version.String(),
		Bin:     make(map[string]map[string]string),
	}

	bin.ForEach(func(platform, tools gjson.Result) bool {
		if !tools.IsObject() {
			return true
		}
		urls := make(map[string]string)
		tools.ForEach(func(tool, url gjson.Result) bool {
			if url.Type == gjson.String && url.String() != "" {
				urls[tool.String()] = url.String()
			}
			return true
		})
		release.Bin[platform.String()] = urls
		return true
	})

	return release, nil
}

// Download fetches each tool for platform and extracts it into dest.
// The layout of dest after extraction is whatever the archive contains.
func (c *Client) Download(ctx context.Context, tools []string, dest, platform string) error {
	if len(tools) == 0 {
		return fmt.Errorf("no tools requested")
	}

	release, err := c.Release(ctx)
	if err != nil {
		return err
	}

	for _, tool := range tools {
		url, err := release.URL(platform, tool)
		if err != nil {
			return err
		}

		archivePath, cleanup, err := c.fetchArchive(ctx, release.Version, platform, url)
		if err != nil {
			return fmt.Errorf("download %s for %s: %w", tool, platform, err)
		}

		err = Extract(archivePath, dest)
		cleanup()
		if err != nil {
			return fmt.Errorf("extract %s for %s: %w", tool, platform, err)
		}

		c.log.Debug("extracted archive", "tool", tool, "platform", platform, "dest", dest)
	}

	return nil
}

// fetchArchive returns a local path holding the archive at url. With a
// cache directory the archive is kept at cache/{version}/{platform}/{file};
// without one it goes to a scratch directory removed by cleanup.
func (c *Client) fetchArchive(ctx context.Context, version, platform, url string) (string, func(), error) {
	filename := path.Base(url)
	noop := func() {}

	if c.cacheDir != "" {
		cachePath := filepath.Join(c.cacheDir, version, platform, filename)
		if fileExists(cachePath) {
			c.log.Debug("using cached archive", "path", cachePath)
			return cachePath, noop, nil
		}

		c.log.Info("downloading", "platform", platform, "url", url)
		if err := c.dl.downloadToFile(ctx, url, cachePath); err != nil {
			return "", noop, err
		}
		return cachePath, noop, nil
	}

	scratch, err := os.MkdirTemp("", "quilter-ffbinaries-")
	if err != nil {
		return "", noop, fmt.Errorf("create scratch dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(scratch) }

	c.log.Info("downloading", "platform", platform, "url", url)
	archivePath := filepath.Join(scratch, filename)
	if err := c.dl.downloadToFile(ctx, url, archivePath); err != nil {
		cleanup()
		return "", noop, err
	}
	return archivePath, cleanup, nil
}
