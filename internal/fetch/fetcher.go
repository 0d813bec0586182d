package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ZebulonRouseFrantzich/quilter/internal/logging"
)

// Provider downloads the named tools for one platform into dest. The layout
// it leaves under dest is unspecified.
type Provider interface {
	Download(ctx context.Context, tools []string, dest, platform string) error
}

// Config holds configuration for the fetcher
type Config struct {
	// Destination is the directory receiving the renamed binaries
	Destination string
	// Provider performs the actual downloads
	Provider Provider
	// Targets restricts the run to a subset of Targets(); nil means all
	Targets []Target
	// Logger receives progress messages (default: no-op)
	Logger logging.Logger
}

// Fetcher places one ffmpeg binary per target into the destination directory.
type Fetcher struct {
	dest     string
	provider Provider
	targets  []Target
	log      logging.Logger
}

// Outcome is the result of placing a single target.
type Outcome struct {
	Target   Target
	Path     string
	Duration time.Duration
	Err      error
}

// Report summarizes a FetchAll run.
type Report struct {
	RunID    string
	Outcomes []Outcome // in target order
	Derived  DeriveResult
	// DeriveRan is false when a fetch failed and derivation was not attempted
	DeriveRan bool
}

// NewFetcher creates a new fetcher
func NewFetcher(config Config) (*Fetcher, error) {
	if config.Destination == "" {
		return nil, fmt.Errorf("Destination is required")
	}
	if config.Provider == nil {
		return nil, fmt.Errorf("Provider is required")
	}

	selected := config.Targets
	if selected == nil {
		selected = Targets()
	}
	for _, t := range selected {
		if _, ok := TargetFor(t.Platform); !ok {
			return nil, fmt.Errorf("unknown target platform: %s", t.Platform)
		}
	}

	if config.Logger == nil {
		config.Logger = logging.Nop()
	}

	return &Fetcher{
		dest:     config.Destination,
		provider: config.Provider,
		targets:  selected,
		log:      config.Logger,
	}, nil
}

// Destination returns the directory binaries are placed in.
func (f *Fetcher) Destination() string {
	return f.dest
}

// Path returns the canonical destination path for a target.
func (f *Fetcher) Path(t Target) string {
	return filepath.Join(f.dest, t.Filename)
}

// FetchAll fetches every target concurrently and, if all succeed, derives
// the Apple Silicon binary. A failing target does not cancel the others;
// the first error observed is returned once every fetch has settled.
func (f *Fetcher) FetchAll(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	log := f.log.With("run", report.RunID)

	if err := os.MkdirAll(f.dest, 0755); err != nil {
		return report, fmt.Errorf("create destination: %w", err)
	}

	lock, err := acquireLock(f.dest)
	if err != nil {
		return report, err
	}
	defer func() {
		if err := lock.release(); err != nil {
			log.Warn("release lock", "err", err)
		}
	}()

	log.Info("starting ffmpeg download", "targets", len(f.targets), "dest", f.dest)

	report.Outcomes = make([]Outcome, len(f.targets))
	var mu sync.Mutex
	var g errgroup.Group

	for i, target := range f.targets {
		i, target := i, target
		g.Go(func() error {
			start := time.Now()
			err := f.fetchAndPlace(ctx, log, target)

			mu.Lock()
			report.Outcomes[i] = Outcome{
				Target:   target,
				Path:     f.Path(target),
				Duration: time.Since(start),
				Err:      err,
			}
			mu.Unlock()
			return err
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("fetch failed", "err", err)
		return report, err
	}

	derived, err := f.DeriveAppleSilicon()
	if err != nil {
		return report, err
	}
	report.Derived = derived
	report.DeriveRan = true

	log.Info("ffmpeg binaries ready", "dest", f.dest)
	return report, nil
}

// FetchAndPlace downloads a single target into a scratch directory under
// the destination and moves the binary to its canonical path.
func (f *Fetcher) FetchAndPlace(ctx context.Context, target Target) error {
	return f.fetchAndPlace(ctx, f.log, target)
}

func (f *Fetcher) fetchAndPlace(ctx context.Context, log logging.Logger, target Target) error {
	log = log.With("platform", target.Platform)

	tempDir := filepath.Join(f.dest, "_temp_"+target.Platform)
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return fmt.Errorf("create temp dir for %s: %w", target.Platform, err)
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			log.Debug("cleanup temp dir", "path", tempDir, "err", err)
		}
	}()

	if err := f.provider.Download(ctx, []string{Tool}, tempDir, target.Platform); err != nil {
		return fmt.Errorf("%w for %s: %w", ErrDownload, target.Platform, err)
	}

	if err := f.place(tempDir, target); err != nil {
		return fmt.Errorf("process %s: %w", target.Platform, err)
	}

	log.Info("ready", "file", target.Filename)
	return nil
}

// place moves the binary found under tempDir to the target's final path.
func (f *Fetcher) place(tempDir string, target Target) error {
	name := target.BinaryName()
	found, ok, err := FindFile(tempDir, name)
	if err != nil {
		return fmt.Errorf("search for %s: %w", name, err)
	}
	if !ok {
		return &BinaryNotFoundError{Platform: target.Platform, Binary: name}
	}

	finalPath := f.Path(target)
	if err := os.RemoveAll(finalPath); err != nil {
		return fmt.Errorf("clear destination: %w", err)
	}

	if err := os.Rename(found, finalPath); err != nil {
		return fmt.Errorf("move binary: %w", err)
	}

	if target.Executable() {
		if err := os.Chmod(finalPath, 0755); err != nil {
			return fmt.Errorf("set executable: %w", err)
		}
	}

	return nil
}
