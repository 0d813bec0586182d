package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/ZebulonRouseFrantzich/quilter/internal/config"
	"github.com/ZebulonRouseFrantzich/quilter/internal/fetch"
	"github.com/ZebulonRouseFrantzich/quilter/internal/ffbinaries"
	"github.com/ZebulonRouseFrantzich/quilter/internal/logging"
	"github.com/ZebulonRouseFrantzich/quilter/internal/platform"
)

// fetchOptions holds the parsed `quilter fetch` flags.
type fetchOptions struct {
	project  string
	config   string
	hostOnly bool
	verbose  bool
	help     bool
}

func parseFetchArgs(args []string) (*fetchOptions, error) {
	opts := &fetchOptions{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")

		switch name {
		case "--help", "-h":
			if hasValue {
				return nil, fmt.Errorf("%s takes no value", name)
			}
			opts.help = true
		case "--host-only", "--verbose", "-v":
			enabled := true
			if hasValue {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return nil, fmt.Errorf("invalid value for %s: %q", name, value)
				}
				enabled = b
			}
			if name == "--host-only" {
				opts.hostOnly = enabled
			} else {
				opts.verbose = enabled
			}
		case "--project", "--config":
			if !hasValue {
				if i+1 >= len(args) {
					return nil, fmt.Errorf("%s requires a value", name)
				}
				i++
				value = args[i]
			}
			if name == "--project" {
				opts.project = value
			} else {
				opts.config = value
			}
		default:
			return nil, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

// runFetch handles the `quilter fetch` subcommand
func runFetch(args []string, stdout io.Writer) error {
	opts, err := parseFetchArgs(args)
	if err != nil {
		return err
	}
	if opts.help {
		printFetchHelp(stdout)
		return nil
	}

	env, err := config.ReadEnv()
	if err != nil {
		return err
	}

	level := env.LogLevel
	if opts.verbose {
		level = "debug"
	}
	log, err := logging.New(logging.Options{Level: level, Format: logging.Format(env.LogFormat)})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	projectRoot, err := resolveProjectRoot(opts.project, env.ProjectRoot)
	if err != nil {
		return err
	}

	configPath := opts.config
	if configPath == "" {
		configPath = env.ConfigPath
	}
	if configPath == "" {
		configPath = config.DefaultPath(projectRoot)
	}

	detector := platform.NewDetector()
	host, err := detectHost(ctx, detector, log)
	if err != nil {
		return err
	}

	cfg, err := config.NewParser(detector).Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("load %s: %s", configPath, config.FormatError(err, opts.verbose))
	}
	env.Apply(cfg)
	if opts.hostOnly {
		cfg.Fetch.HostOnly = true
	}

	dest, err := cfg.DestinationPath(projectRoot)
	if err != nil {
		return err
	}
	cacheDir, err := cfg.CachePath()
	if err != nil {
		return err
	}

	var targets []fetch.Target
	if cfg.Fetch.HostOnly {
		target, err := hostTarget(host, log)
		if err != nil {
			return err
		}
		targets = []fetch.Target{target}
	}

	provider := ffbinaries.NewClient(ffbinaries.Config{
		APIURL:   cfg.FFBinaries.API,
		Version:  cfg.FFBinaries.Version,
		CacheDir: cacheDir,
		Retries:  cfg.FFBinaries.Retries,
		Timeout:  cfg.FFBinaries.TimeoutDuration(),
		Logger:   log,
	})

	fetcher, err := fetch.NewFetcher(fetch.Config{
		Destination: dest,
		Provider:    provider,
		Targets:     targets,
		Logger:      log,
	})
	if err != nil {
		return err
	}

	report, err := fetcher.FetchAll(ctx)
	printReport(stdout, report)
	return err
}

// resolveProjectRoot picks the flag, then the environment, then the
// working directory.
func resolveProjectRoot(flagValue, envValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envValue != "" {
		return envValue, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}

// detectHost runs platform detection and logs what it found.
func detectHost(ctx context.Context, detector platform.Detector, log logging.Logger) (*platform.Info, error) {
	info, err := detector.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect platform: %w", err)
	}
	log.Debug("detected platform",
		"os", info.OS,
		"arch", info.Arch,
		"distro", info.Distro,
		"distro_version", info.DistroVersion,
	)
	return info, nil
}

// hostTarget returns the fetch target whose binary runs on the host.
func hostTarget(info *platform.Info, log logging.Logger) (fetch.Target, error) {
	code, err := info.FFBinariesPlatform()
	if err != nil {
		return fetch.Target{}, err
	}
	target, ok := fetch.TargetFor(code)
	if !ok {
		return fetch.Target{}, fmt.Errorf("no fetch target for %s", code)
	}
	log.Debug("host-only fetch", "platform", code, "distro", info.Distro, "distro_version", info.DistroVersion)
	return target, nil
}

func printReport(w io.Writer, report *fetch.Report) {
	if report == nil {
		return
	}

	ok := color.New(color.FgHiGreen)
	failed := color.New(color.FgHiRed, color.Bold)

	for _, outcome := range report.Outcomes {
		if outcome.Target.Filename == "" {
			continue
		}
		if outcome.Err != nil {
			failed.Fprintf(w, "Failed: %s\n", outcome.Target.Filename)
			continue
		}
		ok.Fprintf(w, "Ready: %s\n", outcome.Target.Filename)
	}

	if report.DeriveRan {
		fmt.Fprintf(w, "%s: %s\n", fetch.FilenameMacOSARM, report.Derived)
	}
}

func printFetchHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: quilter fetch [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Download ffmpeg for every bundled platform and place each binary under")
	fmt.Fprintln(w, "its target-triple name in the destination directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --project DIR   Project root (default: $QUILTER_PROJECT_ROOT or cwd)")
	fmt.Fprintln(w, "  --config FILE   Config file (default: <project>/quilter.lua)")
	fmt.Fprintln(w, "  --host-only     Only fetch the build for this machine")
	fmt.Fprintln(w, "  -v, --verbose   Debug logging and full config errors")
	fmt.Fprintln(w, "  -h, --help      Show this help message")

	if usage, err := config.EnvUsage(); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, usage)
	}
}
