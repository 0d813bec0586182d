package fetch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DeriveResult records what DeriveAppleSilicon did.
type DeriveResult int

const (
	// DeriveCopied means the Intel binary was copied into the ARM slot.
	DeriveCopied DeriveResult = iota
	// DeriveSkippedPresent means an ARM binary already existed and was left alone.
	DeriveSkippedPresent
	// DeriveSkippedNoSource means neither binary existed; nothing was done.
	DeriveSkippedNoSource
)

// String returns the string representation of the result
func (r DeriveResult) String() string {
	switch r {
	case DeriveCopied:
		return "copied"
	case DeriveSkippedPresent:
		return "skipped (already present)"
	case DeriveSkippedNoSource:
		return "skipped (no Intel binary)"
	default:
		return "unknown"
	}
}

// DeriveAppleSilicon fills the aarch64-apple-darwin slot with a copy of the
// x86_64 binary, which Apple Silicon machines run under Rosetta.
func (f *Fetcher) DeriveAppleSilicon() (DeriveResult, error) {
	intelPath := filepath.Join(f.dest, FilenameMacOSIntel)
	armPath := filepath.Join(f.dest, FilenameMacOSARM)

	if _, err := os.Stat(armPath); err == nil {
		f.log.Debug("arm binary already present", "path", armPath)
		return DeriveSkippedPresent, nil
	}

	if _, err := os.Stat(intelPath); err != nil {
		f.log.Debug("no intel binary to derive from", "path", intelPath)
		return DeriveSkippedNoSource, nil
	}

	if err := os.RemoveAll(armPath); err != nil {
		return 0, fmt.Errorf("clear %s: %w", FilenameMacOSARM, err)
	}

	if err := copyFile(intelPath, armPath); err != nil {
		return 0, fmt.Errorf("copy %s to %s: %w", FilenameMacOSIntel, FilenameMacOSARM, err)
	}

	f.log.Info("copied intel binary (runs via Rosetta)", "file", FilenameMacOSARM)
	return DeriveCopied, nil
}

// copyFile copies src to dst byte for byte, keeping src's permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}

	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile's mode is filtered by the umask
	return os.Chmod(dst, info.Mode().Perm())
}
