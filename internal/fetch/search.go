package fetch

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// errFound stops the walk once a match is recorded.
var errFound = errors.New("found")

// FindFile searches root depth-first, in lexical order, for the first
// regular file named name. Directories with a matching name are descended
// into, never returned.
func FindFile(root, name string) (string, bool, error) {
	var match string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && d.Name() == name {
			match = path
			return errFound
		}
		return nil
	})

	switch {
	case errors.Is(err, errFound):
		return match, true, nil
	case err != nil:
		return "", false, err
	default:
		return "", false, nil
	}
}
