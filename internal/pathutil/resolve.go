// Package pathutil provides path resolution helpers shared by the
// activator and the doctor tool.
package pathutil

import (
	"os"
	"path/filepath"
)

// ResolveAbsolutePath converts a path to an absolute path with symlinks
// resolved. Vendor trees are frequently deployed behind symlinks (shared
// studio installs), so the existing portion of the path is resolved and
// any not-yet-existing components are appended as-is.
func ResolveAbsolutePath(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = home + path[1:]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	// Fast path: the whole thing exists.
	resolved, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		return resolved, nil
	}

	// Walk up to the deepest existing ancestor, resolve that, then put
	// the missing components back.
	current := absPath
	var remainder []string

	for {
		if _, err := os.Stat(current); err == nil {
			resolved, err := filepath.EvalSymlinks(current)
			if err != nil {
				resolved = current
			}
			for i := len(remainder) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, remainder[i])
			}
			return resolved, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached root without finding an existing dir.
			return absPath, nil
		}
		remainder = append(remainder, filepath.Base(current))
		current = parent
	}
}
