package vendortree

import (
	"fmt"
	"os"
	"regexp"
)

// FindLibFolder lists libDir and returns the entry whose name matches the
// interpreter-version pattern python<major>.<N> (anchored, case-sensitive).
// The exact minor tag embedded in the folder name is not known ahead of
// time, so the listing is pattern-matched rather than joined directly.
//
// Returns *VendorLibraryNotFoundError when no entry matches. Filesystem
// errors from the listing propagate unmodified.
func FindLibFolder(libDir string, major int) (string, error) {
	entries, err := os.ReadDir(libDir)
	if err != nil {
		return "", err
	}

	pattern := regexp.MustCompile(fmt.Sprintf(`^python%d\.\d+$`, major))

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	for _, name := range names {
		if pattern.MatchString(name) {
			return name, nil
		}
	}
	return "", &VendorLibraryNotFoundError{Major: major, Entries: names}
}
