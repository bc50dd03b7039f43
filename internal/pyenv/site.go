package pyenv

import (
	"os"
	"path/filepath"
	"strings"
)

// AddSiteDir appends dir to the module search path and then expands any
// .pth files found inside it, the way the import mechanism's own site-dir
// handling does: one path per line, relative to the site dir, with blank
// lines, comments and import lines skipped, and entries that are missing
// from disk or already on the path dropped.
//
// New entries always land at the end of the module path; callers that
// need precedence reorder afterwards (see Activate).
func (s *State) AddSiteDir(dir string) {
	s.appendModulePath(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		// A site dir without a listing contributes nothing extra.
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pth") {
			continue
		}
		s.addPthFile(dir, filepath.Join(dir, entry.Name()))
	}
}

// addPthFile expands one .pth file relative to its site dir.
func (s *State) addPthFile(siteDir, pthFile string) {
	data, err := os.ReadFile(pthFile)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Executable lines are the import mechanism's business, not ours.
		if strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "import\t") {
			continue
		}
		candidate := line
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(siteDir, candidate)
		}
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		s.appendModulePath(candidate)
	}
}

// appendModulePath adds dir to the end of the module path unless it is
// already present.
func (s *State) appendModulePath(dir string) {
	for _, existing := range s.ModulePath {
		if existing == dir {
			return
		}
	}
	s.ModulePath = append(s.ModulePath, dir)
}
