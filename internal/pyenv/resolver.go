package pyenv

import (
	"os"
	"path/filepath"
)

// BindingResolver is a capability check against the host's module
// resolution mechanism: can this module be imported right now?
type BindingResolver interface {
	// Resolve returns the location the module resolves to, and whether
	// it resolves at all. It must be side-effect-free.
	Resolve(module string) (string, bool)
}

// moduleFileExtensions are the file forms a module can take on disk,
// beside a package directory.
var moduleFileExtensions = []string{".py", ".pyd", ".so"}

// PathResolver resolves modules by scanning a module search path, in
// order, for a package directory or module file. It is the default
// resolver for activation against a snapshot taken with FromProcess.
type PathResolver struct {
	// Path is the module search path to scan.
	Path []string
}

// Resolve checks each search path entry for the named module.
func (r PathResolver) Resolve(module string) (string, bool) {
	for _, dir := range r.Path {
		pkg := filepath.Join(dir, module)
		if fi, err := os.Stat(filepath.Join(pkg, "__init__.py")); err == nil && !fi.IsDir() {
			return pkg, true
		}
		for _, ext := range moduleFileExtensions {
			candidate := pkg + ext
			if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
				return candidate, true
			}
		}
	}
	return "", false
}
