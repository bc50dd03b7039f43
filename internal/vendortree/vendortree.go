// Package vendortree resolves paths inside the vendored package
// distributions shipped with the framework.
//
// A vendor tree is keyed by interpreter version and platform:
//
//	<root>/python/vendors/py<major>.<minor>/<platform>/{bin|Scripts}
//	<root>/python/vendors/py<major>.<minor>/<platform>/lib/python<major>.<N>/site-packages   (posix)
//	<root>/python/vendors/py<major>.<minor>/<platform>/Lib/site-packages                     (windows)
//
// The tree is supplied out-of-band and is never created here.
package vendortree

import (
	"fmt"
	"path/filepath"

	"github.com/GPLgithub/tk-framework-unrealqt/internal/pathutil"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/platform"
)

// VendorLibraryNotFoundError reports a vendor tree with no library folder
// matching the expected interpreter version.
type VendorLibraryNotFoundError struct {
	// Major is the interpreter major version the search was keyed on.
	Major int
	// Entries are the directory names that were examined.
	Entries []string
}

func (e *VendorLibraryNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find python libraries for Python %d from %v", e.Major, e.Entries)
}

// BasePath returns the platform- and version-specific root of the vendor
// tree, with symlinks in the existing portion resolved.
func BasePath(frameworkRoot, pname string, major, minor int) string {
	base := filepath.Join(
		frameworkRoot,
		"python",
		"vendors",
		fmt.Sprintf("py%d.%d", major, minor),
		pname,
	)
	resolved, err := pathutil.ResolveAbsolutePath(base)
	if err != nil {
		return base
	}
	return resolved
}

// BinFolder returns the name of the executable folder inside a vendor
// distribution. Virtual-env style trees use Scripts on Windows, bin
// everywhere else.
func BinFolder(pname string) string {
	if pname == platform.Windows {
		return "Scripts"
	}
	return "bin"
}

// SitePackages returns the site-packages directory for the given vendor
// base path. On windows the location is fixed and no listing is performed;
// on other platforms the version-tagged lib subfolder is discovered by
// listing the tree, since the exact tag varies across interpreter builds.
func SitePackages(basePath, pname string, major int) (string, error) {
	if pname == platform.Windows {
		return filepath.Join(basePath, "Lib", "site-packages"), nil
	}

	lib, err := FindLibFolder(filepath.Join(basePath, "lib"), major)
	if err != nil {
		return "", err
	}
	return filepath.Join(basePath, "lib", lib, "site-packages"), nil
}

// VendorBinPath returns the binary folder for the given vendor and
// platform under the framework's vendors root. With an empty vendor the
// shared binary folder is returned. External collaborators use this to
// locate binaries without triggering a full activation.
func VendorBinPath(frameworkRoot, vendor, pname string) string {
	if vendor != "" {
		return filepath.Join(frameworkRoot, "vendors", vendor, "bin", pname)
	}
	return filepath.Join(frameworkRoot, "vendors", "bin", pname)
}
