package vendortree

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GPLgithub/tk-framework-unrealqt/internal/platform"
)

func TestBinFolder(t *testing.T) {
	if got := BinFolder(platform.Windows); got != "Scripts" {
		t.Errorf("BinFolder(windows) = %q, want Scripts", got)
	}
	if got := BinFolder(platform.Linux); got != "bin" {
		t.Errorf("BinFolder(linux) = %q, want bin", got)
	}
	if got := BinFolder(platform.OSX); got != "bin" {
		t.Errorf("BinFolder(osx) = %q, want bin", got)
	}
}

func TestBasePath(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "python", "vendors", "py3.10", "linux")
	if err := os.MkdirAll(want, 0755); err != nil {
		t.Fatalf("failed to create vendor tree: %v", err)
	}

	got := BasePath(root, platform.Linux, 3, 10)
	// TempDir may itself sit behind a symlink (macOS /var), so compare
	// resolved forms.
	resolvedWant, err := filepath.EvalSymlinks(want)
	if err != nil {
		t.Fatalf("failed to resolve want path: %v", err)
	}
	if got != resolvedWant {
		t.Errorf("BasePath = %q, want %q", got, resolvedWant)
	}
}

func TestBasePath_MissingTreeKeepsShape(t *testing.T) {
	// The directory is supplied out-of-band; a missing tree still yields
	// the deterministic path.
	root := t.TempDir()
	got := BasePath(root, platform.OSX, 3, 7)
	want := filepath.Join(root, "python", "vendors", "py3.7", "osx")
	resolvedRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("failed to resolve root: %v", err)
	}
	resolvedWant := filepath.Join(resolvedRoot, "python", "vendors", "py3.7", "osx")
	if got != want && got != resolvedWant {
		t.Errorf("BasePath = %q, want %q", got, want)
	}
}

func TestSitePackages_Windows_NoListing(t *testing.T) {
	// Base path doesn't exist at all: windows resolution must not list
	// the filesystem.
	base := filepath.Join(t.TempDir(), "does-not-exist")
	got, err := SitePackages(base, platform.Windows, 3)
	if err != nil {
		t.Fatalf("SitePackages returned error: %v", err)
	}
	want := filepath.Join(base, "Lib", "site-packages")
	if got != want {
		t.Errorf("SitePackages = %q, want %q", got, want)
	}
}

func TestSitePackages_Posix(t *testing.T) {
	base := t.TempDir()
	sitePackages := filepath.Join(base, "lib", "python3.9", "site-packages")
	if err := os.MkdirAll(sitePackages, 0755); err != nil {
		t.Fatalf("failed to create site-packages: %v", err)
	}

	got, err := SitePackages(base, platform.Linux, 3)
	if err != nil {
		t.Fatalf("SitePackages returned error: %v", err)
	}
	if got != sitePackages {
		t.Errorf("SitePackages = %q, want %q", got, sitePackages)
	}
}

func TestSitePackages_Posix_NoMatchingLib(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "lib", "tcl8.6"), 0755); err != nil {
		t.Fatalf("failed to create lib dir: %v", err)
	}

	_, err := SitePackages(base, platform.OSX, 3)
	var notFound *VendorLibraryNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v (%T), want *VendorLibraryNotFoundError", err, err)
	}
}

func TestVendorBinPath(t *testing.T) {
	got := VendorBinPath("/opt/fw", "ffmpeg", platform.Linux)
	want := filepath.Join("/opt/fw", "vendors", "ffmpeg", "bin", "linux")
	if got != want {
		t.Errorf("VendorBinPath with vendor = %q, want %q", got, want)
	}

	got = VendorBinPath("/opt/fw", "", platform.OSX)
	want = filepath.Join("/opt/fw", "vendors", "bin", "osx")
	if got != want {
		t.Errorf("VendorBinPath without vendor = %q, want %q", got, want)
	}
}
