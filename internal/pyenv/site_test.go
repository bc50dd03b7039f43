package pyenv

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/GPLgithub/tk-framework-unrealqt/internal/platform"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestAddSiteDir_NoPthFiles(t *testing.T) {
	site := t.TempDir()
	s := NewState(platform.Linux)
	s.ModulePath = []string{"/old"}

	s.AddSiteDir(site)

	want := []string{"/old", site}
	if !reflect.DeepEqual(s.ModulePath, want) {
		t.Errorf("ModulePath = %v, want %v", s.ModulePath, want)
	}
}

func TestAddSiteDir_PthExpansion(t *testing.T) {
	site := t.TempDir()
	extras := filepath.Join(site, "extras")
	if err := os.Mkdir(extras, 0755); err != nil {
		t.Fatalf("failed to create extras: %v", err)
	}
	writeFile(t, filepath.Join(site, "vendored.pth"),
		"# comment line\n"+
			"import fixup_paths\n"+
			"extras\n"+
			"missing-dir\n"+
			"\n")

	s := NewState(platform.Linux)
	s.AddSiteDir(site)

	want := []string{site, extras}
	if !reflect.DeepEqual(s.ModulePath, want) {
		t.Errorf("ModulePath = %v, want %v", s.ModulePath, want)
	}
}

func TestAddSiteDir_AbsolutePthEntry(t *testing.T) {
	site := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(site, "abs.pth"), other+"\n")

	s := NewState(platform.Linux)
	s.AddSiteDir(site)

	want := []string{site, other}
	if !reflect.DeepEqual(s.ModulePath, want) {
		t.Errorf("ModulePath = %v, want %v", s.ModulePath, want)
	}
}

func TestAddSiteDir_DeduplicatesKnownPaths(t *testing.T) {
	site := t.TempDir()
	extras := filepath.Join(site, "extras")
	if err := os.Mkdir(extras, 0755); err != nil {
		t.Fatalf("failed to create extras: %v", err)
	}
	writeFile(t, filepath.Join(site, "dup.pth"), "extras\nextras\n")

	s := NewState(platform.Linux)
	s.ModulePath = []string{extras}
	s.AddSiteDir(site)

	want := []string{extras, site}
	if !reflect.DeepEqual(s.ModulePath, want) {
		t.Errorf("ModulePath = %v, want %v", s.ModulePath, want)
	}
}

func TestAddSiteDir_MissingDir(t *testing.T) {
	s := NewState(platform.Linux)
	missing := filepath.Join(t.TempDir(), "nope")
	s.AddSiteDir(missing)

	// The dir is still added; only the listing contributes nothing.
	want := []string{missing}
	if !reflect.DeepEqual(s.ModulePath, want) {
		t.Errorf("ModulePath = %v, want %v", s.ModulePath, want)
	}
}
