package pyenv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathResolver_PackageDir(t *testing.T) {
	dir := t.TempDir()
	pkg := filepath.Join(dir, "PySide2")
	if err := os.Mkdir(pkg, 0755); err != nil {
		t.Fatalf("failed to create package dir: %v", err)
	}
	writeFile(t, filepath.Join(pkg, "__init__.py"), "")

	r := PathResolver{Path: []string{t.TempDir(), dir}}
	got, ok := r.Resolve("PySide2")
	if !ok {
		t.Fatal("Resolve(PySide2) = not found, want found")
	}
	if got != pkg {
		t.Errorf("Resolve(PySide2) = %q, want %q", got, pkg)
	}
}

func TestPathResolver_ModuleFile(t *testing.T) {
	dir := t.TempDir()
	mod := filepath.Join(dir, "shiboken2.py")
	writeFile(t, mod, "")

	r := PathResolver{Path: []string{dir}}
	got, ok := r.Resolve("shiboken2")
	if !ok {
		t.Fatal("Resolve(shiboken2) = not found, want found")
	}
	if got != mod {
		t.Errorf("Resolve(shiboken2) = %q, want %q", got, mod)
	}
}

func TestPathResolver_NotFound(t *testing.T) {
	// A bare directory named like the module is not importable.
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "PySide2"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	r := PathResolver{Path: []string{dir}}
	if _, ok := r.Resolve("PySide2"); ok {
		t.Error("Resolve found a package without __init__.py")
	}
	if _, ok := r.Resolve("QtCore"); ok {
		t.Error("Resolve found a module that doesn't exist")
	}
}
