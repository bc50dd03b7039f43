// Package platform maps operating system family names to the canonical
// names used when building vendor paths.
package platform

import (
	"fmt"
	"runtime"
)

// Canonical platform names used in vendor tree paths.
const (
	OSX     = "osx"
	Linux   = "linux"
	Windows = "windows"
)

// platformNames maps OS family identifiers (as reported by the host,
// e.g. "Darwin" on macOS) to canonical names.
var platformNames = map[string]string{
	"Darwin":  OSX,
	"Linux":   Linux,
	"Windows": Windows,
}

// goosNames maps Go runtime identifiers to the same OS family identifiers.
var goosNames = map[string]string{
	"darwin":  "Darwin",
	"linux":   "Linux",
	"windows": "Windows",
}

// UnsupportedPlatformError reports an OS family outside the supported set.
type UnsupportedPlatformError struct {
	// System is the raw detected OS family name.
	System string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("platform %s is not supported", e.System)
}

// Name returns the canonical name for the given OS family.
// Supported families are Darwin, Linux and Windows.
func Name(system string) (string, error) {
	pname, ok := platformNames[system]
	if !ok {
		return "", &UnsupportedPlatformError{System: system}
	}
	return pname, nil
}

// Current returns the canonical name for the running OS.
func Current() (string, error) {
	system, ok := goosNames[runtime.GOOS]
	if !ok {
		return "", &UnsupportedPlatformError{System: runtime.GOOS}
	}
	return Name(system)
}

// ListSeparator returns the executable-search-path separator for the
// given canonical platform name: ";" on windows, ":" elsewhere.
func ListSeparator(pname string) string {
	if pname == Windows {
		return ";"
	}
	return ":"
}
