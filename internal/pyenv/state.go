// Package pyenv models the process environment that activation mutates:
// environment variables, the interpreter's module search path and the
// prefix markers that virtual environments swap.
//
// All mutation happens on an explicit State value so the sequence is
// testable without touching real process globals. Committing a State back
// to the process is a separate, final step (Apply).
package pyenv

import (
	"os"
	"strings"

	"github.com/GPLgithub/tk-framework-unrealqt/internal/platform"
)

// Environment variables read and written during activation.
const (
	// EnvVirtualEnv marks the active virtual root.
	EnvVirtualEnv = "VIRTUAL_ENV"
	// EnvPath is the executable search path.
	EnvPath = "PATH"
	// EnvPythonPath carries the module search path between processes.
	EnvPythonPath = "PYTHONPATH"
)

// State is a snapshot of the mutable process-wide environment.
type State struct {
	// ModulePath is the ordered module search path, consulted by the
	// import mechanism in order.
	ModulePath []string

	// Prefix is the active environment root; RealPrefix holds the root
	// that was active before the last swap. Dependent tooling compares
	// the two to detect an isolated environment.
	Prefix     string
	RealPrefix string

	vars    map[string]string
	listSep string
}

// NewState returns an empty State for the given canonical platform name.
// The platform determines the executable-search-path separator.
func NewState(pname string) *State {
	return &State{
		vars:    make(map[string]string),
		listSep: platform.ListSeparator(pname),
	}
}

// FromProcess snapshots the real process environment into a State. The
// module search path is seeded from PYTHONPATH.
func FromProcess(pname string) *State {
	s := NewState(pname)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			s.vars[k] = v
		}
	}
	if pythonPath := s.vars[EnvPythonPath]; pythonPath != "" {
		s.ModulePath = strings.Split(pythonPath, s.listSep)
	}
	s.Prefix = s.vars[EnvVirtualEnv]
	return s
}

// Getenv returns the value of an environment variable, or "".
func (s *State) Getenv(key string) string {
	return s.vars[key]
}

// Setenv sets an environment variable.
func (s *State) Setenv(key, value string) {
	s.vars[key] = value
}

// Environ returns a copy of the environment variable map.
func (s *State) Environ() map[string]string {
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// ListSeparator returns the path-list separator this State splits and
// joins PATH-style variables with.
func (s *State) ListSeparator() string {
	return s.listSep
}

// PrependPath puts dir at the front of the executable search path,
// keeping all existing entries after it.
func (s *State) PrependPath(dir string) {
	entries := []string{dir}
	if existing := s.vars[EnvPath]; existing != "" {
		entries = append(entries, strings.Split(existing, s.listSep)...)
	}
	s.vars[EnvPath] = strings.Join(entries, s.listSep)
}

// Clone returns an independent copy of the State.
func (s *State) Clone() *State {
	out := &State{
		ModulePath: append([]string(nil), s.ModulePath...),
		Prefix:     s.Prefix,
		RealPrefix: s.RealPrefix,
		vars:       make(map[string]string, len(s.vars)),
		listSep:    s.listSep,
	}
	for k, v := range s.vars {
		out.vars[k] = v
	}
	return out
}

// Apply commits a mutated State back to the real process environment.
// The module search path is exported as PYTHONPATH so interpreters
// started after activation resolve the vendored packages first.
func Apply(s *State) error {
	for _, key := range []string{EnvVirtualEnv, EnvPath} {
		if v, ok := s.vars[key]; ok {
			if err := os.Setenv(key, v); err != nil {
				return err
			}
		}
	}
	if len(s.ModulePath) > 0 {
		return os.Setenv(EnvPythonPath, strings.Join(s.ModulePath, s.listSep))
	}
	return nil
}
