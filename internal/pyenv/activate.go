package pyenv

import (
	"path/filepath"

	"github.com/GPLgithub/tk-framework-unrealqt/internal/logging"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/platform"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/vendortree"
)

// BindingModule is the GUI-binding entry point whose importability
// decides whether activation is needed at all.
const BindingModule = "PySide2"

// Config drives one activation run.
type Config struct {
	// FrameworkRoot is the directory the framework is deployed under,
	// holding the python/vendors tree.
	FrameworkRoot string

	// Platform is the canonical platform name. Empty means detect the
	// running OS.
	Platform string

	// PythonMajor and PythonMinor select the vendor distribution.
	PythonMajor int
	PythonMinor int

	// Resolver probes whether the bindings already import. Nil skips
	// the probe and always activates.
	Resolver BindingResolver

	// Logger receives debug traces. Nil discards them.
	Logger *logging.Logger
}

// Activate runs the activation sequence against the given State:
// probe, resolve the vendor paths, then mutate in a fixed order.
//
// When the probe succeeds the State is returned untouched. Failures are
// fatal and leave whatever mutation already happened in place; activation
// runs once at startup and the host aborts the plugin load on error.
func Activate(s *State, cfg Config) error {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	// The bindings being importable already means there is nothing to do.
	if cfg.Resolver != nil {
		if where, ok := cfg.Resolver.Resolve(BindingModule); ok {
			log.Debug().Str("module", BindingModule).Str("path", where).
				Msg("Qt is already available, not activating any custom package")
			return nil
		}
		log.Debug().Str("module", BindingModule).
			Msg("Qt is not available, activating custom package")
	}

	pname := cfg.Platform
	if pname == "" {
		detected, err := platform.Current()
		if err != nil {
			return err
		}
		pname = detected
	}

	basePath := vendortree.BasePath(cfg.FrameworkRoot, pname, cfg.PythonMajor, cfg.PythonMinor)
	log.Debug().Str("base_path", basePath).Msg("activating custom packages")

	binFolder := vendortree.BinFolder(pname)
	sitePath, err := vendortree.SitePackages(basePath, pname, cfg.PythonMajor)
	if err != nil {
		return err
	}

	// Mutation order matters to dependent tooling; keep it fixed.
	s.Setenv(EnvVirtualEnv, basePath)
	s.PrependPath(filepath.Join(basePath, binFolder))

	// Site-dir expansion appends; reorder so the new entries (site dir
	// first, then its .pth expansions) take precedence over everything
	// that was on the module path before this call.
	prev := len(s.ModulePath)
	s.AddSiteDir(sitePath)
	reordered := make([]string, 0, len(s.ModulePath))
	reordered = append(reordered, s.ModulePath[prev:]...)
	reordered = append(reordered, s.ModulePath[:prev]...)
	s.ModulePath = reordered

	s.RealPrefix = s.Prefix
	s.Prefix = basePath
	return nil
}
