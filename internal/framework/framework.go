// Package framework exposes the plugin lifecycle the host consumes:
// Init runs the environment activation, Destroy is a no-op.
package framework

import (
	"github.com/GPLgithub/tk-framework-unrealqt/internal/logging"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/platform"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/pyenv"
)

// Default interpreter version the vendor distributions target, used when
// the host doesn't say which interpreter it embeds.
const (
	DefaultPythonMajor = 3
	DefaultPythonMinor = 9
)

// Options tunes a Framework beyond its deployment root.
type Options struct {
	// PythonMajor and PythonMinor select the vendor distribution.
	// Zero major means DefaultPythonMajor/DefaultPythonMinor.
	PythonMajor int
	PythonMinor int

	// Resolver overrides the probe used to detect already-available
	// bindings. Nil uses a path scan over the process snapshot.
	Resolver pyenv.BindingResolver

	// Logger defaults to the stderr console logger.
	Logger *logging.Logger
}

// Framework ships the vendored GUI bindings and tweaks the process
// environment to make them importable by apps and engines.
type Framework struct {
	root     string
	major    int
	minor    int
	resolver pyenv.BindingResolver
	log      *logging.Logger
}

// New returns a Framework rooted at the given deployment directory.
func New(root string, opts Options) *Framework {
	major, minor := opts.PythonMajor, opts.PythonMinor
	if major == 0 {
		major, minor = DefaultPythonMajor, DefaultPythonMinor
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewDefaultLogger()
	}
	return &Framework{
		root:     root,
		major:    major,
		minor:    minor,
		resolver: opts.Resolver,
		log:      log,
	}
}

// Init activates the vendored packages against the real process
// environment. Something similar to what virtualenv does happens here:
// the vendor tree's binaries and site-packages are spliced onto the
// process search paths before anything imports the bindings.
func (f *Framework) Init() error {
	f.log.Debug().Str("root", f.root).Msg("initializing unrealqt framework")

	if m, err := LoadManifest(f.root); err == nil {
		f.log.Debug().Str("name", m.Name).Str("version", m.Version).Msg("loaded framework manifest")
	}

	pname, err := platform.Current()
	if err != nil {
		return err
	}

	state := pyenv.FromProcess(pname)
	resolver := f.resolver
	if resolver == nil {
		resolver = pyenv.PathResolver{Path: state.ModulePath}
	}

	err = pyenv.Activate(state, pyenv.Config{
		FrameworkRoot: f.root,
		Platform:      pname,
		PythonMajor:   f.major,
		PythonMinor:   f.minor,
		Resolver:      resolver,
		Logger:        f.log,
	})
	if err != nil {
		return err
	}
	return pyenv.Apply(state)
}

// Destroy tears the framework down. Activation is not undone; the host
// process is going away anyway.
func (f *Framework) Destroy() {
	f.log.Debug().Str("root", f.root).Msg("destroying unrealqt framework")
}
