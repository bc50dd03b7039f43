// Package unrealqt ships vendored PySide/Qt distributions and tweaks the
// process environment to make them importable by apps and engines.
//
// The host drives the framework through two lifecycle hooks: Init, which
// activates the vendor tree matching the platform and interpreter
// version, and Destroy, which is a no-op.
package unrealqt

import (
	"github.com/GPLgithub/tk-framework-unrealqt/internal/framework"
)

// Options tunes a Framework beyond its deployment root.
type Options = framework.Options

// Framework is the plugin consumed by the host lifecycle.
type Framework = framework.Framework

// New returns a Framework rooted at the given deployment directory.
func New(root string, opts Options) *Framework {
	return framework.New(root, opts)
}
