// Package cli provides the command-line interface for unrealqt-doctor,
// the diagnostic companion to the framework plugin. The plugin itself has
// no CLI; the host drives it through its lifecycle hooks.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/GPLgithub/tk-framework-unrealqt/internal/logging"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/platform"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/version"
)

var (
	// Global flags
	verbose bool

	// Global logger
	logger *logging.Logger
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unrealqt-doctor",
		Short: "Inspect unrealqt vendor trees and activation",
		Long: `unrealqt-doctor ` + version.Version + `
Diagnostic tool for the unrealqt framework. Resolves vendor tree paths
for a platform and interpreter version, and renders the activation as a
shell script, without mutating the calling process.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultLogger()
			if verbose {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newActivateCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// resolvePlatform validates a --platform flag value, or detects the
// running platform when the flag is empty.
func resolvePlatform(flag string) (string, error) {
	if flag == "" {
		return platform.Current()
	}
	switch flag {
	case platform.OSX, platform.Linux, platform.Windows:
		return flag, nil
	}
	return "", fmt.Errorf("unknown platform %q, expected osx, linux or windows", flag)
}

// parsePythonVersion splits a "major.minor" flag value.
func parsePythonVersion(s string) (int, int, error) {
	majorStr, minorStr, ok := strings.Cut(s, ".")
	if !ok {
		return 0, 0, fmt.Errorf("invalid python version %q, expected major.minor", s)
	}
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid python version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid python version %q: %w", s, err)
	}
	return major, minor, nil
}
