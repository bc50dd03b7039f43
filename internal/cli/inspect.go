package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GPLgithub/tk-framework-unrealqt/internal/framework"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/pathutil"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/vendortree"
)

// newInspectCmd creates the 'inspect' command.
func newInspectCmd() *cobra.Command {
	var (
		root          string
		platformFlag  string
		pythonVersion string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Resolve vendor tree paths without mutating anything",
		Long: `Resolve the vendor tree paths the framework would activate for a
deployment root, platform and interpreter version, and report what is
actually on disk.

Examples:
  # Inspect the tree for the running platform
  unrealqt-doctor inspect --root /opt/app

  # Inspect a linux tree for Python 3.10 from any machine
  unrealqt-doctor inspect --root /opt/app --platform linux --python 3.10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			major, minor, err := parsePythonVersion(pythonVersion)
			if err != nil {
				return err
			}

			pname, err := resolvePlatform(platformFlag)
			if err != nil {
				return err
			}

			resolvedRoot, err := pathutil.ResolveAbsolutePath(root)
			if err != nil {
				return fmt.Errorf("failed to resolve root %s: %w", root, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Root:          %s\n", resolvedRoot)
			fmt.Fprintf(out, "Platform:      %s\n", pname)
			fmt.Fprintf(out, "Python:        %d.%d\n", major, minor)

			if m, err := framework.LoadManifest(resolvedRoot); err == nil {
				fmt.Fprintf(out, "Framework:     %s %s\n", m.Name, m.Version)
				if !m.Supports(pname) {
					fmt.Fprintf(out, "Warning:       manifest does not list platform %s\n", pname)
				}
			}

			basePath := vendortree.BasePath(resolvedRoot, pname, major, minor)
			fmt.Fprintf(out, "Base path:     %s\n", basePath)
			fmt.Fprintf(out, "Bin folder:    %s\n", filepath.Join(basePath, vendortree.BinFolder(pname)))

			sitePath, err := vendortree.SitePackages(basePath, pname, major)
			if err != nil {
				var notFound *vendortree.VendorLibraryNotFoundError
				if errors.As(err, &notFound) {
					fmt.Fprintf(out, "Site packages: MISSING - no python%d.* folder, found %v\n",
						notFound.Major, notFound.Entries)
				} else {
					fmt.Fprintf(out, "Site packages: ERROR - %v\n", err)
				}
				return err
			}
			fmt.Fprintf(out, "Site packages: %s\n", sitePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Framework deployment root")
	cmd.Flags().StringVar(&platformFlag, "platform", "", "Canonical platform name (osx, linux, windows; default: detect)")
	cmd.Flags().StringVar(&pythonVersion, "python", "3.9", "Target interpreter version (major.minor)")

	return cmd
}
