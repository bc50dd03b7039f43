package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GPLgithub/tk-framework-unrealqt/internal/pathutil"
	"github.com/GPLgithub/tk-framework-unrealqt/internal/pyenv"
)

// newActivateCmd creates the 'activate' command.
func newActivateCmd() *cobra.Command {
	var (
		root          string
		platformFlag  string
		pythonVersion string
		shell         string
	)

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Print the activation as shell export lines",
		Long: `Run the activation sequence against a snapshot of the current
environment and print the result as shell export lines. The calling
process is never mutated; eval the output to activate a shell.

Examples:
  # POSIX shells
  eval "$(unrealqt-doctor activate --root /opt/app --python 3.10)"

  # PowerShell
  unrealqt-doctor activate --root C:\app --shell powershell | Invoke-Expression`,
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

			state := pyenv.FromProcess(pname)
			err = pyenv.Activate(state, pyenv.Config{
				FrameworkRoot: resolvedRoot,
				Platform:      pname,
				PythonMajor:   major,
				PythonMinor:   minor,
				// No probe: the point of the command is to print the
				// mutations, even when bindings already resolve here.
				Logger: logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			exports := [][2]string{
				{pyenv.EnvVirtualEnv, state.Getenv(pyenv.EnvVirtualEnv)},
				{pyenv.EnvPath, state.Getenv(pyenv.EnvPath)},
				{pyenv.EnvPythonPath, strings.Join(state.ModulePath, state.ListSeparator())},
			}
			for _, kv := range exports {
				switch shell {
				case "powershell":
					fmt.Fprintf(out, "$env:%s = \"%s\"\n", kv[0], kv[1])
				default:
					fmt.Fprintf(out, "export %s=%q\n", kv[0], kv[1])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Framework deployment root")
	cmd.Flags().StringVar(&platformFlag, "platform", "", "Canonical platform name (osx, linux, windows; default: detect)")
	cmd.Flags().StringVar(&pythonVersion, "python", "3.9", "Target interpreter version (major.minor)")
	cmd.Flags().StringVar(&shell, "shell", "sh", "Output flavor: sh or powershell")

	return cmd
}
