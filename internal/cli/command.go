package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dirkit/internal/fsops"
	"github.com/idelchi/dirkit/internal/walk"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments, resolving relative paths
// against the current working directory.
func (c CLI) Execute() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	return NewRootCmd(c.version, cwd).Execute()
}

// app holds state shared by all subcommands of one invocation.
type app struct {
	workDir string
	debug   bool
	log     zerolog.Logger
}

// dir returns the helper set bound to the working directory.
func (a *app) dir() fsops.Dir {
	return fsops.Dir{WorkDir: a.workDir, Logger: a.log}
}

// root resolves the optional positional root argument.
func (a *app) root(args []string) string {
	if len(args) == 0 {
		return a.workDir
	}

	return a.dir().Resolve(args[0])
}

// NewRootCmd builds the command tree. workDir is the directory relative path
// arguments are resolved against.
func NewRootCmd(version, workDir string) *cobra.Command {
	a := &app{workDir: workDir, log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "dirkit",
		Short: "Directory walking, sizing and file helpers for the shell",
		Long: heredoc.Doc(`
			dirkit bundles the filesystem helpers of an interactive shell profile.

			It walks directory trees while pruning excluded folders, reports the
			total size of a tree, breaks down disk usage per entry, and wraps
			copy, move, rename, forced removal, symlink and file creation.

			Use 'dirkit init zsh' to load short shell functions for all of them.
		`),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	cmd.AddCommand(
		a.newWalkCmd(),
		a.newSizeCmd(),
		a.newUsageCmd(),
		a.newCopyCmd(),
		a.newMoveCmd(),
		a.newRenameCmd(),
		a.newRemoveCmd(),
		a.newLinkCmd(),
		a.newTouchCmd(),
		a.newInitCmd(),
	)

	return cmd
}

// addExcludeFlag registers the --exclude flag with the given defaults.
func addExcludeFlag(flags *pflag.FlagSet, target *[]string, defaults []string) {
	flags.StringSliceVarP(target, "exclude", "e", defaults, "Directory names to skip together with their contents")
}

// excludes builds the exclusion set from the flag value.
func excludes(names []string) walk.Excludes {
	return walk.NewExcludes(names...)
}
