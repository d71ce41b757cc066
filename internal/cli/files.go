package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func (a *app) newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cp <src> <dst>",
		Short: "Copy a file or directory",
		Long: heredoc.Doc(`
			Copies src to dst. Directories are copied recursively and symbolic
			links are recreated rather than followed. If dst is an existing
			directory, src is copied into it.
		`),
		Args: positional(cobra.ExactArgs(2)), //nolint:mnd // src and dst
		RunE: func(_ *cobra.Command, args []string) error {
			return a.dir().Copy(args[0], args[1])
		},
	}
}

func (a *app) newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <src> <dst>",
		Short: "Move a file or directory",
		Long: heredoc.Doc(`
			Moves src to dst. If dst is an existing directory, src is moved into it.
			Moves across filesystems are done by copying and then removing src.
		`),
		Args: positional(cobra.ExactArgs(2)), //nolint:mnd // src and dst
		RunE: func(_ *cobra.Command, args []string) error {
			return a.dir().Move(args[0], args[1])
		},
	}
}

func (a *app) newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <path> <new-name>",
		Short: "Give a file or directory a new name in place",
		Args:  positional(cobra.ExactArgs(2)), //nolint:mnd // path and name
		RunE: func(_ *cobra.Command, args []string) error {
			return a.dir().Rename(args[0], args[1])
		},
	}
}

func (a *app) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>...",
		Short: "Forcefully remove files and directories",
		Long: heredoc.Doc(`
			Removes each path together with everything below it, without asking.
			Stops at the first path that does not exist or cannot be removed;
			paths removed before that stay removed.
		`),
		Args: positional(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, path := range args {
				if err := a.dir().Remove(path); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ln <target> <link>",
		Short: "Create a symbolic link",
		Args:  positional(cobra.ExactArgs(2)), //nolint:mnd // target and link
		RunE: func(_ *cobra.Command, args []string) error {
			return a.dir().Symlink(args[0], args[1])
		},
	}
}

func (a *app) newTouchCmd() *cobra.Command {
	var (
		ext   string
		count int
	)

	cmd := &cobra.Command{
		Use:   "touch <name>",
		Short: "Create one or more empty files",
		Long: heredoc.Doc(`
			Creates empty files in the current directory. With --count N the files
			are numbered: <name>1<ext> … <name>N<ext>. Existing files are left as they are.
		`),
		Example: heredoc.Doc(`
			dirkit touch notes --ext .md --count 3
		`),
		Args: positional(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.dir().Touch(args[0], ext, count)
			if err != nil {
				return err
			}

			for _, path := range paths {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&ext, "ext", "x", "", "File extension including the dot (e.g., .txt)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of files to create")

	return cmd
}
