package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirkit/internal/fserr"
	"github.com/idelchi/dirkit/internal/walk"
)

func (a *app) newWalkCmd() *cobra.Command {
	var (
		names []string
		depth int
	)

	cmd := &cobra.Command{
		Use:   "walk [root]",
		Short: "List every entry below a directory",
		Long: heredoc.Doc(`
			Lists every file and directory below root (default: the current directory),
			depth-first, one '<path><TAB><is-directory>' line per entry.

			Directories named in --exclude are skipped together with their contents.
			Pass --exclude "" to walk everything. Symbolic links are listed, never followed.
			Unreadable subdirectories are reported on stderr and the walk continues.
		`),
		Example: heredoc.Doc(`
			dirkit walk
			dirkit walk ~/src --exclude node_modules,.git
			dirkit walk . --depth 2
		`),
		Args: positional(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 {
				return usageError(errors.New("depth cannot be negative"))
			}

			walker := walk.New(a.root(args), excludes(names),
				walk.WithLogger(a.log),
				walk.WithMaxDepth(depth),
			)

			out := cmd.OutOrStdout()
			seen := false

			for entry, err := range walker.All() {
				if err != nil {
					if !seen && errors.Is(err, fserr.ErrNotFound) {
						return err
					}

					fmt.Fprintf(cmd.ErrOrStderr(), "dirkit: %v\n", err)

					continue
				}

				seen = true

				if _, err := fmt.Fprintf(out, "%s\t%t\n", entry.Path, entry.IsDir); err != nil {
					return err
				}
			}

			return nil
		},
	}

	addExcludeFlag(cmd.Flags(), &names, walk.DefaultExcludes)
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Maximum traversal depth (0=unlimited)")

	return cmd
}
