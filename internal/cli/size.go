package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirkit/internal/dirsize"
	"github.com/idelchi/dirkit/internal/walk"
)

func (a *app) newSizeCmd() *cobra.Command {
	var human bool

	cmd := &cobra.Command{
		Use:   "size [root]",
		Short: "Print the total size of a directory",
		Long: heredoc.Doc(`
			Prints the cumulative size in bytes of every regular file below root
			(default: the current directory). Nothing is excluded.

			With --human the size is printed as '<value> <unit>' in KB, MB or GB.
		`),
		Args: positional(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := dirsize.Total(a.root(args), walk.WithLogger(a.log))
			if err != nil {
				var partial *dirsize.PartialError
				if !errors.As(err, &partial) {
					return err
				}

				for _, e := range partial.Errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "dirkit: %v\n", e)
				}
			}

			if human {
				value, unit := dirsize.Format(total)
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", value, unit)

				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), total)

			return err
		},
	}

	cmd.Flags().BoolVarP(&human, "human", "H", false, "Print the size as '<value> <unit>'")

	return cmd
}
