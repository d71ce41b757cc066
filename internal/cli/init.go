package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirkit/internal/integration"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "init [zsh|bash]",
		Short:     "Print the shell integration script",
		ValidArgs: integration.Shells,
		Long: heredoc.Doc(`
			Prints shell functions that wrap dirkit, plus tab completion.
			Add this to your shell profile:

			  eval "$(dirkit init zsh)"

			Functions: lsr (walk), dsize (size --human), du1 (usage), cpr (cp),
			mvr (mv), rn (rename), rmrf (rm), mklink (ln), touchn (touch).
		`),
		Args: positional(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "zsh"
			if len(args) > 0 {
				shell = args[0]
			}

			bin, err := integration.Binary()
			if err != nil {
				return fmt.Errorf("locating dirkit binary: %w", err)
			}

			a.log.Debug().Str("binary", bin).Str("shell", shell).Msg("rendering integration script")

			rendered, err := integration.Render(shell, bin)
			if err != nil {
				return fmt.Errorf("rendering integration script: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)

			return err
		},
	}
}
