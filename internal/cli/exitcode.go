package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/dirkit/internal/fserr"
)

// Exit codes.
const (
	// ExitSuccess is a normal exit.
	ExitSuccess = 0
	// ExitGeneral covers missing paths and any other failure.
	ExitGeneral = 1
	// ExitUsage reports invalid arguments or flags.
	ExitUsage = 2
	// ExitPermission reports insufficient permissions.
	ExitPermission = 3
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("invalid usage")

func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// positional wraps an argument validator so its failures map to ExitUsage.
func positional(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}

		return nil
	}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage), errors.Is(err, fserr.ErrInvalidArgument):
		return ExitUsage
	case errors.Is(err, fserr.ErrPermission):
		return ExitPermission
	default:
		return ExitGeneral
	}
}
