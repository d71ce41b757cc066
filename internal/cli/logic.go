package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirkit/internal/dirsize"
)

// usageOptions holds the flags of the usage command.
type usageOptions struct {
	excludes []string
	minSize  string
	topN     int
	output   string
}

func (a *app) newUsageCmd() *cobra.Command {
	var opts usageOptions

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "usage [root]",
		Short: "Show how much space each entry of a directory takes",
		Long: heredoc.Doc(`
			Sums the size of every regular file below root (default: the current
			directory) and attributes it to the top-level entry it lives under.
			The largest entries are listed, the largest one last.
		`),
		Example: heredoc.Doc(`
			dirkit usage
			dirkit usage ~/projects --top 5
			dirkit usage . --exclude .git --min-size 1MB -o json
		`),
		Args: positional(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, opts.output) {
				return usageError(fmt.Errorf("invalid output format %q: must be one of %v", opts.output, allowedOutputs))
			}

			if opts.topN < 1 {
				return usageError(errors.New("top must be at least 1"))
			}

			minSize, err := humanize.ParseBytes(opts.minSize)
			if err != nil {
				return usageError(fmt.Errorf("invalid min-size: %w", err))
			}

			return a.usage(cmd.Context(), dirsize.UsageOptions{
				Path:     a.root(args),
				Excludes: excludes(opts.excludes),
				MinSize:  int64(minSize), //nolint:gosec // Size conversion from humanize is safe
				TopN:     opts.topN,
				Logger:   &a.log,
			}, opts.output, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addExcludeFlag(cmd.Flags(), &opts.excludes, []string{})
	cmd.Flags().IntVarP(&opts.topN, "top", "t", dirsize.DefaultTopN, "Number of entries to display (at least 1)")
	cmd.Flags().StringVar(&opts.minSize, "min-size", "0B", "Minimum file size (e.g., 1KB)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format: json or table")

	return cmd
}

// usage runs the analysis, showing progress on stderr when it is a terminal.
func (a *app) usage(ctx context.Context, options dirsize.UsageOptions, output string, stdout, stderr io.Writer) error {
	enableProgress := strings.ToLower(output) != "json" &&
		!a.debug &&
		isTerminal(stderr)

	if ctx == nil {
		ctx = context.Background()
	}

	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	report, err := dirsize.Usage(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "json":
		return PrintJSON(report, stdout)
	default:
		return PrintTable(report, stdout)
	}
}
