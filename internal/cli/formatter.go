package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirkit/internal/dirsize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs a usage report in JSON format.
func PrintJSON(report *dirsize.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs a usage report in human-readable table format.
// Entries are listed smallest first so the largest ends up next to the prompt.
func PrintTable(report *dirsize.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "\nTop entries in '%s':\t\t\n", report.Root)

	for i := len(report.Entries) - 1; i >= 0; i-- {
		entry := report.Entries[i]

		name := entry.Name
		if entry.IsDir {
			name += "/"
		}

		pct := 0.0
		if report.TotalBytes > 0 {
			pct = 100.0 * float64(entry.Size) / float64(report.TotalBytes)
		}

		fmt.Fprintf(w, "  %d) '%s'\t%s\t(%.1f%%)\n",
			i+1, name, humanize.IBytes(uint64(entry.Size)), pct) //nolint:gosec // Size is always positive
	}

	value, unit := dirsize.Format(uint64(report.TotalBytes)) //nolint:gosec // Size is always positive

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", report.FileCount)
	fmt.Fprintf(w, "Total size:\t%s %s (%d bytes)\n", value, unit, report.TotalBytes)

	if report.ErrorCount > 0 {
		fmt.Fprintf(w, "Errors:\t%d\n", report.ErrorCount)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", report.Elapsed)

	return w.Flush()
}
