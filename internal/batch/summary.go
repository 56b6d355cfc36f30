package batch

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// maxSampleErrors limits how many failing rows the summary lists.
const maxSampleErrors = 10

// RowError records a failed conversion for the run summary.
type RowError struct {
	// Row is the 1-based CSV row number (the header is row 1).
	Row int

	// Value is the raw source field that failed to convert.
	Value string

	// Err is the conversion error.
	Err error
}

// Summary aggregates the outcome of a batch run.
type Summary struct {
	// Input and Output are the CSV paths as given.
	Input  string
	Output string

	// Rows is the number of data rows processed.
	Rows int

	// Converted is the number of rows with a successful conversion.
	Converted int

	// Errors lists every failing row in input order.
	Errors []RowError

	// OutputSize is the written output file size in bytes.
	OutputSize int64
}

// Print writes the human-readable run summary to w.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "Conversion summary\n")
	fmt.Fprintf(w, "  Input:     %s\n", s.Input)
	//nolint:gosec // OutputSize is always non-negative (stat of the written file)
	fmt.Fprintf(w, "  Output:    %s (%s)\n", s.Output, humanize.IBytes(uint64(max(0, s.OutputSize))))
	fmt.Fprintf(w, "  Rows:      %d\n", s.Rows)
	fmt.Fprintf(w, "  Converted: %d\n", s.Converted)
	fmt.Fprintf(w, "  Errors:    %d\n", len(s.Errors))

	if len(s.Errors) == 0 {
		return
	}

	fmt.Fprintf(w, "\nFailed rows:\n")

	for i, rowErr := range s.Errors {
		if i == maxSampleErrors {
			fmt.Fprintf(w, "  ... and %d more\n", len(s.Errors)-maxSampleErrors)

			break
		}

		fmt.Fprintf(w, "  row %d: %q: %v\n", rowErr.Row, rowErr.Value, rowErr.Err)
	}
}
