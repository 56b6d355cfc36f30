// Package batch converts whole CSV tables of Kantec card numbers.
package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/paxconv/internal/config"
	"github.com/idelchi/paxconv/internal/fileutil"
	"github.com/idelchi/paxconv/internal/paxton"
)

// ErrorPrefix marks a failed conversion in the destination column.
const ErrorPrefix = "ERROR: "

// Runner converts the configured input CSV into the output CSV.
type Runner struct {
	// cfg contains runtime configuration options
	cfg *config.Config
}

// NewRunner creates a new Runner with the given configuration.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run reads the source table, converts every row, and atomically writes the
// result table. Per-row conversion failures go into the destination column
// and the summary; only structural failures (unreadable source, missing
// header, missing source column, unwritable output) abort the run.
func (r *Runner) Run() (*Summary, error) {
	header, rows, err := r.read()
	if err != nil {
		return nil, err
	}

	srcIdx := slices.Index(header, r.cfg.SourceColumn)
	if srcIdx < 0 {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrMissingColumn, r.cfg.SourceColumn, strings.Join(header, ", "))
	}

	destIdx := slices.Index(header, r.cfg.DestColumn)
	if destIdx < 0 {
		header = append(header, r.cfg.DestColumn)
		destIdx = len(header) - 1
	}

	results := r.convertRows(rows, srcIdx)

	summary := &Summary{
		Input:  r.cfg.Input,
		Output: r.cfg.Output,
		Rows:   len(rows),
	}

	for i, row := range rows {
		for len(row) <= destIdx {
			row = append(row, "")
		}

		switch res := results[i]; {
		case res.err != nil:
			row[destIdx] = ErrorPrefix + res.err.Error()

			// Data rows are numbered from 2; the header is row 1.
			summary.Errors = append(summary.Errors, RowError{Row: i + 2, Value: res.input, Err: res.err})
		default:
			row[destIdx] = res.value

			if res.value != "" {
				summary.Converted++
			}
		}

		rows[i] = row
	}

	size, err := r.write(header, rows)
	if err != nil {
		return nil, err
	}

	summary.OutputSize = size

	return summary, nil
}

// result is the per-row conversion outcome.
type result struct {
	input string
	value string
	err   error
}

// convertRows encodes every row through a bounded worker pool. Results are
// addressed by row index so output row order matches input row order.
func (r *Runner) convertRows(rows [][]string, srcIdx int) []result {
	results := make([]result, len(rows))

	group := errgroup.Group{}
	group.SetLimit(r.cfg.Parallel)

	for i, row := range rows {
		group.Go(func() error {
			raw := strings.TrimSpace(row[srcIdx])
			if raw == "" {
				// Empty source field stays empty in the output.
				return nil
			}

			value, err := paxton.Convert(raw)

			results[i] = result{input: raw, value: value, err: err}

			return nil
		})
	}

	// Workers record per-row failures in results and never return an error.
	_ = group.Wait()

	return results
}

// read loads the input CSV and splits it into header and data rows.
func (r *Runner) read() (header []string, rows [][]string, err error) {
	file, err := os.Open(r.cfg.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q: %w", r.cfg.Input, err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrNoHeader, r.cfg.Input)
	}

	return records[0], records[1:], nil
}

// write stores the converted table via a temp file and atomic rename,
// returning the output file size.
func (r *Runner) write(header []string, rows [][]string) (size int64, err error) {
	tc, err := fileutil.NewTempContext(r.cfg.Output)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	writer := csv.NewWriter(tc.TmpFile)

	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	if err := writer.WriteAll(rows); err != nil {
		return 0, fmt.Errorf("writing rows: %w", err)
	}

	const ownerReadWrite = 0o600

	if err := os.Chmod(tc.TmpName, os.FileMode(ownerReadWrite)); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, r.cfg.Output); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return fileutil.FinalizeOutput(r.cfg.Output)
}
