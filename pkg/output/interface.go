package output

import (
	"context"
	"io"
)

// Formatter renders evaluation results.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name.
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds raw counts per folder and run statistics.
	Verbose bool

	// Quiet prints the summary line only.
	Quiet bool

	// NoColor disables terminal styling.
	NoColor bool
}
