package output

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/ccollicutt/batteval/pkg/evaluator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// TextFormatter formats reports as a ranked, human-readable listing.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		_, err := fmt.Fprintln(w, f.summaryLine(report))
		return err
	}

	fmt.Fprintln(w, f.style(headerStyle, "=== Battery Detection Evaluation ==="))
	if f.opts.Verbose {
		fmt.Fprintf(w, "Root: %s\n", report.Metadata.Root)
		fmt.Fprintf(w, "Minimum time between batteries: %d\n", report.Metadata.MinTimeBetweenBatteries)
		fmt.Fprintf(w, "Error policy: %s\n", report.Metadata.ErrorPolicy)
	}
	fmt.Fprintln(w)

	if len(report.Results) == 0 {
		fmt.Fprintln(w, "No algorithm folders found")
	}
	for i := range report.Results {
		f.formatResult(&report.Results[i], w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "---")
	fmt.Fprintln(w, f.style(summaryStyle, f.summaryLine(report)))
	if best := report.Summary.Best; best != nil {
		fmt.Fprintf(w, "Best: %s (error %d)\n", best.RelPath, best.Error)
	}
	if report.Summary.FoldersSkipped > 0 {
		fmt.Fprintf(w, "Folders skipped (unreadable): %d\n", report.Summary.FoldersSkipped)
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Files excluded: %d\n", report.Summary.FilesExcluded)
		if report.Summary.FilesSkipped > 0 {
			fmt.Fprintf(w, "Files skipped (unreadable): %d\n", report.Summary.FilesSkipped)
		}
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatResult(r *evaluator.AlgorithmResult, w io.Writer) {
	fmt.Fprintf(w, "%6d  %s\n", r.Error, r.RelPath)
	if f.opts.Verbose {
		fmt.Fprintf(w, "        model=%d video=%d excluded=%d files=%d\n",
			r.Model, r.Video, r.Exclusions, r.Files)
		for _, fs := range r.FileScores {
			name, err := filepath.Rel(r.Path, fs.Path)
			if err != nil {
				name = fs.Path
			}
			fmt.Fprintf(w, "        %6d  %s\n", fs.Error, name)
		}
	}
}

func (f *TextFormatter) summaryLine(report *Report) string {
	return fmt.Sprintf("Summary: %d folders evaluated, %d files scored, total error %d",
		report.Summary.FoldersEvaluated,
		report.Summary.FilesScored,
		report.Summary.TotalError)
}

func (f *TextFormatter) style(s lipgloss.Style, text string) string {
	if f.opts.NoColor {
		return text
	}
	return s.Render(text)
}
