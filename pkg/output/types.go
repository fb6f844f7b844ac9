// Package output provides formatting for evaluation results.
package output

import (
	"time"

	"github.com/ccollicutt/batteval/pkg/evaluator"
)

// Report is the complete evaluation output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Results are the ranked algorithm folders.
	Results []evaluator.AlgorithmResult

	// Metadata provides context about the run.
	Metadata Metadata
}

// Summary provides aggregate statistics.
type Summary struct {
	FoldersEvaluated int
	FoldersSkipped   int
	FilesScored      int
	FilesExcluded    int
	FilesSkipped     int
	TotalError       int

	// Best is the lowest-error folder, nil when nothing was evaluated.
	Best *evaluator.AlgorithmResult
}

// Metadata provides context about the evaluation run.
type Metadata struct {
	Root                    string
	MinTimeBetweenBatteries int
	ErrorPolicy             string
	Duration                time.Duration
}

// NewReport creates a Report from evaluation results.
func NewReport(result *evaluator.Result) *Report {
	var best *evaluator.AlgorithmResult
	if r, ok := result.Best(); ok {
		best = &r
	}

	return &Report{
		Results: result.Results,
		Summary: Summary{
			FoldersEvaluated: result.Metadata.FoldersEvaluated,
			FoldersSkipped:   result.Metadata.FoldersSkipped,
			FilesScored:      result.Metadata.FilesScored,
			FilesExcluded:    result.Metadata.FilesExcluded,
			FilesSkipped:     result.Metadata.FilesSkipped,
			TotalError:       result.TotalError(),
			Best:             best,
		},
		Metadata: Metadata{
			Root:                    result.Metadata.Root,
			MinTimeBetweenBatteries: result.Metadata.MinTimeBetweenBatteries,
			ErrorPolicy:             result.Metadata.ErrorPolicy,
			Duration:                result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
	}
}
