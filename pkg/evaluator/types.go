// Package evaluator runs the walk, score and rank pipeline over a tree of
// algorithm result folders.
package evaluator

import (
	"time"

	"github.com/ccollicutt/batteval/pkg/scorer"
)

// AlgorithmResult is the aggregated score of one algorithm folder.
type AlgorithmResult struct {
	// Path is the folder as discovered under the root.
	Path string

	// RelPath is Path relative to the evaluation root.
	RelPath string

	// Error is the sum of the per-file error counts.
	Error int

	// Model, Video and Exclusions are the summed raw counts.
	Model      int
	Video      int
	Exclusions int

	// Files is the number of logs scored.
	Files int

	// FileScores holds each file's breakdown, in scoring order.
	FileScores []scorer.FileScore
}

// add folds one file's score into the folder total.
func (r *AlgorithmResult) add(s scorer.FileScore) {
	r.Error += s.Error
	r.Model += s.ModelCount
	r.Video += s.VideoCount
	r.Exclusions += s.Exclusions
	r.Files++
	r.FileScores = append(r.FileScores, s)
}

// Result is the outcome of one evaluation run.
type Result struct {
	// Results are the algorithm folders ranked by ascending absolute error.
	Results []AlgorithmResult

	// Metadata provides context about the run.
	Metadata Metadata
}

// Metadata provides context about an evaluation run.
type Metadata struct {
	Root                    string
	MinTimeBetweenBatteries int
	ErrorPolicy             string

	// Counts are of distinct paths; a file under nested algorithm folders
	// is scored for each but counted once.
	FoldersEvaluated int
	FoldersSkipped   int
	FilesScored      int
	FilesExcluded    int
	FilesSkipped     int

	StartTime time.Time
	EndTime   time.Time
}

// TotalError returns the summed error across all folders.
func (r *Result) TotalError() int {
	total := 0
	for _, a := range r.Results {
		total += a.Error
	}
	return total
}

// Best returns the lowest-error folder, or false when nothing was evaluated.
func (r *Result) Best() (AlgorithmResult, bool) {
	if len(r.Results) == 0 {
		return AlgorithmResult{}, false
	}
	return r.Results[0], true
}
