package output

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ccollicutt/batteval/pkg/evaluator"
	"github.com/ccollicutt/batteval/pkg/scorer"
)

func createTestReport() *Report {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return NewReport(&evaluator.Result{
		Results: []evaluator.AlgorithmResult{
			{Path: "/data/cam1/default", RelPath: "cam1/default", Error: 0, Model: 2, Video: 2, Files: 1},
			{
				Path: "/data/cam1/bayes", RelPath: "cam1/bayes", Error: 4, Model: 3, Video: 6, Exclusions: 1, Files: 2,
				FileScores: []scorer.FileScore{
					{Path: "/data/cam1/bayes/run1.txt", Error: 3},
					{Path: "/data/cam1/bayes/sub/run2.txt", Error: 1},
				},
			},
		},
		Metadata: evaluator.Metadata{
			Root:                    "/data",
			MinTimeBetweenBatteries: 30,
			ErrorPolicy:             "absolute",
			FoldersEvaluated:        2,
			FilesScored:             3,
			FilesExcluded:           1,
			StartTime:               start,
			EndTime:                 start.Add(1500 * time.Millisecond),
		},
	})
}

func TestNewTextFormatter(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	if f == nil {
		t.Fatal("NewTextFormatter() returned nil")
	}
	if f.Name() != "text" {
		t.Errorf("Name() = %q, want %q", f.Name(), "text")
	}
}

func TestNewReport(t *testing.T) {
	report := createTestReport()

	if report.Summary.TotalError != 4 {
		t.Errorf("TotalError = %d, want 4", report.Summary.TotalError)
	}
	if report.Summary.FilesScored != 3 {
		t.Errorf("FilesScored = %d, want 3", report.Summary.FilesScored)
	}
	if report.Metadata.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, want 1.5s", report.Metadata.Duration)
	}
	if report.Summary.Best == nil || report.Summary.Best.RelPath != "cam1/default" {
		t.Errorf("Best = %+v, want cam1/default", report.Summary.Best)
	}
}

func TestNewReport_NoResults(t *testing.T) {
	report := NewReport(&evaluator.Result{})
	if report.Summary.Best != nil {
		t.Errorf("Best = %+v, want nil", report.Summary.Best)
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter(FormatOptions{NoColor: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Battery Detection Evaluation") {
		t.Error("Output missing header")
	}

	first := strings.Index(output, "     0  cam1/default\n")
	second := strings.Index(output, "     4  cam1/bayes\n")
	if first < 0 || second < 0 {
		t.Fatalf("Output missing result lines:\n%s", output)
	}
	if first > second {
		t.Error("Results not printed in ranked order")
	}

	if !strings.Contains(output, "2 folders evaluated, 3 files scored, total error 4") {
		t.Errorf("Output missing summary:\n%s", output)
	}
	if !strings.Contains(output, "Best: cam1/default (error 0)\n") {
		t.Errorf("Output missing best folder:\n%s", output)
	}
	if strings.Contains(output, "model=") || strings.Contains(output, "run1.txt") {
		t.Error("Non-verbose output includes per-folder detail")
	}
	if strings.Contains(output, "\x1b[") {
		t.Error("NoColor output contains escape sequences")
	}
}

func TestTextFormatter_Format_Empty(t *testing.T) {
	f := NewTextFormatter(FormatOptions{NoColor: true})
	report := &Report{}

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "No algorithm folders found") {
		t.Error("Output missing empty notice")
	}
	if !strings.Contains(output, "0 folders evaluated") {
		t.Error("Output missing summary")
	}
}

func TestTextFormatter_Format_Quiet(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Quiet: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 1 {
		t.Errorf("Quiet output has %d lines, want 1", len(lines))
	}
	if !strings.HasPrefix(output, "Summary:") {
		t.Errorf("Quiet output = %q", output)
	}
}

func TestTextFormatter_Format_Verbose(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Verbose: true, NoColor: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Root: /data",
		"Minimum time between batteries: 30",
		"Error policy: absolute",
		"model=3 video=6 excluded=1 files=2",
		"             3  run1.txt\n",
		"             1  " + filepath.Join("sub", "run2.txt") + "\n",
		"Files excluded: 1",
		"Duration: 1.5s",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Verbose output missing %q", want)
		}
	}
	if strings.Contains(output, "skipped") {
		t.Error("Verbose output reports skipped files when none were skipped")
	}
}

func TestTextFormatter_Format_FoldersSkipped(t *testing.T) {
	f := NewTextFormatter(FormatOptions{NoColor: true})
	report := createTestReport()
	report.Summary.FoldersSkipped = 2

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Folders skipped (unreadable): 2") {
		t.Errorf("Output missing skipped folders:\n%s", buf.String())
	}
}

func TestTextFormatter_Format_Color(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Result lines stay plain so they can be piped into other tools
	if !strings.Contains(buf.String(), "     4  cam1/bayes\n") {
		t.Errorf("Output missing plain result line:\n%s", buf.String())
	}
}
