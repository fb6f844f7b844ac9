package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ccollicutt/batteval/pkg/config"
	"github.com/ccollicutt/batteval/pkg/ranker"
	"github.com/ccollicutt/batteval/pkg/scorer"
	"github.com/ccollicutt/batteval/pkg/walker"
)

// ErrFolderUnreadable is returned by ScoreFolder when the folder itself could
// not be listed and unreadable paths are being skipped.
var ErrFolderUnreadable = errors.New("folder unreadable")

// folderLister is the part of walker.Walker the evaluator drives.
type folderLister interface {
	FindFolders(ctx context.Context, root string) ([]string, error)
	FolderFiles(ctx context.Context, dir string) (walker.Listing, error)
}

// Evaluator scores every algorithm folder under a root directory.
type Evaluator struct {
	cfg    *config.Config
	scorer *scorer.Scorer
	walker folderLister
	logger *slog.Logger
}

// Option configures evaluator behavior.
type Option func(*Evaluator)

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an evaluator from a validated configuration.
func New(cfg *config.Config, opts ...Option) (*Evaluator, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	s, err := scorer.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating scorer: %w", err)
	}

	e := &Evaluator{
		cfg:    cfg,
		scorer: s,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.walker = walker.FromConfig(cfg, walker.WithLogger(e.logger))
	return e, nil
}

// pathSet counts distinct paths. Nested algorithm folders list the same file
// more than once.
type pathSet map[string]struct{}

func (s pathSet) add(paths ...string) {
	for _, p := range paths {
		s[p] = struct{}{}
	}
}

// Evaluate walks cfg.Root, scores every algorithm folder and ranks them.
// With SkipUnreadable set, folders that cannot be listed are left out of the
// ranking and counted in Metadata.FoldersSkipped.
func (e *Evaluator) Evaluate(ctx context.Context) (*Result, error) {
	if e.cfg.Root == "" {
		return nil, errors.New("root path is required")
	}

	result := &Result{
		Metadata: Metadata{
			Root:                    e.cfg.Root,
			MinTimeBetweenBatteries: e.scorer.Threshold(),
			ErrorPolicy:             string(e.cfg.ErrorPolicy),
			StartTime:               time.Now(),
		},
	}

	folders, err := e.walker.FindFolders(ctx, e.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("finding algorithm folders: %w", err)
	}
	e.logger.Debug("found algorithm folders", "root", e.cfg.Root, "count", len(folders))

	scored, excluded, skipped := pathSet{}, pathSet{}, pathSet{}
	results := make([]AlgorithmResult, 0, len(folders))
	for _, dir := range folders {
		listing, err := e.walker.FolderFiles(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("listing files in %s: %w", dir, err)
		}
		if listing.Unreadable {
			e.logger.Warn("skipping unreadable folder", "path", dir)
			result.Metadata.FoldersSkipped++
			continue
		}

		r, unread, err := e.scoreFiles(ctx, dir, listing.Files)
		if err != nil {
			return nil, err
		}
		for _, s := range r.FileScores {
			scored.add(s.Path)
		}
		excluded.add(listing.Excluded...)
		skipped.add(unread...)
		results = append(results, r)
	}

	result.Results = ranker.Rank(results, func(r AlgorithmResult) int { return r.Error })
	result.Metadata.FoldersEvaluated = len(results)
	result.Metadata.FilesScored = len(scored)
	result.Metadata.FilesExcluded = len(excluded)
	result.Metadata.FilesSkipped = len(skipped)
	result.Metadata.EndTime = time.Now()

	return result, nil
}

// ScoreFolder scores a single algorithm folder.
func (e *Evaluator) ScoreFolder(ctx context.Context, dir string) (AlgorithmResult, error) {
	listing, err := e.walker.FolderFiles(ctx, dir)
	if err != nil {
		return AlgorithmResult{}, fmt.Errorf("listing files in %s: %w", dir, err)
	}
	if listing.Unreadable {
		return AlgorithmResult{}, fmt.Errorf("%s: %w", dir, ErrFolderUnreadable)
	}
	r, _, err := e.scoreFiles(ctx, dir, listing.Files)
	return r, err
}

// scoreFiles sums the scores of files under dir. It returns the files skipped
// as unreadable when SkipUnreadable is set.
func (e *Evaluator) scoreFiles(ctx context.Context, dir string, files []string) (AlgorithmResult, []string, error) {
	r := AlgorithmResult{
		Path:    dir,
		RelPath: e.relPath(dir),
	}

	var skipped []string
	for _, path := range files {
		s, err := e.scorer.ScoreFile(ctx, path)
		if err != nil {
			if !e.cfg.SkipUnreadable || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return r, skipped, fmt.Errorf("scoring %s: %w", path, err)
			}
			e.logger.Warn("skipping unreadable file", "path", path, "error", err)
			skipped = append(skipped, path)
			continue
		}
		e.logger.Debug("scored file",
			"path", path,
			"model", s.ModelCount,
			"video", s.VideoCount,
			"excluded", s.Exclusions,
			"error", s.Error)
		r.add(s)
	}

	e.logger.Debug("scored folder", "path", dir, "files", r.Files, "error", r.Error)
	return r, skipped, nil
}

func (e *Evaluator) relPath(dir string) string {
	rel, err := filepath.Rel(e.cfg.Root, dir)
	if err != nil {
		return dir
	}
	return rel
}
