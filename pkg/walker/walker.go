// Package walker finds algorithm result folders and the logs beneath them.
package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ccollicutt/batteval/pkg/config"
)

// ErrNotDirectory is returned when the evaluation root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Walker traverses a directory tree. Traversal is lexical and sequential, so
// results are deterministic for a given tree.
type Walker struct {
	isAlgorithm    FolderPredicate
	filter         FileFilter
	skipUnreadable bool
	logger         *slog.Logger
}

// Listing is the outcome of listing one algorithm folder.
type Listing struct {
	// Files are the qualifying logs, in lexical order.
	Files []string

	// Excluded are files with the right extension but an excluded name.
	Excluded []string

	// Skipped are unreadable paths passed over with SkipUnreadable set.
	Skipped []string

	// Unreadable is set when the folder itself could not be listed. Files is
	// then empty and the folder has no meaningful score.
	Unreadable bool
}

// Option configures a Walker.
type Option func(*Walker)

// WithFolderPredicate sets which directories are algorithm folders.
func WithFolderPredicate(p FolderPredicate) Option {
	return func(w *Walker) {
		if p != nil {
			w.isAlgorithm = p
		}
	}
}

// WithFileFilter sets which files are scored.
func WithFileFilter(f FileFilter) Option {
	return func(w *Walker) {
		w.filter = f
	}
}

// WithSkipUnreadable logs and skips unreadable directories instead of failing.
func WithSkipUnreadable(skip bool) Option {
	return func(w *Walker) {
		w.skipUnreadable = skip
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a Walker using the default folder names and file filter.
func New(opts ...Option) *Walker {
	w := &Walker{
		isAlgorithm: NameSet(config.DefaultAlgorithmFolders...),
		filter: FileFilter{
			Extension:         config.DefaultFileExtension,
			ExcludeSubstrings: config.DefaultExcludeSubstrings,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// FromConfig creates a Walker from a validated configuration.
func FromConfig(cfg *config.Config, opts ...Option) *Walker {
	base := []Option{
		WithFolderPredicate(NameSet(cfg.AlgorithmFolders...)),
		WithFileFilter(FileFilter{
			Extension:         cfg.FileExtension,
			ExcludeSubstrings: cfg.ExcludeSubstrings,
		}),
		WithSkipUnreadable(cfg.SkipUnreadable),
	}
	return New(append(base, opts...)...)
}

// FindFolders returns every directory under root, root included, whose name
// marks an algorithm folder. Algorithm folders nested in other algorithm
// folders are returned too.
func (w *Walker) FindFolders(ctx context.Context, root string) ([]string, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}

	var folders []string
	err := w.walk(ctx, root, func(path string, d fs.DirEntry) {
		if d.IsDir() && w.isAlgorithm(d.Name()) {
			folders = append(folders, path)
		}
	}, nil)
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// FolderFiles lists every qualifying log beneath dir at any depth. Symlinks
// to regular files are followed; symlinked directories are not.
func (w *Walker) FolderFiles(ctx context.Context, dir string) (Listing, error) {
	var l Listing
	err := w.walk(ctx, dir, func(path string, d fs.DirEntry) {
		if !w.isRegular(path, d) {
			return
		}
		name := d.Name()
		switch {
		case w.filter.Match(name):
			l.Files = append(l.Files, path)
		case filepath.Ext(name) == w.filter.Extension:
			l.Excluded = append(l.Excluded, path)
			w.logger.Debug("excluding file", "path", path)
		}
	}, func(path string) {
		l.Skipped = append(l.Skipped, path)
		if path == dir {
			l.Unreadable = true
		}
	})
	if err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (w *Walker) isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		w.logger.Debug("ignoring broken link", "path", path, "error", err)
		return false
	}
	return info.Mode().IsRegular()
}

// walk visits every entry under root. With skipUnreadable set, unreadable
// entries are reported to skip (when non-nil) and passed over.
func (w *Walker) walk(ctx context.Context, root string, visit func(path string, d fs.DirEntry), skip func(path string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if d == nil || !w.skipUnreadable {
				return fmt.Errorf("walking %s: %w", path, err)
			}
			w.logger.Warn("skipping unreadable path", "path", path, "error", err)
			if skip != nil {
				skip(path)
			}
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		visit(path, d)
		return nil
	})
}

func checkDir(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("reading root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s: %w", root, ErrNotDirectory)
	}
	return nil
}
