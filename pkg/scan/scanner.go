// Package scan selects the .ini files eligible for rewriting.
package scan

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/pkg/rewrite"
)

// BackupPattern is always active so backup artifacts never re-enter a scan.
const BackupPattern = "*" + rewrite.BackupSuffix

// Candidate is a regular file selected for processing.
type Candidate struct {
	Path    string // filesystem path, as produced by the walk
	RelPath string // path relative to the scan root, /-separated
}

// Options configure a Scanner.
type Options struct {
	Root            string
	Recursive       bool
	ProcessDisabled bool     // include files that are disabled by name or content
	Exclude         []string // user exclusion patterns, glob or substring form
}

// Scanner walks a directory tree and applies the selection policy:
// .ini extension (case-insensitive), not excluded, not disabled.
type Scanner struct {
	opts     Options
	patterns []string
}

// New creates a scanner. The backup pattern is prepended to the user
// exclusions.
func New(opts Options) *Scanner {
	patterns := make([]string, 0, len(opts.Exclude)+1)
	patterns = append(patterns, BackupPattern)
	patterns = append(patterns, opts.Exclude...)
	return &Scanner{opts: opts, patterns: patterns}
}

// Scan returns candidate files in depth-first, top-down walk order.
// Unreadable entries are logged and skipped; only an unusable root is fatal.
func (s *Scanner) Scan(ctx context.Context) ([]Candidate, error) {
	return s.walk(ctx, func(path, rel string) bool {
		if !strings.EqualFold(filepath.Ext(path), ".ini") {
			return false
		}
		if s.excluded(rel, s.patterns) {
			return false
		}
		if !s.opts.ProcessDisabled && s.disabled(path) {
			zerolog.Ctx(ctx).Debug().Str("file", rel).Msg("disabled file skipped")
			return false
		}
		return true
	})
}

// Backups returns the backup artifacts under the root. User exclusions still
// apply, the always-on backup pattern does not.
func (s *Scanner) Backups(ctx context.Context) ([]Candidate, error) {
	return s.walk(ctx, func(path, rel string) bool {
		if !strings.HasSuffix(strings.ToLower(filepath.Base(path)), rewrite.BackupSuffix) {
			return false
		}
		return !s.excluded(rel, s.opts.Exclude)
	})
}

func (s *Scanner) walk(ctx context.Context, want func(path, rel string) bool) ([]Candidate, error) {
	logger := zerolog.Ctx(ctx)

	root := s.opts.Root
	if _, err := os.Stat(root); err != nil {
		return nil, errors.Errorf("enumerating root %s: %w", root, err)
	}

	var candidates []Candidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == root {
				return nil
			}
			if !s.opts.Recursive {
				return fs.SkipDir
			}
			if s.excluded(rel, s.patterns) {
				logger.Debug().Str("dir", rel).Msg("directory excluded")
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if want(path, rel) {
			candidates = append(candidates, Candidate{Path: path, RelPath: rel})
		}
		return nil
	})
	if err != nil {
		return candidates, errors.Errorf("walking %s: %w", root, err)
	}
	return candidates, nil
}

// excluded reports whether the normalized relative path matches any pattern.
// A pattern is tried as a doublestar glob first; when that does not match,
// the pattern minus its wildcard characters degrades to a case-insensitive
// substring test anywhere in the path.
func (s *Scanner) excluded(rel string, patterns []string) bool {
	norm := strings.ToLower(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(strings.ToLower(pattern), norm); err == nil && ok {
			return true
		}
		sub := strings.ToLower(strings.Trim(pattern, "*"))
		if sub != "" && strings.Contains(norm, sub) {
			return true
		}
	}
	return false
}

// disabled reports whether the file is disabled by filename or by content
// marker. Read errors count as not disabled, the rewrite engine surfaces
// them later.
func (s *Scanner) disabled(path string) bool {
	if strings.Contains(strings.ToLower(filepath.Base(path)), "disabled") {
		return true
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.Contains(data, []byte(rewrite.DisabledMarker))
}
