// Copyright 2025 Sanddino
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rewrite implements the line rewrite engine that turns ps-tN face
// texture overrides into this = assignments.
package rewrite

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DisabledMarker excludes a file from processing at the content level unless
// disabled processing is explicitly requested.
const DisabledMarker = "DISABLED"

// BackupSuffix is appended to a file's stem to form its backup sibling.
const BackupSuffix = "_backup.bak"

// Match records one rewritten line.
type Match struct {
	Line int    // 1-based line number
	Old  string // original line, line ending stripped
	New  string // rewritten line, line ending stripped
}

// Options control how ProcessFile treats a single file.
type Options struct {
	MakeBackup      bool // copy the original aside before overwriting
	ApplyChanges    bool // write the rewritten content back to disk
	ProcessDisabled bool // process files carrying the DISABLED marker
}

// Result is the outcome of processing one file.
type Result struct {
	Path       string
	Changed    bool
	Disabled   bool // the DISABLED marker blocked processing
	Matches    []Match
	BackupPath string // set when a backup was written
}

// Engine rewrites matching lines in .ini files.
type Engine struct {
	pattern *regexp.Regexp
}

// New creates an engine for the given match policy.
func New(policy MatchPolicy) (*Engine, error) {
	pattern, err := Compile(policy)
	if err != nil {
		return nil, errors.Errorf("compiling line pattern: %w", err)
	}
	return &Engine{pattern: pattern}, nil
}

// BackupPath returns the backup sibling for path, replacing its extension
// with the backup suffix.
func BackupPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + BackupSuffix
}

// Rewrite scans content line by line and rewrites every matching line to
// "<indent>this = <resource>". Non-matching lines pass through
// byte-for-byte; rewritten lines always end in a bare newline.
func (e *Engine) Rewrite(content string) (string, []Match) {
	var (
		b       strings.Builder
		matches []Match
	)
	b.Grow(len(content))

	lineNo := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		if line == "" {
			// SplitAfter yields a trailing empty element when the content
			// ends in a newline.
			continue
		}
		lineNo++

		stripped := strings.TrimRight(line, "\r\n")
		m := e.pattern.FindStringSubmatch(stripped)
		if m == nil {
			b.WriteString(line)
			continue
		}

		rewritten := m[1] + "this = " + m[2]
		b.WriteString(rewritten)
		b.WriteString("\n")
		matches = append(matches, Match{Line: lineNo, Old: stripped, New: rewritten})
	}

	return b.String(), matches
}

// ProcessFile reads path, rewrites matching lines and, depending on opts,
// backs the file up and writes the result back. A file whose content carries
// the DISABLED marker is left untouched unless opts.ProcessDisabled is set.
// When nothing matches the file is never opened for writing.
func (e *Engine) ProcessFile(ctx context.Context, path string, opts Options) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, errors.Errorf("reading %s: content is not valid UTF-8", path)
	}
	content := string(data)

	res := &Result{Path: path}

	if !opts.ProcessDisabled && strings.Contains(content, DisabledMarker) {
		logger.Debug().Str("path", path).Msg("file carries DISABLED marker, skipping")
		res.Disabled = true
		return res, nil
	}

	rewritten, matches := e.Rewrite(content)
	if len(matches) == 0 {
		return res, nil
	}
	res.Changed = true
	res.Matches = matches

	if !opts.ApplyChanges {
		return res, nil
	}

	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	if opts.MakeBackup {
		backupPath := BackupPath(path)
		if err := os.WriteFile(backupPath, data, mode); err != nil {
			return nil, errors.Errorf("writing backup %s: %w", backupPath, err)
		}
		res.BackupPath = backupPath
		logger.Debug().Str("path", path).Str("backup", backupPath).Msg("backup written")
	}

	if err := os.WriteFile(path, []byte(rewritten), mode); err != nil {
		return nil, errors.Errorf("writing %s: %w", path, err)
	}
	logger.Debug().Str("path", path).Int("lines", len(matches)).Msg("file rewritten")

	return res, nil
}
