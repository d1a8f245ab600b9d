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

package operation

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/pkg/rewrite"
	"github.com/sanddino/facefix/pkg/scan"
	"github.com/sanddino/facefix/pkg/status"
)

// ♻️ NewRestoreOperation creates the operation that copies backup content
// back over the rewritten originals.
func NewRestoreOperation(opts Options) Operation {
	return &restoreOperation{opts: opts}
}

type restoreOperation struct {
	opts Options
}

func (op *restoreOperation) Name() string { return "restore" }

// 🏃 Execute restores every <stem>.ini from its <stem>_backup.bak sibling.
// Restore failures are contained per file.
func (op *restoreOperation) Execute(ctx context.Context) error {
	if err := op.opts.validate(); err != nil {
		return errors.Errorf("validating options: %w", err)
	}
	cfg := op.opts.Config

	scanner := scan.New(scan.Options{
		Root:      cfg.Root,
		Recursive: cfg.Recursive,
		Exclude:   cfg.Exclude,
	})
	backups, err := scanner.Backups(ctx)
	if err != nil {
		return errors.Errorf("finding backups under %s: %w", cfg.Root, err)
	}
	if len(backups) == 0 {
		op.opts.UserLog.Println("No backup files found.")
		return nil
	}

	if op.opts.Confirm != nil {
		if !op.opts.Confirm(fmt.Sprintf("Restore %d file(s) from backup?", len(backups))) {
			op.opts.UserLog.Println("Operation cancelled.")
			return nil
		}
	}

	restored := 0
	for _, b := range backups {
		target, err := restoreTarget(b.Path)
		if err == nil {
			err = copyOver(b.Path, target)
		}
		if err != nil {
			fr := status.FileResult{Path: b.RelPath, Outcome: status.OutcomeFailed, Err: err}
			op.opts.Tracker.Record(fr)
			op.opts.UserLog.LogResult(fr)
			continue
		}
		restored++
		op.opts.UserLog.Println(fmt.Sprintf("Restored '%s'", b.RelPath))
	}

	op.opts.UserLog.Println(fmt.Sprintf("Files restored: %d of %d", restored, len(backups)))
	return nil
}

// restoreTarget maps a backup path back to its original. The backup name
// drops the original extension, so look for an existing .ini sibling first
// to preserve the on-disk casing.
func restoreTarget(backupPath string) (string, error) {
	base := filepath.Base(backupPath)
	stem := strings.TrimSuffix(base, rewrite.BackupSuffix)
	if stem == base {
		return "", errors.Errorf("%s is not a backup file", backupPath)
	}
	dir := filepath.Dir(backupPath)

	want := strings.ToLower(stem + ".ini")
	entries, err := os.ReadDir(dir)
	if err == nil {
		for _, e := range entries {
			if !e.IsDir() && strings.ToLower(e.Name()) == want {
				return filepath.Join(dir, e.Name()), nil
			}
		}
	}
	return filepath.Join(dir, stem+".ini"), nil
}

// copyOver writes src's content over dst, keeping dst's mode when it exists.
func copyOver(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Errorf("reading backup: %w", err)
	}
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(dst); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(dst, data, mode); err != nil {
		return errors.Errorf("restoring %s: %w", dst, err)
	}
	return nil
}
