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
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/pkg/scan"
	"github.com/sanddino/facefix/pkg/status"
)

// 🗑️ NewCleanOperation creates the operation that deletes backup artifacts.
func NewCleanOperation(opts Options) Operation {
	return &cleanOperation{opts: opts}
}

type cleanOperation struct {
	opts Options
}

func (op *cleanOperation) Name() string { return "clean" }

// 🏃 Execute deletes every *_backup.bak under the root. Deletion failures
// are contained per file.
func (op *cleanOperation) Execute(ctx context.Context) error {
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
		if !op.opts.Confirm(fmt.Sprintf("Delete %d backup file(s)?", len(backups))) {
			op.opts.UserLog.Println("Operation cancelled.")
			return nil
		}
	}

	removed := 0
	for _, b := range backups {
		if err := os.Remove(b.Path); err != nil {
			fr := status.FileResult{Path: b.RelPath, Outcome: status.OutcomeFailed, Err: errors.Errorf("removing backup: %w", err)}
			op.opts.Tracker.Record(fr)
			op.opts.UserLog.LogResult(fr)
			continue
		}
		removed++
		zerolog.Ctx(ctx).Debug().Str("path", b.RelPath).Msg("backup removed")
	}

	op.opts.UserLog.Println(fmt.Sprintf("Backups removed: %d of %d", removed, len(backups)))
	return nil
}
