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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/pkg/rewrite"
	"github.com/sanddino/facefix/pkg/scan"
	"github.com/sanddino/facefix/pkg/status"
)

// 📦 NewFixOperation creates the scan-preview-apply operation. With apply
// false it stops after the preview and writes nothing.
func NewFixOperation(opts Options, apply bool) Operation {
	return &fixOperation{opts: opts, apply: apply}
}

// 📦 fixOperation implements the fix operation
type fixOperation struct {
	opts  Options
	apply bool
}

func (op *fixOperation) Name() string {
	if op.apply {
		return "fix"
	}
	return "scan"
}

// 🏃 Execute runs the fix operation: enumerate candidates, preview every
// match, then (when applying) back up and rewrite the matched files.
func (op *fixOperation) Execute(ctx context.Context) error {
	if err := op.opts.validate(); err != nil {
		return errors.Errorf("validating options: %w", err)
	}
	cfg := op.opts.Config
	logger := zerolog.Ctx(ctx)

	engine, err := rewrite.New(rewrite.MatchPolicy(cfg.MatchPolicy))
	if err != nil {
		return errors.Errorf("creating rewrite engine: %w", err)
	}

	scanner := scan.New(scan.Options{
		Root:            cfg.Root,
		Recursive:       cfg.Recursive,
		ProcessDisabled: cfg.ProcessDisabled,
		Exclude:         cfg.Exclude,
	})
	files, err := scanner.Scan(ctx)
	if err != nil {
		return errors.Errorf("scanning %s: %w", cfg.Root, err)
	}
	if len(files) == 0 {
		op.opts.UserLog.Println("No eligible .ini files found.")
		return nil
	}
	logger.Debug().Int("files", len(files)).Str("root", cfg.Root).Msg("candidates enumerated")

	// Preview pass: dry scan every candidate, report matches, collect the
	// files that need rewriting. Failures are contained per file.
	var toModify []scan.Candidate
	for _, c := range files {
		res, err := engine.ProcessFile(ctx, c.Path, rewrite.Options{
			ProcessDisabled: cfg.ProcessDisabled,
		})
		if err != nil {
			fr := status.FileResult{Path: c.RelPath, Outcome: status.OutcomeFailed, Err: err}
			op.opts.Tracker.Record(fr)
			op.opts.UserLog.LogResult(fr)
			continue
		}
		if res.Disabled {
			op.opts.Tracker.Record(status.FileResult{Path: c.RelPath, Outcome: status.OutcomeSkipped})
			continue
		}
		if !res.Changed {
			op.opts.Tracker.Record(status.FileResult{Path: c.RelPath, Outcome: status.OutcomeUnchanged})
			continue
		}

		op.opts.UserLog.Println(op.opts.Formatter.FormatHeader(c.RelPath))
		for _, m := range res.Matches {
			op.opts.UserLog.Println(op.opts.Formatter.FormatMatch(m))
		}

		if !op.apply {
			op.opts.Tracker.Record(status.FileResult{
				Path:    c.RelPath,
				Outcome: status.OutcomeMatched,
				Matches: res.Matches,
			})
		}
		toModify = append(toModify, c)
	}

	if len(toModify) == 0 {
		op.opts.UserLog.Println("No changes needed.")
		op.opts.UserLog.Println(op.opts.Formatter.FormatSummary(op.opts.Tracker.Summary()))
		return nil
	}

	if !op.apply {
		op.opts.UserLog.Println(op.opts.Formatter.FormatSummary(op.opts.Tracker.Summary()))
		return nil
	}

	if op.opts.Confirm != nil {
		prompt := fmt.Sprintf("Apply changes to %d file(s)?", len(toModify))
		if !op.opts.Confirm(prompt) {
			op.opts.UserLog.Println("Operation cancelled.")
			return nil
		}
	}

	// Apply pass, optionally parallel across independent files.
	runner := NewRunner(cfg.Jobs)
	err = runner.Map(ctx, toModify, func(ctx context.Context, c scan.Candidate) {
		res, err := engine.ProcessFile(ctx, c.Path, rewrite.Options{
			MakeBackup:      cfg.Backup,
			ApplyChanges:    true,
			ProcessDisabled: cfg.ProcessDisabled,
		})
		var fr status.FileResult
		switch {
		case err != nil:
			fr = status.FileResult{Path: c.RelPath, Outcome: status.OutcomeFailed, Err: err}
		case res.Changed:
			fr = status.FileResult{
				Path:    c.RelPath,
				Outcome: status.OutcomeRewritten,
				Matches: res.Matches,
				Backup:  res.BackupPath,
			}
		default:
			// The preview saw matches but the apply did not. Another
			// process changed the file in between; nothing to do.
			fr = status.FileResult{Path: c.RelPath, Outcome: status.OutcomeUnchanged}
		}
		op.opts.Tracker.Record(fr)
		op.opts.UserLog.LogResult(fr)
	})
	if err != nil {
		return errors.Errorf("applying changes: %w", err)
	}

	op.opts.UserLog.Println(op.opts.Formatter.FormatSummary(op.opts.Tracker.Summary()))
	return nil
}
