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

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sanddino/facefix/pkg/scan"
)

// 🏃 Runner maps a function over candidate files, either sequentially or
// with a bounded worker pool. Each file is an independent read-modify-write
// unit, so parallel mode needs no shared state beyond the tracker.
type Runner struct {
	jobs int
}

// 🏗️ NewRunner creates a runner. jobs <= 1 means sequential.
func NewRunner(jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{jobs: jobs}
}

// 🏃 Map applies fn to every candidate. Per-file failures are contained by
// fn itself; Map only returns an error when the context is cancelled.
func (r *Runner) Map(ctx context.Context, files []scan.Candidate, fn func(ctx context.Context, c scan.Candidate)) error {
	if r.jobs == 1 {
		for _, c := range files {
			if err := ctx.Err(); err != nil {
				return errors.Errorf("operation cancelled: %w", err)
			}
			fn(ctx, c)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for _, c := range files {
		c := c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Errorf("operation cancelled: %w", err)
			}
			fn(gctx, c)
			return nil
		})
	}
	return g.Wait()
}
