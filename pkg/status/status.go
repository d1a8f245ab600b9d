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

// Package status tracks and reports per-file outcomes of a batch run.
package status

import (
	"sync"

	"github.com/sanddino/facefix/pkg/rewrite"
)

// 📊 Outcome classifies the result of processing one candidate file.
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeMatched           // file has matching lines (dry scan, nothing written)
	OutcomeRewritten         // file was rewritten on disk
	OutcomeUnchanged         // no line matched
	OutcomeSkipped           // disabled marker kept the file untouched
	OutcomeFailed            // an I/O or encoding error was contained
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeRewritten:
		return "rewritten"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult carries the outcome and diagnostic detail for one file.
// Per-file failures travel here as values instead of aborting the batch.
type FileResult struct {
	Path    string // path relative to the scan root
	Outcome Outcome
	Matches []rewrite.Match
	Backup  string // backup sibling path, when one was written
	Err     error  // cause, when Outcome is OutcomeFailed
}

// 📈 Summary aggregates a finished run.
type Summary struct {
	Scanned   int // candidate files processed
	Matched   int // files with at least one matching line
	Rewritten int // files actually modified on disk
	Skipped   int // files left untouched because of the disabled marker
	Failed    int // files skipped because of an error
}

// 🔧 Tracker collects FileResults across a run. Safe for concurrent use by
// the parallel apply phase.
type Tracker struct {
	mu      sync.Mutex
	results []FileResult
}

// 🏭 NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record adds one file result.
func (t *Tracker) Record(res FileResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, res)
}

// Results returns a copy of all recorded results in record order.
func (t *Tracker) Results() []FileResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]FileResult, len(t.results))
	copy(out, t.results)
	return out
}

// Summary computes the aggregate counts of the run so far.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{Scanned: len(t.results)}
	for _, res := range t.results {
		switch res.Outcome {
		case OutcomeMatched:
			s.Matched++
		case OutcomeRewritten:
			s.Matched++
			s.Rewritten++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeFailed:
			s.Failed++
		}
	}
	return s
}
