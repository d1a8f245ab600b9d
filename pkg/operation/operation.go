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

// Package operation provides the batch operations facefix runs over a mod tree.
package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/pkg/config"
	"github.com/sanddino/facefix/pkg/status"
)

// 🎯 Operation is a batch operation over the configured tree.
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains shared dependencies for operations.
type Options struct {
	// Config is the run configuration
	Config *config.Config
	// Tracker aggregates per-file results
	Tracker *status.Tracker
	// Formatter renders preview and summary lines
	Formatter *status.Formatter
	// UserLog emits user-facing feedback
	UserLog *status.UserLogger
	// Confirm asks the user before applying changes; nil auto-confirms
	Confirm func(prompt string) bool
}

// validate checks that the required dependencies are present.
func (o Options) validate() error {
	if o.Config == nil {
		return errors.New("config is required")
	}
	if o.Tracker == nil {
		return errors.New("tracker is required")
	}
	if o.Formatter == nil {
		return errors.New("formatter is required")
	}
	if o.UserLog == nil {
		return errors.New("user logger is required")
	}
	return nil
}
