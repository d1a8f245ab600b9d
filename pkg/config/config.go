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

// Package config holds the run configuration and its file loaders.
package config

import (
	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/pkg/rewrite"
)

// 📚 Config represents the complete run configuration. Values are decided
// once at startup (file plus flag overrides) and passed explicitly into the
// components that need them.
type Config struct {
	Root            string   `json:"root,omitempty" yaml:"root,omitempty"`
	Recursive       bool     `json:"recursive" yaml:"recursive"`
	ProcessDisabled bool     `json:"process_disabled,omitempty" yaml:"process_disabled,omitempty"`
	Backup          bool     `json:"backup" yaml:"backup"`
	Exclude         []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	MatchPolicy     string   `json:"match_policy,omitempty" yaml:"match_policy,omitempty"`
	Jobs            int      `json:"jobs,omitempty" yaml:"jobs,omitempty"`
	NoColor         bool     `json:"no_color,omitempty" yaml:"no_color,omitempty"`
}

// 🏭 Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Root:        ".",
		Recursive:   true,
		Backup:      true,
		MatchPolicy: string(rewrite.PolicyGeneralized),
	}
}

// ✅ Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("root directory is required")
	}
	if c.Jobs < 0 {
		return errors.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}
	switch rewrite.MatchPolicy(c.MatchPolicy) {
	case rewrite.PolicyNamed, rewrite.PolicyGeneralized, "":
	default:
		return errors.Errorf("unknown match policy %q (want %q or %q)",
			c.MatchPolicy, rewrite.PolicyNamed, rewrite.PolicyGeneralized)
	}
	return nil
}
