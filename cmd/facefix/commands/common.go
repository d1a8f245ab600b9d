// Package commands holds the facefix subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/sanddino/facefix/pkg/config"
)

// addSelectionFlags registers the file-selection flags shared by the
// scan and fix commands.
func addSelectionFlags(cmd *cobra.Command, recursive *bool, includeDisabled *bool, excludes *[]string, policy *string) {
	cmd.Flags().BoolVarP(recursive, "recursive", "r", true, "descend into subdirectories")
	cmd.Flags().BoolVar(includeDisabled, "include-disabled", false, "also process files disabled by name or DISABLED marker")
	cmd.Flags().StringArrayVarP(excludes, "exclude", "e", nil, "exclude paths matching this pattern (repeatable)")
	cmd.Flags().StringVar(policy, "policy", "", "suffix match policy: named or generalized")
}

// applyCommonFlags folds the positional dir argument and the selection
// flags into the configuration. Flags only override file values when set.
func applyCommonFlags(cmd *cobra.Command, cfg *config.Config, args []string, recursive, includeDisabled bool, excludes []string, policy string) {
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Recursive = recursive
	}
	if includeDisabled {
		cfg.ProcessDisabled = true
	}
	if cmd.Flags().Changed("policy") {
		cfg.MatchPolicy = policy
	}
	cfg.Exclude = append(cfg.Exclude, excludes...)
}
