package commands

import (
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/cmd/facefix/opts"
	"github.com/sanddino/facefix/pkg/operation"
	"github.com/sanddino/facefix/pkg/status"
)

// NewFixCmd creates a new fix command
func NewFixCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		noBackup        bool
		yes             bool
		jobs            int
		includeDisabled bool
		recursive       bool
		policy          string
		excludes        []string
	)

	cmd := &cobra.Command{
		Use:   "fix [dir]",
		Short: "Preview and apply ps-tN rewrites",
		Long: `Fix scans the directory for eligible .ini files, previews every matching
line, asks for confirmation and then rewrites the files in place. A backup
sibling named <stem>_backup.bak is written before each file unless backups
are turned off.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "fix").Logger().WithContext(ctx)

			cfg := ro.Config
			applyCommonFlags(cmd, cfg, args, recursive, includeDisabled, excludes, policy)
			if noBackup {
				cfg.Backup = false
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			op := operation.NewFixOperation(operation.Options{
				Config:    cfg,
				Tracker:   ro.Tracker,
				Formatter: ro.Formatter,
				UserLog:   status.NewUserLogger(ctx),
				Confirm:   confirmPrompt(yes),
			}, true)
			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("running fix: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "do not write backup files before rewriting")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "apply without asking for confirmation")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of parallel workers for the apply phase (0 = sequential)")
	addSelectionFlags(cmd, &recursive, &includeDisabled, &excludes, &policy)
	return cmd
}

// confirmPrompt returns the interactive confirmation, or nil when the user
// pre-approved with --yes.
func confirmPrompt(yes bool) func(string) bool {
	if yes {
		return nil
	}
	return func(prompt string) bool {
		ok, err := pterm.DefaultInteractiveConfirm.WithDefaultText(prompt).Show()
		if err != nil {
			return false
		}
		return ok
	}
}
