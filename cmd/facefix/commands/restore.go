package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/cmd/facefix/opts"
	"github.com/sanddino/facefix/pkg/operation"
	"github.com/sanddino/facefix/pkg/status"
)

// NewRestoreCmd creates a new restore command
func NewRestoreCmd(ro *opts.RootOpts) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore [dir]",
		Short: "Restore rewritten .ini files from their backups",
		Long: `Restore copies every <stem>_backup.bak back over its <stem>.ini sibling,
undoing an earlier fix run. The backup files are kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "restore").Logger().WithContext(ctx)

			cfg := ro.Config
			if len(args) > 0 {
				cfg.Root = args[0]
			}
			if cfg.Root == "" {
				cfg.Root = "."
			}

			op := operation.NewRestoreOperation(operation.Options{
				Config:    cfg,
				Tracker:   ro.Tracker,
				Formatter: ro.Formatter,
				UserLog:   status.NewUserLogger(ctx),
				Confirm:   confirmPrompt(yes),
			})
			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("running restore: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "restore without asking for confirmation")
	return cmd
}
