package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/cmd/facefix/opts"
	"github.com/sanddino/facefix/pkg/operation"
	"github.com/sanddino/facefix/pkg/status"
)

// NewCleanCmd creates a new clean command
func NewCleanCmd(ro *opts.RootOpts) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clean [dir]",
		Short: "Delete the *_backup.bak files fix left behind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "clean").Logger().WithContext(ctx)

			cfg := ro.Config
			if len(args) > 0 {
				cfg.Root = args[0]
			}
			if cfg.Root == "" {
				cfg.Root = "."
			}

			op := operation.NewCleanOperation(operation.Options{
				Config:    cfg,
				Tracker:   ro.Tracker,
				Formatter: ro.Formatter,
				UserLog:   status.NewUserLogger(ctx),
				Confirm:   confirmPrompt(yes),
			})
			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("running clean: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}
