package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/cmd/facefix/opts"
	"github.com/sanddino/facefix/pkg/operation"
	"github.com/sanddino/facefix/pkg/status"
)

// NewScanCmd creates a new scan command
func NewScanCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		recursive       bool
		includeDisabled bool
		policy          string
		excludes        []string
	)

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Preview ps-tN rewrites without touching any file",
		Long: `Scan enumerates eligible .ini files and previews every line the fix
command would rewrite. Nothing is written to disk.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "scan").Logger().WithContext(ctx)

			cfg := ro.Config
			applyCommonFlags(cmd, cfg, args, recursive, includeDisabled, excludes, policy)
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			op := operation.NewFixOperation(operation.Options{
				Config:    cfg,
				Tracker:   ro.Tracker,
				Formatter: ro.Formatter,
				UserLog:   status.NewUserLogger(ctx),
			}, false)
			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("running scan: %w", err)
			}
			return nil
		},
	}

	addSelectionFlags(cmd, &recursive, &includeDisabled, &excludes, &policy)
	return cmd
}
