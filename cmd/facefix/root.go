package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/sanddino/facefix/cmd/facefix/commands"
	"github.com/sanddino/facefix/cmd/facefix/opts"
	"github.com/sanddino/facefix/pkg/config"
	"github.com/sanddino/facefix/pkg/status"
)

var (
	// Flags
	configFile string
	debug      bool
	noColor    bool
)

// NewRootCmd builds the facefix root command.
func NewRootCmd() *cobra.Command {
	ro := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "facefix",
		Short: "Rewrite ps-tN face texture overrides in mod .ini files",
		Long: `facefix scans a mod directory tree for .ini files and rewrites lines of
the form "ps-tN = Resource...Face..." to "this = Resource...", matching the
slot semantics of newer framework versions. It previews every change, backs
files up and only then applies edits.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			populated, err := newRootOpts(cmd.Context())
			if err != nil {
				return err
			}
			*ro = *populated
			return nil
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(
		commands.NewScanCmd(ro),
		commands.NewFixCmd(ro),
		commands.NewCleanCmd(ro),
		commands.NewRestoreCmd(ro),
	)
	return cmd
}

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	cfg := config.Default()
	if _, err := os.Stat(configFile); err == nil {
		loaded, err := config.LoadConfig(ctx, configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else if configFile != ".facefixrc" {
		// An explicitly requested config file has to exist.
		return nil, errors.Errorf("loading config: %w", err)
	}

	if noColor {
		cfg.NoColor = true
	}

	return &opts.RootOpts{
		Config:    cfg,
		Tracker:   status.NewTracker(),
		Formatter: status.NewFormatter(cfg.NoColor),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".facefixrc", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
