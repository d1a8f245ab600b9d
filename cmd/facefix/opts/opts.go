// Package opts holds the shared dependencies passed from the root command
// to the subcommands.
package opts

import (
	"github.com/sanddino/facefix/pkg/config"
	"github.com/sanddino/facefix/pkg/status"
)

// RootOpts contains the dependencies built once at startup.
type RootOpts struct {
	Config    *config.Config
	Tracker   *status.Tracker
	Formatter *status.Formatter
}
