package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about file outcomes,
// mirrored into zerolog for debugging.
type UserLogger struct {
	log zerolog.Logger
}

// 🎯 NewUserLogger creates a new user logger from the context logger.
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogResult logs a file outcome with appropriate prefix and formatting.
func (u *UserLogger) LogResult(res FileResult) {
	var action string
	var printer *pterm.PrefixPrinter
	switch res.Outcome {
	case OutcomeMatched:
		action = "Would rewrite"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "🔍"})
	case OutcomeRewritten:
		action = "Rewrote"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case OutcomeUnchanged:
		action = "Unchanged"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "👍"})
	case OutcomeSkipped:
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case OutcomeFailed:
		action = "Failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	default:
		action = "Processed"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "ℹ️"})
	}

	msg := fmt.Sprintf("%s %s", action, res.Path)
	if len(res.Matches) > 0 {
		msg += fmt.Sprintf(" (%d line(s))", len(res.Matches))
	}
	if res.Backup != "" {
		msg += fmt.Sprintf(" (backup: %s)", res.Backup)
	}

	if res.Err != nil {
		printer.Println(msg)
		pterm.Error.Println(res.Err)
		u.log.Error().Err(res.Err).Str("path", res.Path).Msg(msg)
		return
	}
	printer.Println(msg)
	u.log.Info().Str("path", res.Path).Str("outcome", res.Outcome.String()).Msg(msg)
}

// 💬 Println writes a plain user-facing line.
func (u *UserLogger) Println(msg string) {
	pterm.Println(msg)
	u.log.Info().Msg(msg)
}
