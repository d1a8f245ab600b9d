package status

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/sanddino/facefix/pkg/rewrite"
)

// Formatter renders preview lines and summaries for console output.
// Highlighting is decided once at construction and passed in explicitly, so
// there is no global color state to flip at runtime.
type Formatter struct {
	red    *color.Color
	green  *color.Color
	slotRe *regexp.Regexp
}

// NewFormatter creates a formatter. With noColor set, all output is plain
// text regardless of terminal detection.
func NewFormatter(noColor bool) *Formatter {
	f := &Formatter{
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
		slotRe: regexp.MustCompile(`(?i)ps-t\d+`),
	}
	if noColor {
		f.red.DisableColor()
		f.green.DisableColor()
	} else {
		f.red.EnableColor()
		f.green.EnableColor()
	}
	return f
}

// FormatHeader renders the per-file preview header.
func (f *Formatter) FormatHeader(path string) string {
	return fmt.Sprintf("Preview changes for '%s':", path)
}

// FormatMatch renders one rewritten line, highlighting the ps-tN token in
// the old text and the this keyword in the new text.
func (f *Formatter) FormatMatch(m rewrite.Match) string {
	oldLine := f.slotRe.ReplaceAllStringFunc(m.Old, func(s string) string {
		return f.red.Sprint(s)
	})
	newLine := strings.Replace(m.New, "this", f.green.Sprint("this"), 1)
	return fmt.Sprintf("  Line %d: '%s' → '%s'", m.Line, oldLine, newLine)
}

// FormatSummary renders the final counts of a run.
func (f *Formatter) FormatSummary(s Summary) string {
	out := fmt.Sprintf("Files scanned: %d, files modified: %d", s.Scanned, s.Rewritten)
	if s.Skipped > 0 {
		out += fmt.Sprintf(", skipped: %d", s.Skipped)
	}
	if s.Failed > 0 {
		out += fmt.Sprintf(", failed: %d", s.Failed)
	}
	return out
}

// FormatError renders a one-line diagnostic for a contained per-file error.
func (f *Formatter) FormatError(res FileResult) string {
	return fmt.Sprintf("error processing '%s': %v", res.Path, res.Err)
}
