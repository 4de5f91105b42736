package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/SebastiaanZ/aoc-2020/internal/ui"
)

// Logger is a tiny opt-in logger used across internal packages.
// When Writer is nil, logging is disabled.
//
// The output format is:
//
//	<ColoredPrefix> day=<day> <formattedMessage>\n
//
// where <day> is trimmed and defaults to "(unknown)".
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string

	// OmitDay controls whether the day field is written.
	// When false (default), output includes: "day=<day>".
	OmitDay bool
}

func (l *Logger) SetWriter(w io.Writer) { l.Writer = w }

func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

func (l *Logger) Logf(day string, format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "Log:"
	}
	if l.PrefixColor != "" {
		prefix = ui.Color(prefix, l.PrefixColor)
	}
	msg := fmt.Sprintf(format, args...)
	if l.OmitDay {
		fmt.Fprintf(l.Writer, "%s %s\n", prefix, msg)
		return
	}

	d := strings.TrimSpace(day)
	if d == "" {
		d = "(unknown)"
	}
	fmt.Fprintf(l.Writer, "%s day=%s %s\n", prefix, d, msg)
}

// Warnf writes a warning line regardless of the day field. Warnings share the
// writer with regular logs; they exist so that non-fatal conditions (stale
// cache file, discarded changes) stand out in the output.
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	prefix := ui.Color("Warning:", ui.FgYellow)
	fmt.Fprintf(l.Writer, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
