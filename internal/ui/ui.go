package ui

// Basic ANSI color codes (used by the logging package and report statuses).
// New code should use lipgloss styles from styles.go instead.
const (
	Reset      = "\033[0m"
	LegacyBold = "\033[1m"
	FgCyan     = "\033[36m"
	FgGreen    = "\033[32m"
	FgMagenta  = "\033[35m"
	FgYellow   = "\033[33m"
	FgRed      = "\033[31m"
)

var noColor bool

// Init configures global UI behavior from flags. Must be called before any
// colored output is produced.
func Init(disableColor bool) {
	noColor = disableColor
}

// Color wraps a string with the given ANSI code, unless colors are disabled.
func Color(s string, code string) string {
	if noColor {
		return s
	}
	return code + s + Reset
}
