package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
)

// Color palette for the application (single source of truth)
var (
	ColorPrimary   = lipgloss.Color("#FFD700") // Gold — the star color
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorText    = lipgloss.Color("#F9FAFB") // White
	ColorTextDim = lipgloss.Color("#9CA3AF") // Light gray
)

// styleWrapper wraps a lipgloss style
type styleWrapper struct {
	style lipgloss.Style
}

// Render renders the string with the style
func (s styleWrapper) Render(str string) string {
	return s.style.Render(str)
}

// Text styles using lipgloss
var (
	Bold      = styleWrapper{lipgloss.NewStyle().Bold(true)}
	Dim       = styleWrapper{lipgloss.NewStyle().Foreground(ColorTextDim)}
	Success   = styleWrapper{lipgloss.NewStyle().Foreground(ColorSuccess)}
	Warning   = styleWrapper{lipgloss.NewStyle().Foreground(ColorWarning)}
	Error     = styleWrapper{lipgloss.NewStyle().Foreground(ColorError)}
	Primary   = styleWrapper{lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)}
	Secondary = styleWrapper{lipgloss.NewStyle().Foreground(ColorSecondary)}
)

// GetStar returns the styled star used to decorate correct answers.
func GetStar() string { return Primary.Render("*") }

// FangColorScheme returns a Fang color scheme based on the application's
// color palette.
func FangColorScheme(c lipgloss.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           ColorText,
		Title:          ColorPrimary,
		Description:    ColorTextDim,
		Codeblock:      c(lipgloss.Color("#1F2937"), lipgloss.Color("#2F2E36")),
		Program:        ColorSecondary,
		DimmedArgument: ColorMuted,
		Comment:        ColorMuted,
		Flag:           ColorSuccess,
		FlagDefault:    ColorTextDim,
		Command:        ColorPrimary,
		QuotedString:   ColorSecondary,
		Argument:       ColorText,
		Help:           ColorTextDim,
		Dash:           ColorMuted,
		ErrorHeader:    [2]color.Color{ColorText, ColorError},
		ErrorDetails:   ColorError,
	}
}

// BannerASCII is the banner printed at startup.
const BannerASCII = `
   *        Advent of Code 2020        *
  /_\    solution runner & submitter  /_\
`
