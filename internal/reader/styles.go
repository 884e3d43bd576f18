package reader

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/readerstyle/internal/catalog"
	"github.com/muurk/readerstyle/internal/version"
)

// Application branding constants
const (
	AppName = "readerstyle"
)

// Terminal size fallbacks used before the first WindowSizeMsg arrives
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
	PanelColor     = lipgloss.Color("#1A1A1A") // Dark gray
)

// Common styles
var (
	TriggerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	FieldLabelStyle = lipgloss.NewStyle().
			Width(labelWidth).
			Foreground(SubtleColor)

	SelectedFieldLabelStyle = FieldLabelStyle.
				Foreground(HighlightColor).
				Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedValueStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SelectedButtonStyle = ButtonStyle.
				Background(PrimaryColor).
				Foreground(PanelColor)

	ModifiedStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// ArticleStyle returns the text style described by cfg: colours from the
// colour fields, emphasis from the font family.
func ArticleStyle(cfg catalog.Configuration) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c := cfg.FontColor.Color; c != "" {
		s = s.Foreground(lipgloss.Color(c))
	}
	if c := cfg.BackgroundColor.Color; c != "" {
		s = s.Background(lipgloss.Color(c))
	}

	switch cfg.FontFamily.Emphasis {
	case "bold":
		s = s.Bold(true)
	case "italic":
		s = s.Italic(true)
	case "underline":
		s = s.Underline(true)
	case "faint":
		s = s.Faint(true)
	}
	return s
}

// SwatchStyle returns a style that paints a colour option's own colour, or
// the plain value style for options without one.
func SwatchStyle(opt catalog.Option) lipgloss.Style {
	if opt.Color == "" {
		return ValueStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(opt.Color))
}

// GetTerminalSize returns the current terminal width and height, with fallback
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
