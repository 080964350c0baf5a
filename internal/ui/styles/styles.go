package styles

import "github.com/charmbracelet/lipgloss"

// Colours of the active theme. ApplyTheme replaces them and rebuilds the
// styles below.
var (
	BackgroundColor     lipgloss.Color
	SurfaceColor        lipgloss.Color
	TextColor           lipgloss.Color
	PrimaryColor        lipgloss.Color
	SecondaryColor      lipgloss.Color
	AccentColor         lipgloss.Color
	HighlightColor      lipgloss.Color
	ProgressFillColor   lipgloss.Color
	ProgressTroughColor lipgloss.Color

	// Fixed across themes.
	ErrorColor   = lipgloss.Color("#D7263D")
	SuccessColor = lipgloss.Color("#2E8B57")
)

var (
	AppStyle      lipgloss.Style
	HeaderStyle   lipgloss.Style
	LabelStyle    lipgloss.Style
	ValueStyle    lipgloss.Style
	MutedStyle    lipgloss.Style
	PanelTitle    lipgloss.Style
	PanelBorder   lipgloss.Style
	FocusedBorder lipgloss.Style

	InputStyle        lipgloss.Style
	SelectedRowStyle  lipgloss.Style
	StarStyle         lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonActiveStyle lipgloss.Style

	ProgressFillStyle   lipgloss.Style
	ProgressTroughStyle lipgloss.Style
	MarkerStyle         lipgloss.Style

	CalendarDayStyle   lipgloss.Style
	CalendarTodayStyle lipgloss.Style
	CalendarHeadStyle  lipgloss.Style

	ErrorStyle lipgloss.Style
	HelpStyle  lipgloss.Style
)

func init() {
	if err := ApplyTheme(ThemeConfig{}); err != nil {
		panic(err)
	}
}

func rebuildStyles() {
	AppStyle = lipgloss.NewStyle().Background(BackgroundColor).Foreground(TextColor)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(SecondaryColor).Background(PrimaryColor).Padding(0, 1)
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(TextColor)
	ValueStyle = lipgloss.NewStyle().Foreground(TextColor)
	MutedStyle = lipgloss.NewStyle().Foreground(AccentColor)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(TextColor)
	PanelBorder = lipgloss.NewStyle().Foreground(AccentColor)
	FocusedBorder = lipgloss.NewStyle().Foreground(PrimaryColor)

	InputStyle = lipgloss.NewStyle().Foreground(TextColor).Background(SurfaceColor)
	SelectedRowStyle = lipgloss.NewStyle().Foreground(SecondaryColor).Background(HighlightColor)
	StarStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	ButtonStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(SecondaryColor).Background(PrimaryColor)
	ButtonActiveStyle = ButtonStyle.Background(HighlightColor).Underline(true)

	ProgressFillStyle = lipgloss.NewStyle().Foreground(ProgressFillColor)
	ProgressTroughStyle = lipgloss.NewStyle().Foreground(ProgressTroughColor)
	MarkerStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	CalendarHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	CalendarDayStyle = lipgloss.NewStyle().Foreground(TextColor)
	CalendarTodayStyle = lipgloss.NewStyle().Bold(true).Foreground(SecondaryColor).Background(PrimaryColor)

	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
	HelpStyle = lipgloss.NewStyle().Foreground(AccentColor)
}
