package timer

import "github.com/charmbracelet/lipgloss"

type palette struct {
	background lipgloss.Color
	foreground lipgloss.Color
	muted      lipgloss.Color
	subtle     lipgloss.Color
	warning    lipgloss.Color
}

var (
	lightPalette = palette{
		background: lipgloss.Color("#EFF1F5"),
		foreground: lipgloss.Color("#4C4F69"),
		muted:      lipgloss.Color("#9CA0B0"),
		subtle:     lipgloss.Color("#6C6F85"),
		warning:    lipgloss.Color("#D20F39"),
	}

	darkPalette = palette{
		background: lipgloss.Color("#1E1E2E"),
		foreground: lipgloss.Color("#CDD6F4"),
		muted:      lipgloss.Color("#585B70"),
		subtle:     lipgloss.Color("#A6ADC8"),
		warning:    lipgloss.Color("#F38BA8"),
	}
)

type styles struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Time     lipgloss.Style
	Control  lipgloss.Style
	Disabled lipgloss.Style
	Hint     lipgloss.Style
	LapNum   lipgloss.Style
	Interval lipgloss.Style
	Total    lipgloss.Style
	Status   lipgloss.Style
	On       lipgloss.Style
	Off      lipgloss.Style
}

func newStyles(dark bool, accent string) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	accentColor := lipgloss.Color(accent)

	return styles{
		Base: lipgloss.NewStyle().
			Padding(1, padding).
			Background(p.background).
			Foreground(p.foreground),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.foreground),
		Time:     lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		Control:  lipgloss.NewStyle().Foreground(p.foreground).MarginRight(2),
		Disabled: lipgloss.NewStyle().Foreground(p.muted).MarginRight(2),
		Hint:     lipgloss.NewStyle().Foreground(p.subtle),
		LapNum:   lipgloss.NewStyle().Foreground(p.subtle).Width(8),
		Interval: lipgloss.NewStyle().Foreground(accentColor).Width(12),
		Total:    lipgloss.NewStyle().Foreground(p.foreground),
		Status:   lipgloss.NewStyle().Foreground(p.warning),
		On:       lipgloss.NewStyle().Foreground(accentColor),
		Off:      lipgloss.NewStyle().Foreground(p.muted),
	}
}
