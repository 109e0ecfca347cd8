// Package styles holds the lipgloss style table for the feed UI.
package styles

import (
	"charm.land/lipgloss/v2"
)

const (
	LoadingIcon string = "⟳"
	EndIcon     string = "■"
	HintIcon    string = "↓"

	BorderThin string = "│"
)

// Styles is the reusable style table shared by the feed components.
type Styles struct {
	// Reusable text styles
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style

	// Feed rows
	Row      lipgloss.Style
	RowTitle lipgloss.Style
	RowMeta  lipgloss.Style

	// Footer states
	FooterLoading lipgloss.Style
	FooterEnd     lipgloss.Style
	FooterIdle    lipgloss.Style

	// Status line at the bottom of the screen
	StatusBar lipgloss.Style

	WindowTooSmall lipgloss.Style
}

// DefaultStyles returns the stock style table.
func DefaultStyles() Styles {
	var (
		primary  = lipgloss.Color("99")
		fgBase   = lipgloss.Color("252")
		fgMuted  = lipgloss.Color("243")
		fgSubtle = lipgloss.Color("238")
		green    = lipgloss.Color("78")
		warning  = lipgloss.Color("214")
	)

	base := lipgloss.NewStyle().Foreground(fgBase)

	return Styles{
		Base:   base,
		Muted:  base.Foreground(fgMuted),
		Subtle: base.Foreground(fgSubtle),

		Row: base.
			BorderStyle(lipgloss.Border{Left: BorderThin}).
			BorderLeft(true).
			BorderForeground(fgSubtle).
			PaddingLeft(1),
		RowTitle: base.Bold(true).Foreground(primary),
		RowMeta:  base.Foreground(fgMuted),

		FooterLoading: base.Foreground(green),
		FooterEnd:     base.Foreground(warning),
		FooterIdle:    base.Foreground(fgSubtle).Italic(true),

		StatusBar: base.Foreground(fgMuted),

		WindowTooSmall: base.Foreground(warning).Bold(true),
	}
}
