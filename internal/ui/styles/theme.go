package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Corvette red - active tab, selection, headings
	Secondary lipgloss.Color // Gold - gold sponsors, totals
	Tertiary  lipgloss.Color // Silver - silver sponsors

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase     lipgloss.Color // Page background
	BgCursor   lipgloss.Color // Cursor/selection highlight
	BgLightbox lipgloss.Color // Lightbox backdrop

	// Borders
	Border      lipgloss.Color // Unselected tiles and popups
	BorderFocus lipgloss.Color // Selected tile, active thumbnail

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Heading  lipgloss.Style // Section headings
	Accent   lipgloss.Style // Highlighted values (totals, counter)
	Link     lipgloss.Style // Openable links
	Cursor   lipgloss.Style // Cursor background highlight
	Gold     lipgloss.Style
	Silver   lipgloss.Style
	Quote    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	KeyHint  lipgloss.Style // Key names in hint lines
	HintText lipgloss.Style // Descriptions in hint lines
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#e0303a"),
	Secondary: lipgloss.Color("#d4af37"),
	Tertiary:  lipgloss.Color("#b8bcc2"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	BgBase:     lipgloss.Color("#1a1a1a"),
	BgCursor:   lipgloss.Color("#3a1f22"),
	BgLightbox: lipgloss.Color("#0b0b0b"),

	Border:      lipgloss.Color("#5c5c5c"),
	BorderFocus: lipgloss.Color("#e0303a"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Heading: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Accent:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Link:    lipgloss.NewStyle().Foreground(t.Primary).Underline(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Gold:     lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Silver:   lipgloss.NewStyle().Foreground(t.Tertiary).Bold(true),
		Quote:    lipgloss.NewStyle().Foreground(t.FgMuted).Italic(true),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
		KeyHint:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		HintText: lipgloss.NewStyle().Foreground(t.FgSubtle),
	}
}
