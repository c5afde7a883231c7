package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aceguide/internal/guide"
)

// Palette is a complete set of colours for one theme.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Info      color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
}

// Violet is the default purple-on-navy palette.
var Violet = Palette{
	Primary:   lipgloss.Color("#8B5CF6"), // Vivid Purple
	Secondary: lipgloss.Color("#6366F1"), // Indigo
	Accent:    lipgloss.Color("#EC4899"), // Pink
	Success:   lipgloss.Color("#22C55E"), // Green
	Warning:   lipgloss.Color("#EAB308"), // Yellow
	Info:      lipgloss.Color("#3B82F6"), // Blue
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgDark:    lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E1B4B"), // Indigo Night
	Border:    lipgloss.Color("#4C1D95"), // Deep Purple
}

// Midnight is a low-contrast blue palette for dim rooms.
var Midnight = Palette{
	Primary:   lipgloss.Color("#60A5FA"),
	Secondary: lipgloss.Color("#818CF8"),
	Accent:    lipgloss.Color("#F472B6"),
	Success:   lipgloss.Color("#4ADE80"),
	Warning:   lipgloss.Color("#FACC15"),
	Info:      lipgloss.Color("#38BDF8"),
	Error:     lipgloss.Color("#FB7185"),
	Text:      lipgloss.Color("#E2E8F0"),
	TextDim:   lipgloss.Color("#64748B"),
	BgDark:    lipgloss.Color("#020617"),
	BgCard:    lipgloss.Color("#0F172A"),
	Border:    lipgloss.Color("#1E293B"),
}

// Clinical is a teal palette.
var Clinical = Palette{
	Primary:   lipgloss.Color("#2DD4BF"),
	Secondary: lipgloss.Color("#38BDF8"),
	Accent:    lipgloss.Color("#FBBF24"),
	Success:   lipgloss.Color("#4ADE80"),
	Warning:   lipgloss.Color("#FBBF24"),
	Info:      lipgloss.Color("#7DD3FC"),
	Error:     lipgloss.Color("#F87171"),
	Text:      lipgloss.Color("#F0FDFA"),
	TextDim:   lipgloss.Color("#94A3B8"),
	BgDark:    lipgloss.Color("#042F2E"),
	BgCard:    lipgloss.Color("#134E4A"),
	Border:    lipgloss.Color("#115E59"),
}

// PaletteFor returns the palette of a theme, defaulting to Violet.
func PaletteFor(t guide.Theme) Palette {
	switch t {
	case guide.ThemeMidnight:
		return Midnight
	case guide.ThemeClinical:
		return Clinical
	default:
		return Violet
	}
}

// Active colours. Set through Use.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Info      color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() {
	Apply(Violet)
}

// Use activates the palette of the given theme.
func Use(t guide.Theme) {
	Apply(PaletteFor(t))
}

// Apply sets the active colours and rebuilds the shared styles.
// Call it before the program starts; it is not safe for concurrent use.
func Apply(p Palette) {
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Warning = p.Warning
	Info = p.Info
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgDark = p.BgDark
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
