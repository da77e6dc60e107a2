package theme

// Gradient is a three-stop background: center, mid (the dominant tone) and
// edge.
type Gradient [3]string

// Base returns the dominant stop, used where a single color is needed.
func (g Gradient) Base() string {
	return g[1]
}

// Palette maps each semantic color role to a concrete color. Values are hex
// strings; NavBg carries an alpha channel (#RRGGBBAA).
type Palette struct {
	BgPrimary     Gradient
	BgSecondary   string
	BgCard        string
	TextPrimary   string
	TextSecondary string
	TextMuted     string
	Accent        string
	NavBg         string
	NavText       string

	// OnAccent is the text color for content drawn on Accent.
	OnAccent string
}

// AccentColor is shared by both modes.
const AccentColor = "#FFC107"

var (
	darkPalette = Palette{
		BgPrimary:     Gradient{"#1E293B", "#0B1220", "#0F172A"},
		BgSecondary:   "#1B2540",
		BgCard:        "#0F1A33",
		TextPrimary:   "#FFFFFF",
		TextSecondary: "#D1D5DB",
		TextMuted:     "#9CA3AF",
		Accent:        AccentColor,
		NavBg:         "#00000050",
		NavText:       "#F3F4F6",
		OnAccent:      "#0F172A",
	}

	lightPalette = Palette{
		BgPrimary:     Gradient{"#F8FAFC", "#E2E8F0", "#CBD5E1"},
		BgSecondary:   "#E2E8F0",
		BgCard:        "#F1F5F9",
		TextPrimary:   "#0F172A",
		TextSecondary: "#475569",
		TextMuted:     "#64748B",
		Accent:        AccentColor,
		NavBg:         "#FFFFFF80",
		NavText:       "#1E293B",
		OnAccent:      "#FFFFFF",
	}
)

// DerivePalette returns the palette for the given mode. It is pure: the
// result depends only on dark, and every role is set.
func DerivePalette(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Roles lists every role name with its value, in a stable order.
func (p Palette) Roles() []Role {
	return []Role{
		{Name: "bgPrimary", Value: p.BgPrimary.Base()},
		{Name: "bgSecondary", Value: p.BgSecondary},
		{Name: "bgCard", Value: p.BgCard},
		{Name: "textPrimary", Value: p.TextPrimary},
		{Name: "textSecondary", Value: p.TextSecondary},
		{Name: "textMuted", Value: p.TextMuted},
		{Name: "accent", Value: p.Accent},
		{Name: "navBg", Value: p.NavBg},
		{Name: "navText", Value: p.NavText},
	}
}

// Role is a named palette entry.
type Role struct {
	Name  string
	Value string
}
