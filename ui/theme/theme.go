package theme

// Centralized theming and styling initialization for the stopwatch UI.
// Provides palette constants and SetDark to activate a base theme and
// configure the control button styles.

import (
	tk "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets (light mode).
const (
	ColorBg       = "#f7f9fb" // app background
	ColorText     = "#1e293b"
	ColorNeutral  = "#94a3b8" // lap / reset
	ColorGo       = "#16a34a" // start
	ColorStop     = "#dc2626"
	ColorDisabled = "#e2e8f0"
	ColorFastest  = "#16a34a"
	ColorSlowest  = "#dc2626"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg      string
	Text       string
	Neutral    string
	NeutralFg  string
	Go         string
	GoFg       string
	Stop       string
	StopFg     string
	Disabled   string
	DisabledFg string
	Fastest    string
	Slowest    string
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot { return Palette(darkMode) }

// Palette resolves the colors of one mode.
func Palette(dark bool) PaletteSnapshot {
	if dark {
		return PaletteSnapshot{
			AppBg:      "#0d0d0d",
			Text:       "#ffffff",
			Neutral:    "#696969",
			NeutralFg:  "#ffffff",
			Go:         "#1b361f",
			GoFg:       "#90ee90",
			Stop:       "#3c1715",
			StopFg:     "#e33935",
			Disabled:   "#151515",
			DisabledFg: "#8b8b90",
			Fastest:    "#4bc05f",
			Slowest:    "#cc3531",
		}
	}
	return PaletteSnapshot{
		AppBg:      ColorBg,
		Text:       ColorText,
		Neutral:    ColorNeutral,
		NeutralFg:  "white",
		Go:         ColorGo,
		GoFg:       "white",
		Stop:       ColorStop,
		StopFg:     "white",
		Disabled:   ColorDisabled,
		DisabledFg: "#64748b",
		Fastest:    ColorFastest,
		Slowest:    ColorSlowest,
	}
}

// style names used with Style("go.TButton") etc.
const (
	StyleGoButton       = "go.TButton"
	StyleStopButton     = "stop.TButton"
	StyleNeutralButton  = "neutral.TButton"
	StyleDisabledButton = "disabled.TButton"
)

// internal flag for current mode
var darkMode = true

// SetDark selects the mode and applies its styles.
// Call before the view is built; existing widgets keep their colors.
func SetDark(dark bool) {
	darkMode = dark
	applyStyles(CurrentPalette())
}

// applyStyles encapsulates palette & style configuration for light/dark.
func applyStyles(p PaletteSnapshot) {
	_ = tk.ActivateTheme("azure light") // baseline metrics
	tk.App.Configure(tk.Background(p.AppBg))

	button := func(name, bg, fg string) {
		tk.StyleConfigure(name,
			tk.Background(bg),
			tk.Foreground(fg),
			tk.Padding("6p 10p"),
			tk.Borderwidth(1),
			tk.Relief("ridge"),
		)
	}
	button(StyleGoButton, p.Go, p.GoFg)
	button(StyleStopButton, p.Stop, p.StopFg)
	button(StyleNeutralButton, p.Neutral, p.NeutralFg)
	button(StyleDisabledButton, p.Disabled, p.DisabledFg)
}
