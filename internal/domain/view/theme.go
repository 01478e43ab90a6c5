package view

// Themes is the fixed color theme palette offered by the theme selector.
// The names are shared by the Vega-Lite and Plotly continuous scales the
// dashboard page renders with.
var Themes = []string{
	"blues",
	"cividis",
	"greens",
	"inferno",
	"magma",
	"plasma",
	"reds",
	"rainbow",
	"turbo",
	"viridis",
}

// DefaultTheme is the initial selection: the first palette entry.
func DefaultTheme() string {
	return Themes[0]
}

// ValidTheme reports whether name is one of the palette entries.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
