package view

// countryCanon remaps league-nation names to the canonical country names
// the choropleth layer recognizes. Plain mapping data so adding an alias
// is a one-line change.
var countryCanon = map[string]string{
	"England":        "United Kingdom",
	"UK":             "United Kingdom",
	"Czech Republic": "Czechia",
	"Russia":         "Russian Federation",
}

// CanonicalCountry returns the canonical form of a country name. Names
// already canonical pass through unchanged, so the remap is idempotent.
func CanonicalCountry(name string) string {
	if canon, ok := countryCanon[name]; ok {
		return canon
	}
	return name
}
