package model

// Display colours per source. Keys are the API's lowercase source names.
var sourceColors = map[string]string{
	"biomass": "#399735",
	"nuclear": "#AFE634",
	"hydro":   "#2980b9",
	"wind":    "#77a2f8",
	"solar":   "#FFC90E",
	"coal":    "#2c3e50",
	"gas":     "#db96ad",
	"imports": "#C8BFE7",
	"other":   "#5d4037",
}

// Terminal glyphs per source.
var sourceIcons = map[string]string{
	"solar":   "☀",
	"wind":    "≋",
	"hydro":   "≈",
	"nuclear": "⚛",
	"gas":     "▲",
	"coal":    "■",
	"imports": "⇄",
	"biomass": "❦",
	"other":   "▣",
}

// cleanSources is the low-carbon set, in the order the operator publishes it.
var cleanSources = []string{"biomass", "nuclear", "hydro", "wind", "solar"}

const (
	// DefaultColor is used for sources without a registered colour.
	DefaultColor = "#95a5a6"
	// GenericIcon is used for sources without a registered glyph.
	GenericIcon = "▣"
	// CleanIcon marks the clean-energy ring.
	CleanIcon = "✿"
	// CleanRingColor fills the outer clean-energy ring.
	CleanRingColor = "#caf3d1"
	// CleanIconColor colours CleanIcon.
	CleanIconColor = "#1ba544"
)

// SourceStyle is the display capability set of a source name.
type SourceStyle struct {
	Color string
	Icon  string
	Clean bool
}

// Lookup is total: unknown names fall back to the defaults and are never clean.
func Lookup(name string) SourceStyle {
	st := SourceStyle{Color: DefaultColor, Icon: GenericIcon, Clean: IsClean(name)}
	if c, ok := sourceColors[name]; ok {
		st.Color = c
	}
	if i, ok := sourceIcons[name]; ok {
		st.Icon = i
	}
	return st
}

// IsClean reports whether name is in the low-carbon set.
func IsClean(name string) bool {
	for _, s := range cleanSources {
		if s == name {
			return true
		}
	}
	return false
}
