package theme

import "strings"

type fontStep struct {
	name  string
	ratio float64
}

var fontScale = []fontStep{
	{"tiny", 0.625},
	{"xs", 0.75},
	{"sm", 0.875},
	{"base", 1},
	{"lg", 1.125},
	{"xl", 1.25},
	{"2xl", 1.5},
	{"3xl", 1.875},
	{"4xl", 2.25},
	{"5xl", 3},
	{"6xl", 3.75},
	{"7xl", 4.5},
	{"8xl", 6},
	{"9xl", 8},
}

// TextVariantSizes maps Text component variants onto the font-size scale.
var TextVariantSizes = map[string]string{
	"abbr":        "sm",
	"caption":     "xs",
	"cite":        "base",
	"code":        "sm",
	"em":          "base",
	"keyboard":    "sm",
	"marked":      "base",
	"paragraph":   "base",
	"placeholder": "base",
	"small":       "sm",
	"strong":      "base",
	"subtitle":    "xl",
	"sub":         "xs",
	"sup":         "xs",
	"title":       "2xl",
}

// GenerateFontSizes derives font-size-<step> from font-size and aliases the
// text variants to the scale.
func GenerateFontSizes(in Vars) Vars {
	if strings.TrimSpace(in["font-size"]) == "" {
		return nil
	}
	out := make(Vars, len(fontScale)+len(TextVariantSizes))
	for _, step := range fontScale {
		out["font-size-"+step.name] = scaleToken(in, "font-size", step.ratio)
	}
	for variant, step := range TextVariantSizes {
		out["font-size-Text-"+variant] = "$font-size-" + step
	}
	return out
}
