package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RampPalettes are the const-color-<name> tokens that get a shade ladder.
var RampPalettes = []string{"primary", "secondary", "surface", "success", "warn", "danger", "info"}

type rampStep struct {
	step   int
	toward colorful.Color
	amount float64
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}

	rampSteps = []rampStep{
		{50, white, 0.92},
		{100, white, 0.8},
		{200, white, 0.6},
		{300, white, 0.4},
		{400, white, 0.2},
		{500, white, 0},
		{600, black, 0.15},
		{700, black, 0.3},
		{800, black, 0.45},
		{900, black, 0.6},
		{950, black, 0.75},
	}

	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,?\s*(\d{1,3})\s*,?\s*(\d{1,3})\s*(?:[,/]\s*[\d.]+%?\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*([\d.]+)(?:deg)?\s*,?\s*([\d.]+)%\s*,?\s*([\d.]+)%\s*(?:[,/]\s*[\d.]+%?\s*)?\)$`)
)

// GenerateToneRamps derives color-<palette>-<step> and the matching -rgb
// triples from every const-color-<palette> token that parses as a colour.
func GenerateToneRamps(in Vars) Vars {
	out := Vars{}
	for _, palette := range RampPalettes {
		source, ok := lookupLiteral(in, "const-color-"+palette)
		if !ok {
			continue
		}
		base, err := ParseColor(source)
		if err != nil {
			continue
		}
		for _, s := range rampSteps {
			shade := base
			if s.amount > 0 {
				shade = base.BlendLab(s.toward, s.amount).Clamped()
			}
			name := fmt.Sprintf("color-%s-%d", palette, s.step)
			out[name] = shade.Hex()
			out[name+"-rgb"] = RGBTriple(shade)
		}
	}
	return out
}

// ParseColor accepts #rgb, #rrggbb, rgb()/rgba() and hsl()/hsla() notation.
func ParseColor(value string) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(v, "#"):
		return colorful.Hex(v)
	case strings.HasPrefix(v, "rgb"):
		m := rgbPattern.FindStringSubmatch(v)
		if m == nil {
			return colorful.Color{}, fmt.Errorf("invalid rgb colour %q", value)
		}
		var channels [3]uint8
		for i := range channels {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return colorful.Color{}, fmt.Errorf("invalid rgb channel in %q", value)
			}
			channels[i] = uint8(n)
		}
		return colorful.Color{
			R: float64(channels[0]) / 255,
			G: float64(channels[1]) / 255,
			B: float64(channels[2]) / 255,
		}, nil
	case strings.HasPrefix(v, "hsl"):
		m := hslPattern.FindStringSubmatch(v)
		if m == nil {
			return colorful.Color{}, fmt.Errorf("invalid hsl colour %q", value)
		}
		h, _ := strconv.ParseFloat(m[1], 64)
		s, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		return colorful.Hsl(h, s/100, l/100).Clamped(), nil
	}
	return colorful.Color{}, fmt.Errorf("unsupported colour %q", value)
}

// RGBTriple formats a colour as "r, g, b" for use inside rgba().
func RGBTriple(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("%d, %d, %d", r, g, b)
}

// lookupLiteral follows full-value aliases inside in until it reaches a
// literal. It gives up on undefined names and cycles.
func lookupLiteral(in Vars, name string) (string, bool) {
	seen := make(map[string]bool)
	for {
		value, ok := in[name]
		if !ok || seen[name] {
			return "", false
		}
		seen[name] = true
		ref, isAlias := aliasTarget(value)
		if !isAlias {
			return value, true
		}
		name = ref
	}
}
