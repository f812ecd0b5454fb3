package theme

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Generator synthesizes variables that are computed rather than authored.
// Generate must be deterministic and must not depend on other generators.
type Generator interface {
	Name() string
	Generate(in Vars) Vars
}

type generatorFunc struct {
	name string
	fn   func(Vars) Vars
}

func (g generatorFunc) Name() string          { return g.name }
func (g generatorFunc) Generate(in Vars) Vars { return g.fn(in) }

// NewGenerator adapts a plain function to the Generator interface.
func NewGenerator(name string, fn func(Vars) Vars) Generator {
	return generatorFunc{name: name, fn: fn}
}

// DefaultGenerators returns the built-in generator set for a tone.
func DefaultGenerators(tone string) []Generator {
	return []Generator{
		NewGenerator("spacing", GenerateSpacing),
		NewGenerator("font-sizes", GenerateFontSizes),
		NewGenerator("padding-segments", GeneratePaddingSegments),
		NewGenerator("border-segments", GenerateBorderSegments),
		NewGenerator("tone-ramps", GenerateToneRamps),
		NewStateGenerator(tone),
	}
}

// Generate runs every generator against in and collects their output. Keys
// already present in in are discarded, so authored values always win; when
// two generators emit the same key the earlier generator wins.
func Generate(in Vars, generators []Generator) Vars {
	return GenerateExcept(in, in, generators)
}

// GenerateExcept is Generate with the protected keys given separately:
// generators read in, and only keys present in explicit are discarded.
// Keys that in inherits from elsewhere may be regenerated.
func GenerateExcept(in, explicit Vars, generators []Generator) Vars {
	out := Vars{}
	for _, g := range generators {
		for k, v := range g.Generate(in) {
			if _, ok := explicit[k]; ok {
				continue
			}
			if _, taken := out[k]; taken {
				continue
			}
			out[k] = v
		}
	}
	return out
}

var lengthPattern = regexp.MustCompile(`^(-?\d*\.?\d+)([a-zA-Z%]*)$`)

// parseLength splits "0.25rem" into 0.25 and "rem".
func parseLength(value string) (float64, string, bool) {
	m := lengthPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return n, m[2], true
}

func formatLength(value float64, unit string) string {
	rounded := math.Round(value*10000) / 10000
	if rounded == 0 {
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64) + unit
}

// scaleToken multiplies a numeric token, or falls back to a calc() over a
// reference to the token when the base is not a plain length.
func scaleToken(in Vars, name string, factor float64) string {
	if factor == 0 {
		return "0"
	}
	if n, unit, ok := parseLength(in[name]); ok {
		return formatLength(n*factor, unit)
	}
	return "calc($" + name + " * " + strconv.FormatFloat(factor, 'f', -1, 64) + ")"
}

// splitValue splits a CSS value on whitespace outside parentheses.
func splitValue(value string) []string {
	var (
		parts []string
		depth int
		start = -1
	)
	for i, r := range value {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			if start >= 0 {
				parts = append(parts, value[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, value[start:])
	}
	return parts
}
