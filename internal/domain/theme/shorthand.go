package theme

import "strings"

// Position of a longhand relative to its shorthand family.
const (
	PositionBare       = ""
	PositionHorizontal = "horizontal"
	PositionVertical   = "vertical"
	PositionTop        = "top"
	PositionRight      = "right"
	PositionBottom     = "bottom"
	PositionLeft       = "left"
)

// ShorthandFamilies are the variable prefixes that expand into positional longhands.
// Longer prefixes come first so the most specific family wins.
var ShorthandFamilies = []string{
	"thickness-border",
	"style-border",
	"color-border",
	"border",
	"padding",
	"margin",
	"radius",
}

var positions = []string{
	PositionHorizontal,
	PositionVertical,
	PositionTop,
	PositionRight,
	PositionBottom,
	PositionLeft,
}

// ShorthandKey is a parsed family variable name.
type ShorthandKey struct {
	Family   string
	Position string
	Suffix   string
}

// String composes the variable name back.
func (k ShorthandKey) String() string {
	if k.Position == PositionBare {
		return k.Family + "-" + k.Suffix
	}
	return k.Family + "-" + k.Position + "-" + k.Suffix
}

// At returns the same family and suffix at another position.
func (k ShorthandKey) At(position string) ShorthandKey {
	return ShorthandKey{Family: k.Family, Position: position, Suffix: k.Suffix}
}

// ParseShorthandKey splits a name such as "border-left-AppHeader". Names that
// match no family, or carry no suffix, are reported as not expandable.
func ParseShorthandKey(name string) (ShorthandKey, bool) {
	for _, family := range ShorthandFamilies {
		if !strings.HasPrefix(name, family+"-") {
			continue
		}
		rest := name[len(family)+1:]
		if rest == "" {
			return ShorthandKey{}, false
		}
		for _, pos := range positions {
			if rest == pos {
				return ShorthandKey{}, false
			}
			if strings.HasPrefix(rest, pos+"-") {
				suffix := rest[len(pos)+1:]
				if suffix == "" {
					return ShorthandKey{}, false
				}
				return ShorthandKey{Family: family, Position: pos, Suffix: suffix}, true
			}
		}
		return ShorthandKey{Family: family, Position: PositionBare, Suffix: rest}, true
	}
	return ShorthandKey{}, false
}

type shorthandGroup struct {
	family string
	suffix string
}

// ExpandShorthands fills in the longhand siblings of every family variable.
// Directional values beat axis values, which beat the bare value; a key that
// is already present is never replaced, so the operation is idempotent.
func ExpandShorthands(in Vars) Vars {
	out := in.Clone()

	groups := make(map[shorthandGroup]map[string]string)
	for name, value := range in {
		key, ok := ParseShorthandKey(name)
		if !ok {
			continue
		}
		g := shorthandGroup{family: key.Family, suffix: key.Suffix}
		if groups[g] == nil {
			groups[g] = make(map[string]string, 7)
		}
		groups[g][key.Position] = value
	}

	for g, present := range groups {
		base := ShorthandKey{Family: g.family, Suffix: g.suffix}
		fill := func(position, value string) {
			name := base.At(position).String()
			if _, ok := out[name]; !ok {
				out[name] = value
			}
		}

		bare, hasBare := present[PositionBare]
		if h, ok := present[PositionHorizontal]; ok || hasBare {
			if !ok {
				h = bare
			}
			fill(PositionHorizontal, h)
			fill(PositionLeft, h)
			fill(PositionRight, h)
		}
		if v, ok := present[PositionVertical]; ok || hasBare {
			if !ok {
				v = bare
			}
			fill(PositionVertical, v)
			fill(PositionTop, v)
			fill(PositionBottom, v)
		}
	}
	return out
}
