package theme

import "strings"

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

var borderWidths = map[string]bool{"thin": true, "medium": true, "thick": true}

// GeneratePaddingSegments splits multi-value padding and margin variables
// using CSS box semantics: two values are vertical/horizontal, three are
// top/horizontal/bottom, four are top/right/bottom/left.
//
// Values taken from a bare variable never cover an axis that has its own
// variable, and axis-derived values replace bare-derived ones.
func GeneratePaddingSegments(in Vars) Vars {
	out := Vars{}
	var bare, axes []ShorthandKey
	for name := range in {
		key, ok := ParseShorthandKey(name)
		if !ok || (key.Family != "padding" && key.Family != "margin") {
			continue
		}
		switch key.Position {
		case PositionBare:
			bare = append(bare, key)
		case PositionVertical, PositionHorizontal:
			axes = append(axes, key)
		}
	}

	for _, key := range bare {
		_, hasVertical := in[key.At(PositionVertical).String()]
		_, hasHorizontal := in[key.At(PositionHorizontal).String()]
		set := func(position, value string, vertical bool) {
			if (vertical && hasVertical) || (!vertical && hasHorizontal) {
				return
			}
			out[key.At(position).String()] = value
		}

		parts := splitValue(in[key.String()])
		switch len(parts) {
		case 2:
			set(PositionVertical, parts[0], true)
			set(PositionHorizontal, parts[1], false)
		case 3:
			set(PositionTop, parts[0], true)
			set(PositionBottom, parts[2], true)
			set(PositionVertical, parts[0]+" "+parts[2], true)
			set(PositionHorizontal, parts[1], false)
		case 4:
			set(PositionTop, parts[0], true)
			set(PositionRight, parts[1], false)
			set(PositionBottom, parts[2], true)
			set(PositionLeft, parts[3], false)
			set(PositionVertical, parts[0]+" "+parts[2], true)
			set(PositionHorizontal, parts[3]+" "+parts[1], false)
		}
	}

	for _, key := range axes {
		parts := splitValue(in[key.String()])
		switch key.Position {
		case PositionVertical:
			if len(parts) == 2 {
				out[key.At(PositionTop).String()] = parts[0]
				out[key.At(PositionBottom).String()] = parts[1]
			}
		case PositionHorizontal:
			if len(parts) == 2 {
				out[key.At(PositionLeft).String()] = parts[0]
				out[key.At(PositionRight).String()] = parts[1]
			}
		}
	}
	return out
}

// GenerateBorderSegments splits "<width> <style> <color>" border values into
// the thickness-border, style-border and color-border families.
func GenerateBorderSegments(in Vars) Vars {
	out := Vars{}
	for name, value := range in {
		key, ok := ParseShorthandKey(name)
		if !ok || key.Family != "border" {
			continue
		}
		parts := splitValue(value)
		if len(parts) == 0 || (len(parts) == 1 && strings.HasPrefix(parts[0], "$")) {
			continue
		}
		for _, part := range parts {
			family := classifyBorderPart(part)
			out[ShorthandKey{Family: family, Position: key.Position, Suffix: key.Suffix}.String()] = part
		}
	}
	return out
}

func classifyBorderPart(part string) string {
	lower := strings.ToLower(part)
	switch {
	case borderStyles[lower]:
		return "style-border"
	case borderWidths[lower]:
		return "thickness-border"
	case strings.HasPrefix(part, "$"):
		switch {
		case strings.Contains(lower, "thickness") || strings.HasPrefix(lower, "$space"):
			return "thickness-border"
		case strings.Contains(lower, "style"):
			return "style-border"
		}
		return "color-border"
	}
	if _, _, ok := parseLength(part); ok {
		return "thickness-border"
	}
	return "color-border"
}
