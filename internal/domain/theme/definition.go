package theme

import (
	"sort"
	"strings"
)

// RootThemeID names the synthetic theme that sits at position zero of every chain.
const RootThemeID = "root"

// Tone names used by the built-in tokens. Themes may declare any other tone.
const (
	ToneLight = "light"
	ToneDark  = "dark"
)

// Vars is a flat variable-name to value table.
type Vars map[string]string

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (v Vars) Clone() Vars {
	out := make(Vars, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Keys returns the variable names in lexical order.
func (v Vars) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Definition is one named bundle of design tokens.
type Definition struct {
	ID        string
	Name      string
	Extends   []string
	ThemeVars Vars
	Tones     map[string]ToneDefinition
	Resources map[string]Resource
}

// ToneDefinition holds the overrides applied when a tone is selected.
type ToneDefinition struct {
	ThemeVars Vars
}

// Resource is either a plain URL-ish string or a font reference.
type Resource struct {
	URL  string
	Font *FontRef
}

// FontRef describes a web font that the renderer loads once resolution is done.
type FontRef struct {
	FontFamily  string
	FontStyle   string
	FontWeight  string
	FontDisplay string
	Src         string
}

// IsFont reports whether the resource refers to a font.
func (r Resource) IsFont() bool {
	return r.Font != nil
}

// Clone deep-copies a definition so chain links never alias registry data.
func (d Definition) Clone() Definition {
	out := Definition{
		ID:        d.ID,
		Name:      d.Name,
		Extends:   append([]string(nil), d.Extends...),
		ThemeVars: d.ThemeVars.Clone(),
		Tones:     make(map[string]ToneDefinition, len(d.Tones)),
		Resources: make(map[string]Resource, len(d.Resources)),
	}
	for tone, def := range d.Tones {
		out.Tones[tone] = ToneDefinition{ThemeVars: def.ThemeVars.Clone()}
	}
	for key, res := range d.Resources {
		if res.Font != nil {
			font := *res.Font
			res.Font = &font
		}
		out.Resources[key] = res
	}
	return out
}

// ToneVars returns the overrides for tone, or nil when the theme has none.
func (d Definition) ToneVars(tone string) Vars {
	def, ok := d.Tones[tone]
	if !ok {
		return nil
	}
	return def.ThemeVars
}

// DisplayName prefers the human name and falls back to the id.
func (d Definition) DisplayName() string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return name
	}
	return d.ID
}

// ComponentDefault carries the theme variables a component type contributes
// when it registers with the renderer.
type ComponentDefault struct {
	Component string
	// Declared lists the theme variable names the component reads.
	Declared []string
	Common   Vars
	Tones    map[string]Vars
}

// ComponentDefaults is applied in slice order when folded into the root theme.
type ComponentDefaults []ComponentDefault

// Sorted returns a copy ordered by component name.
func (c ComponentDefaults) Sorted() ComponentDefaults {
	out := append(ComponentDefaults(nil), c...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Component < out[j].Component
	})
	return out
}

// DeclaredNames returns every declared and defaulted variable name, de-duplicated and sorted.
func (c ComponentDefaults) DeclaredNames() []string {
	seen := make(map[string]struct{})
	for _, comp := range c {
		for _, name := range comp.Declared {
			seen[name] = struct{}{}
		}
		for name := range comp.Common {
			seen[name] = struct{}{}
		}
		for _, vars := range comp.Tones {
			for name := range vars {
				seen[name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
