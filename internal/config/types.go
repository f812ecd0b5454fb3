package config

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

// ThemeFile is one theme document. It holds either a single definition at the
// top level or a list under `themes`.
type ThemeFile struct {
	Themes []ThemeDoc `yaml:"themes" validate:"required,min=1,dive"`
}

// UnmarshalYAML accepts both the single-definition and the list layout.
func (f *ThemeFile) UnmarshalYAML(value *yaml.Node) error {
	if hasYAMLKey(value, "themes") {
		var list struct {
			Themes []ThemeDoc `yaml:"themes"`
		}
		if err := value.Decode(&list); err != nil {
			return err
		}
		f.Themes = list.Themes
		return nil
	}

	var doc ThemeDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	f.Themes = []ThemeDoc{doc}
	return nil
}

// ThemeDoc is the on-disk form of a theme definition.
type ThemeDoc struct {
	ID        string                 `yaml:"id" validate:"required,theme_id"`
	Name      string                 `yaml:"name,omitempty" validate:"max=100"`
	Extends   StringList             `yaml:"extends,omitempty" validate:"dive,theme_id"`
	ThemeVars VarMap                 `yaml:"themeVars,omitempty" validate:"dive,keys,var_name,endkeys"`
	Tones     map[string]ToneDoc     `yaml:"tones,omitempty" validate:"dive,keys,theme_id,endkeys"`
	Resources map[string]ResourceDoc `yaml:"resources,omitempty" validate:"dive"`
}

// ToneDoc holds the overrides for one tone.
type ToneDoc struct {
	ThemeVars VarMap `yaml:"themeVars,omitempty" validate:"dive,keys,var_name,endkeys"`
}

// ResourceDoc is either a plain string or a font mapping.
type ResourceDoc struct {
	URL  string
	Font *FontDoc
}

// FontDoc describes a web font resource.
type FontDoc struct {
	FontFamily  string `yaml:"fontFamily" validate:"required"`
	FontStyle   string `yaml:"fontStyle,omitempty"`
	FontWeight  string `yaml:"fontWeight,omitempty"`
	FontDisplay string `yaml:"fontDisplay,omitempty" validate:"omitempty,oneof=auto block swap fallback optional"`
	Src         string `yaml:"src" validate:"required"`
}

// UnmarshalYAML decodes a scalar as a URL and a mapping as a font.
func (r *ResourceDoc) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		r.URL = value.Value
		r.Font = nil
		return nil
	case yaml.MappingNode:
		var font FontDoc
		if err := value.Decode(&font); err != nil {
			return err
		}
		r.URL = ""
		r.Font = &font
		return nil
	}
	return fmt.Errorf("line %d: resource must be a string or a font mapping", value.Line)
}

// StringList decodes from either a single string or a sequence of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = StringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
}

// VarMap is a variable table whose scalar values are kept verbatim, so that
// `line-height: 1.5` stays "1.5" rather than failing to decode.
type VarMap map[string]string

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *VarMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of variable names to values", value.Line)
	}
	out := make(VarMap, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of %q must be a scalar", val.Line, key.Value)
		}
		out[key.Value] = val.Value
	}
	*m = out
	return nil
}

// Definition converts the document into the domain model.
func (d ThemeDoc) Definition() theme.Definition {
	def := theme.Definition{
		ID:        strings.TrimSpace(d.ID),
		Name:      d.Name,
		Extends:   append([]string(nil), d.Extends...),
		ThemeVars: theme.Vars(d.ThemeVars).Clone(),
		Tones:     make(map[string]theme.ToneDefinition, len(d.Tones)),
		Resources: make(map[string]theme.Resource, len(d.Resources)),
	}
	for tone, doc := range d.Tones {
		def.Tones[tone] = theme.ToneDefinition{ThemeVars: theme.Vars(doc.ThemeVars).Clone()}
	}
	for key, res := range d.Resources {
		out := theme.Resource{URL: res.URL}
		if res.Font != nil {
			out.Font = &theme.FontRef{
				FontFamily:  res.Font.FontFamily,
				FontStyle:   res.Font.FontStyle,
				FontWeight:  res.Font.FontWeight,
				FontDisplay: res.Font.FontDisplay,
				Src:         res.Font.Src,
			}
		}
		def.Resources[key] = out
	}
	return def
}

// ComponentsFile declares the variables each component reads and its defaults.
type ComponentsFile struct {
	Components map[string]ComponentDoc `yaml:"components" validate:"required,dive,keys,required,endkeys"`
}

// ComponentDoc is one component entry.
type ComponentDoc struct {
	ThemeVars []string    `yaml:"themeVars,omitempty" validate:"dive,var_name"`
	Defaults  DefaultsDoc `yaml:"defaults,omitempty"`
}

// DefaultsDoc mixes common and tone-keyed defaults in one mapping: scalar
// entries are common variables, mapping entries are keyed by tone.
type DefaultsDoc struct {
	Common VarMap            `validate:"dive,keys,var_name,endkeys"`
	Tones  map[string]VarMap `validate:"dive,keys,theme_id,endkeys"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DefaultsDoc) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: defaults must be a mapping", value.Line)
	}
	d.Common = VarMap{}
	d.Tones = map[string]VarMap{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch val.Kind {
		case yaml.ScalarNode:
			d.Common[key.Value] = val.Value
		case yaml.MappingNode:
			var vars VarMap
			if err := val.Decode(&vars); err != nil {
				return err
			}
			d.Tones[key.Value] = vars
		default:
			return fmt.Errorf("line %d: default %q must be a value or a tone mapping", val.Line, key.Value)
		}
	}
	return nil
}

// Defaults converts the file into domain component defaults ordered by component name.
func (f ComponentsFile) Defaults() theme.ComponentDefaults {
	names := make([]string, 0, len(f.Components))
	for name := range f.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(theme.ComponentDefaults, 0, len(names))
	for _, name := range names {
		doc := f.Components[name]
		comp := theme.ComponentDefault{
			Component: name,
			Declared:  append([]string(nil), doc.ThemeVars...),
			Common:    theme.Vars(doc.Defaults.Common).Clone(),
			Tones:     make(map[string]theme.Vars, len(doc.Defaults.Tones)),
		}
		for tone, vars := range doc.Defaults.Tones {
			comp.Tones[tone] = theme.Vars(vars).Clone()
		}
		out = append(out, comp)
	}
	return out
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		if strings.EqualFold(k.Value, key) {
			return true
		}
	}
	return false
}
