package render

import (
	"encoding/json"
	"io"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

type jsonUnresolved struct {
	Name      string `json:"name"`
	Reference string `json:"reference"`
	Reason    string `json:"reason"`
}

type jsonFont struct {
	FontFamily  string `json:"fontFamily"`
	FontStyle   string `json:"fontStyle,omitempty"`
	FontWeight  string `json:"fontWeight,omitempty"`
	FontDisplay string `json:"fontDisplay,omitempty"`
	Src         string `json:"src"`
}

type jsonPayload struct {
	Version        string            `json:"version"`
	Theme          string            `json:"theme"`
	Tone           string            `json:"tone"`
	Prefix         string            `json:"prefix"`
	Chain          []string          `json:"chain"`
	MissingExtends []string          `json:"missingExtends,omitempty"`
	Count          int               `json:"count"`
	Vars           map[string]string `json:"vars"`
	Fonts          []jsonFont        `json:"fonts,omitempty"`
	Unresolved     []jsonUnresolved  `json:"unresolved,omitempty"`
}

// JSON writes the table as an indented document keyed by custom property name.
func JSON(w io.Writer, table *theme.Table) error {
	payload := jsonPayload{
		Version:        "1.0",
		Theme:          table.ThemeID,
		Tone:           table.Tone,
		Prefix:         table.Prefix,
		Chain:          table.Chain,
		MissingExtends: table.MissingExtends,
		Count:          table.Len(),
		Vars:           table.CSSVars(),
	}
	for _, font := range table.Fonts() {
		payload.Fonts = append(payload.Fonts, jsonFont(font))
	}
	for _, u := range table.Unresolved {
		payload.Unresolved = append(payload.Unresolved, jsonUnresolved{
			Name:      u.Name,
			Reference: u.Reference,
			Reason:    string(u.Reason),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
