package theme

// BaseTokens are the framework tokens seeded into the synthetic root theme.
// Derived families (ramps, spacing scale, font scale) are generated from the
// const-color-*, space-base and font-size entries.
func BaseTokens() Definition {
	return Definition{
		ID:   RootThemeID,
		Name: "Root",
		ThemeVars: Vars{
			"const-color-primary":   "#206bc4",
			"const-color-secondary": "#6c7a91",
			"const-color-surface":   "#737f8f",
			"const-color-success":   "#2fb344",
			"const-color-warn":      "#f59f00",
			"const-color-danger":    "#d63939",
			"const-color-info":      "#4299e1",

			"color-primary":   "$color-primary-500",
			"color-secondary": "$color-secondary-500",
			"color-success":   "$color-success-500",
			"color-warn":      "$color-warn-500",
			"color-danger":    "$color-danger-500",
			"color-info":      "$color-info-500",

			"color-bg":       "$color-surface-50",
			"color-text":     "$color-surface-900",
			"color-border":   "$color-surface-200",
			"color-backdrop": "rgba($color-surface-900-rgb, .5)",

			"thickness-border": "1px",
			"style-border":     "solid",
			"radius":           "$space-1",
			"shadow-md":        "0 2px 4px rgba($color-surface-900-rgb, .15)",

			"space-base":  "0.25rem",
			"font-size":   "1rem",
			"font-family": "Inter, system-ui, sans-serif",
			"line-height": "1.5",

			"maxWidth-phone":           "576px",
			"maxWidth-landscape-phone": "768px",
			"maxWidth-tablet":          "992px",
			"maxWidth-desktop":         "1200px",
			"maxWidth-large-desktop":   "1400px",
		},
		Tones: map[string]ToneDefinition{
			ToneLight: {ThemeVars: Vars{}},
			ToneDark: {ThemeVars: Vars{
				"color-bg":       "$color-surface-950",
				"color-text":     "$color-surface-50",
				"color-border":   "$color-surface-700",
				"color-backdrop": "rgba($color-surface-950-rgb, .6)",
			}},
		},
		Resources: map[string]Resource{},
	}
}
