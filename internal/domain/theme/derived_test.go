package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSpacing(t *testing.T) {
	out := GenerateSpacing(Vars{"space-base": "0.25rem"})

	assert.Equal(t, "0", out["space-0"])
	assert.Equal(t, "1px", out["space-px"])
	assert.Equal(t, "0.125rem", out["space-0_5"])
	assert.Equal(t, "0.25rem", out["space-1"])
	assert.Equal(t, "1rem", out["space-4"])
	assert.Equal(t, "24rem", out["space-96"])
	assert.Len(t, out, len(SpacingSteps))
}

func TestGenerateSpacing_NonLiteralBaseUsesCalc(t *testing.T) {
	out := GenerateSpacing(Vars{"space-base": "$gap"})

	assert.Equal(t, "calc($space-base * 2)", out["space-2"])
	assert.Equal(t, "calc($space-base * 0.5)", out["space-0_5"])
}

func TestGenerateSpacing_MissingBase(t *testing.T) {
	assert.Empty(t, GenerateSpacing(Vars{}))
}

func TestGenerateFontSizes(t *testing.T) {
	out := GenerateFontSizes(Vars{"font-size": "16px"})

	assert.Equal(t, "10px", out["font-size-tiny"])
	assert.Equal(t, "14px", out["font-size-sm"])
	assert.Equal(t, "16px", out["font-size-base"])
	assert.Equal(t, "24px", out["font-size-2xl"])
	assert.Equal(t, "$font-size-sm", out["font-size-Text-small"])
	assert.Equal(t, "$font-size-2xl", out["font-size-Text-title"])
}

func TestGeneratePaddingSegments(t *testing.T) {
	tests := []struct {
		name     string
		in       Vars
		expected Vars
	}{
		{
			name:     "single value is left to shorthand expansion",
			in:       Vars{"padding-Card": "1px"},
			expected: Vars{},
		},
		{
			name: "two values",
			in:   Vars{"padding-Card": "1px 2px"},
			expected: Vars{
				"padding-vertical-Card":   "1px",
				"padding-horizontal-Card": "2px",
			},
		},
		{
			name: "three values",
			in:   Vars{"margin-Card": "1px 2px 3px"},
			expected: Vars{
				"margin-top-Card":        "1px",
				"margin-bottom-Card":     "3px",
				"margin-vertical-Card":   "1px 3px",
				"margin-horizontal-Card": "2px",
			},
		},
		{
			name: "four values",
			in:   Vars{"padding-Card": "1px 2px 3px 4px"},
			expected: Vars{
				"padding-top-Card":        "1px",
				"padding-right-Card":      "2px",
				"padding-bottom-Card":     "3px",
				"padding-left-Card":       "4px",
				"padding-vertical-Card":   "1px 3px",
				"padding-horizontal-Card": "4px 2px",
			},
		},
		{
			name: "explicit axis wins over bare",
			in:   Vars{"padding-Card": "1px 2px", "padding-vertical-Card": "5px 6px"},
			expected: Vars{
				"padding-horizontal-Card": "2px",
				"padding-top-Card":        "5px",
				"padding-bottom-Card":     "6px",
			},
		},
		{
			name: "parentheses keep calc together",
			in:   Vars{"padding-Card": "calc(1px + 2px) 3px"},
			expected: Vars{
				"padding-vertical-Card":   "calc(1px + 2px)",
				"padding-horizontal-Card": "3px",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GeneratePaddingSegments(tt.in))
		})
	}
}

func TestGenerateBorderSegments(t *testing.T) {
	out := GenerateBorderSegments(Vars{
		"border-Card":     "1px solid $color-border",
		"border-top-Card": "thin dashed rgba(0, 0, 0, .5)",
		"border-Input":    "$border-Card",
		"border-Table":    "$space-px $style-border-Card $color-primary",
	})

	assert.Equal(t, Vars{
		"thickness-border-Card":     "1px",
		"style-border-Card":         "solid",
		"color-border-Card":         "$color-border",
		"thickness-border-top-Card": "thin",
		"style-border-top-Card":     "dashed",
		"color-border-top-Card":     "rgba(0, 0, 0, .5)",
		"thickness-border-Table":    "$space-px",
		"style-border-Table":        "$style-border-Card",
		"color-border-Table":        "$color-primary",
	}, out)
}

func TestGenerateToneRamps(t *testing.T) {
	out := GenerateToneRamps(Vars{"const-color-primary": "#206bc4"})

	assert.Equal(t, "#206bc4", out["color-primary-500"])
	assert.Equal(t, "32, 107, 196", out["color-primary-500-rgb"])

	light, err := ParseColor(out["color-primary-50"])
	require.NoError(t, err)
	base, err := ParseColor(out["color-primary-500"])
	require.NoError(t, err)
	dark, err := ParseColor(out["color-primary-950"])
	require.NoError(t, err)

	lightL, _, _ := light.Lab()
	baseL, _, _ := base.Lab()
	darkL, _, _ := dark.Lab()
	assert.Greater(t, lightL, baseL)
	assert.Less(t, darkL, baseL)

	_, ok := out["color-secondary-500"]
	assert.False(t, ok)
}

func TestGenerateToneRamps_FollowsAliasesAndSkipsInvalid(t *testing.T) {
	out := GenerateToneRamps(Vars{
		"const-color-primary": "$brand",
		"brand":               "rgb(32, 107, 196)",
		"const-color-danger":  "not-a-colour",
		"const-color-info":    "$const-color-info",
	})

	assert.Equal(t, "#206bc4", out["color-primary-500"])
	_, ok := out["color-danger-500"]
	assert.False(t, ok)
	_, ok = out["color-info-500"]
	assert.False(t, ok)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		hex   string
	}{
		{"#206bc4", "#206bc4"},
		{"#fff", "#ffffff"},
		{"rgb(32, 107, 196)", "#206bc4"},
		{"rgba(255, 0, 0, .5)", "#ff0000"},
		{"hsl(0, 100%, 50%)", "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.hex, c.Hex())
		})
	}

	_, err := ParseColor("rgb(300, 0, 0)")
	assert.Error(t, err)
	_, err = ParseColor("tomato")
	assert.Error(t, err)
}

func TestStateGenerator(t *testing.T) {
	in := Vars{
		"color-bg-Button":               "$color-primary",
		"color-bg-Button-danger":        "$color-danger",
		"color-bg-Button-hover":         "#000",
		"color-bg-Button-primary-hover": "#000",
		"color-bg-Card":                 "#fff",
	}

	light := NewStateGenerator(ToneLight).Generate(in)
	assert.Equal(t, "color-mix(in srgb, $color-bg-Button, black 8%)", light["color-bg-Button-hover"])
	assert.Equal(t, "color-mix(in srgb, $color-bg-Button, black 16%)", light["color-bg-Button-active"])
	assert.Equal(t, "color-mix(in srgb, $color-bg-Button-danger, black 8%)", light["color-bg-Button-danger-hover"])
	assert.Len(t, light, 4)

	dark := NewStateGenerator(ToneDark).Generate(in)
	assert.Equal(t, "color-mix(in srgb, $color-bg-Button, white 8%)", dark["color-bg-Button-hover"])
}

func TestDefaultGenerators_NeverOverwriteExplicitKeys(t *testing.T) {
	in := Vars{
		"space-base":          "0.25rem",
		"space-4":             "17px",
		"font-size":           "1rem",
		"font-size-sm":        "13px",
		"const-color-primary": "#206bc4",
		"color-primary-500":   "hotpink",
		"padding-Card":        "1px 2px",
	}

	out := Generate(in, DefaultGenerators(ToneLight))

	for name := range in {
		_, overwritten := out[name]
		assert.False(t, overwritten, name)
	}
	assert.Equal(t, "0.5rem", out["space-2"])
	assert.Equal(t, "2px", out["padding-horizontal-Card"])
}

func TestSplitValue(t *testing.T) {
	assert.Equal(t, []string{"1px", "solid", "rgba(0, 0, 0, .5)"}, splitValue("  1px  solid\trgba(0, 0, 0, .5) "))
	assert.Empty(t, splitValue("   "))
}
