package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandShorthands_BareExpandsToSevenKeys(t *testing.T) {
	families := []string{"border", "thickness-border", "style-border", "color-border", "padding", "margin"}

	for _, family := range families {
		t.Run(family, func(t *testing.T) {
			out := ExpandShorthands(Vars{family + "-AppHeader": "xxx"})

			expected := Vars{
				family + "-AppHeader":            "xxx",
				family + "-horizontal-AppHeader": "xxx",
				family + "-vertical-AppHeader":   "xxx",
				family + "-top-AppHeader":        "xxx",
				family + "-right-AppHeader":      "xxx",
				family + "-bottom-AppHeader":     "xxx",
				family + "-left-AppHeader":       "xxx",
			}
			assert.Equal(t, expected, out)
		})
	}
}

func TestExpandShorthands_AxisExpandsToItsSides(t *testing.T) {
	families := []string{"border", "thickness-border", "style-border", "color-border", "padding"}

	for _, family := range families {
		t.Run(family+" horizontal", func(t *testing.T) {
			out := ExpandShorthands(Vars{family + "-horizontal-AppHeader": "xxx"})
			assert.Equal(t, Vars{
				family + "-horizontal-AppHeader": "xxx",
				family + "-left-AppHeader":       "xxx",
				family + "-right-AppHeader":      "xxx",
			}, out)
		})
		t.Run(family+" vertical", func(t *testing.T) {
			out := ExpandShorthands(Vars{family + "-vertical-AppHeader": "xxx"})
			assert.Equal(t, Vars{
				family + "-vertical-AppHeader": "xxx",
				family + "-top-AppHeader":      "xxx",
				family + "-bottom-AppHeader":   "xxx",
			}, out)
		})
	}
}

func TestExpandShorthands_NarrowerEntriesWin(t *testing.T) {
	out := ExpandShorthands(Vars{
		"padding-Button":            "1px",
		"padding-horizontal-Button": "2px",
		"padding-left-Button":       "3px",
		"padding-top-Button":        "4px",
	})

	assert.Equal(t, "1px", out["padding-Button"])
	assert.Equal(t, "2px", out["padding-horizontal-Button"])
	assert.Equal(t, "3px", out["padding-left-Button"])
	assert.Equal(t, "2px", out["padding-right-Button"])
	assert.Equal(t, "1px", out["padding-vertical-Button"])
	assert.Equal(t, "4px", out["padding-top-Button"])
	assert.Equal(t, "1px", out["padding-bottom-Button"])
}

func TestExpandShorthands_Idempotent(t *testing.T) {
	inputs := []Vars{
		{},
		{"border-AppHeader": "xxx"},
		{"border-AppHeader": "a", "border-top-AppHeader": "b"},
		{"padding-vertical-Card": "1px", "padding-Card": "2px", "margin-left-Card": "3px"},
		{"color-border-horizontal-Input": "red", "style-border-Input": "dashed", "unrelated": "x"},
		{"radius-Card": "4px", "thickness-border-vertical-Card--focus": "2px"},
	}

	for _, in := range inputs {
		once := ExpandShorthands(in)
		twice := ExpandShorthands(once)
		assert.Equal(t, once, twice)
	}
}

func TestExpandShorthands_DoesNotMutateInput(t *testing.T) {
	in := Vars{"border-AppHeader": "xxx"}
	_ = ExpandShorthands(in)
	assert.Equal(t, Vars{"border-AppHeader": "xxx"}, in)
}

func TestExpandShorthands_UnrecognizedKeysPassThrough(t *testing.T) {
	in := Vars{
		"padding":            "1px",
		"padding-horizontal": "2px",
		"padding-top-":       "3px",
		"outline-Button":     "none",
		"color-text-Heading": "red",
		"thickness-border":   "1px",
	}

	assert.Equal(t, in, ExpandShorthands(in))
}

func TestParseShorthandKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ShorthandKey
		ok       bool
	}{
		{"bare", "border-AppHeader", ShorthandKey{"border", PositionBare, "AppHeader"}, true},
		{"axis", "padding-vertical-Card", ShorthandKey{"padding", PositionVertical, "Card"}, true},
		{"direction", "color-border-left-Input-error", ShorthandKey{"color-border", PositionLeft, "Input-error"}, true},
		{"longest family", "thickness-border-top-Card", ShorthandKey{"thickness-border", PositionTop, "Card"}, true},
		{"no suffix", "margin-left", ShorthandKey{}, false},
		{"family only", "border", ShorthandKey{}, false},
		{"unknown family", "outline-Button", ShorthandKey{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := ParseShorthandKey(tt.input)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, key)
			if ok {
				assert.Equal(t, tt.input, key.String())
			}
		})
	}
}
