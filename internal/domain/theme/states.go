package theme

import "strings"

// InteractiveTargets are the background prefixes that get hover/active tones.
var InteractiveTargets = []string{"color-bg-Button"}

var stateNames = map[string]bool{"hover": true, "active": true, "focus": true, "disabled": true}

type stateGenerator struct {
	mix string
}

// NewStateGenerator emits -hover and -active siblings for interactive
// backgrounds. Light tones mix toward black, dark tones toward white.
func NewStateGenerator(tone string) Generator {
	mix := "black"
	if tone == ToneDark {
		mix = "white"
	}
	return stateGenerator{mix: mix}
}

func (stateGenerator) Name() string { return "interactive-states" }

func (g stateGenerator) Generate(in Vars) Vars {
	out := Vars{}
	for name := range in {
		if !isInteractiveBase(name) {
			continue
		}
		out[name+"-hover"] = "color-mix(in srgb, $" + name + ", " + g.mix + " 8%)"
		out[name+"-active"] = "color-mix(in srgb, $" + name + ", " + g.mix + " 16%)"
	}
	return out
}

// isInteractiveBase accepts "color-bg-Button" and "color-bg-Button-<variant>",
// but not names that already carry a state.
func isInteractiveBase(name string) bool {
	for _, target := range InteractiveTargets {
		if name == target {
			return true
		}
		if !strings.HasPrefix(name, target+"-") {
			continue
		}
		variant := name[len(target)+1:]
		return variant != "" && !strings.Contains(variant, "-") && !stateNames[variant]
	}
	return false
}
