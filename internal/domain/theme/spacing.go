package theme

import "strings"

// SpacingSteps are the suffixes of the generated space-* scale. An underscore
// stands for a decimal point ("0_5" is half a base unit).
var SpacingSteps = []string{
	"0", "px", "0_5", "1", "1_5", "2", "2_5", "3", "3_5", "4", "5", "6", "7", "8",
	"9", "10", "11", "12", "14", "16", "20", "24", "28", "32", "36", "40", "44",
	"48", "52", "56", "60", "64", "72", "80", "96",
}

// GenerateSpacing derives space-<step> from space-base.
func GenerateSpacing(in Vars) Vars {
	if strings.TrimSpace(in["space-base"]) == "" {
		return nil
	}
	out := make(Vars, len(SpacingSteps))
	for _, step := range SpacingSteps {
		if step == "px" {
			out["space-px"] = "1px"
			continue
		}
		factor, _, ok := parseLength(strings.ReplaceAll(step, "_", "."))
		if !ok {
			continue
		}
		out["space-"+step] = scaleToken(in, "space-base", factor)
	}
	return out
}
