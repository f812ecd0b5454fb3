package theme

// Layer is one named step of the merge order. Source identifies where the
// values came from ("root", "root:dark", "generated", ...).
type Layer struct {
	Source string
	Vars   Vars
}

// MergeLayers applies layers in order into a fresh map; later layers win.
// This is the only place precedence between layers is decided.
func MergeLayers(layers ...Layer) Vars {
	size := 0
	for _, layer := range layers {
		size += len(layer.Vars)
	}
	out := make(Vars, size)
	for _, layer := range layers {
		for k, v := range layer.Vars {
			out[k] = v
		}
	}
	return out
}

// ToneLayers lists the merge layers for a chain and tone, with the generated
// layer inserted right before the target theme's own values.
func ToneLayers(chain Chain, tone string, generators []Generator) []Layer {
	if len(chain.Links) == 0 {
		return nil
	}

	layers := make([]Layer, 0, len(chain.Links)*2+1)
	for _, link := range chain.Links[:len(chain.Links)-1] {
		layers = append(layers, linkLayers(link, tone)...)
	}

	target := chain.Links[len(chain.Links)-1]
	own := linkLayers(target, tone)

	// Generators read the full merge. Their output replaces inherited values
	// and ranks below the target's explicit ones.
	full := MergeLayers(append(append([]Layer{}, layers...), own...)...)
	generated := GenerateExcept(full, MergeLayers(own...), generators)
	layers = append(layers, Layer{Source: "generated", Vars: generated})
	return append(layers, own...)
}

// MergeTone flattens a chain for the selected tone.
func MergeTone(chain Chain, tone string, generators []Generator) Vars {
	return MergeLayers(ToneLayers(chain, tone, generators)...)
}

func linkLayers(link Definition, tone string) []Layer {
	return []Layer{
		{Source: link.ID, Vars: link.ThemeVars},
		{Source: link.ID + ":" + tone, Vars: link.ToneVars(tone)},
	}
}
