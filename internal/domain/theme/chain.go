package theme

// Chain is the ordered inheritance list for one target theme: the synthetic
// root first, ancestors in extends order, the target last. Links are copies.
type Chain struct {
	Links []Definition
	// Missing collects extends ids that named no registered theme.
	Missing []string
}

// Target returns the last link, the theme the chain was collected for.
func (c Chain) Target() Definition {
	if len(c.Links) == 0 {
		return Definition{}
	}
	return c.Links[len(c.Links)-1]
}

// IDs lists the link ids in chain order.
func (c Chain) IDs() []string {
	ids := make([]string, len(c.Links))
	for i, link := range c.Links {
		ids[i] = link.ID
	}
	return ids
}

// BuildRoot seeds the synthetic root with BaseTokens and folds in component
// defaults: common vars become root vars, tone-keyed vars become root tone overrides.
func BuildRoot(defaults ComponentDefaults) Definition {
	root := BaseTokens()
	for _, comp := range defaults {
		for name, value := range comp.Common {
			root.ThemeVars[name] = value
		}
		for tone, vars := range comp.Tones {
			def, ok := root.Tones[tone]
			if !ok || def.ThemeVars == nil {
				def = ToneDefinition{ThemeVars: Vars{}}
			}
			for name, value := range vars {
				def.ThemeVars[name] = value
			}
			root.Tones[tone] = def
		}
	}
	return root
}

// CollectChain resolves the extends graph of id depth-first. Unknown parents
// are skipped and recorded in Chain.Missing; cycles are a hard error. An
// explicit "root" parent is a no-op because root always sits at position zero.
func CollectChain(reg *Registry, id string, defaults ComponentDefaults) (Chain, error) {
	target, ok := reg.Lookup(id)
	if !ok {
		return Chain{}, NewThemeNotFoundError(id, reg.IDs())
	}

	chain := Chain{Links: []Definition{BuildRoot(defaults)}}
	visiting := make(map[string]bool)
	var stack []string

	var visit func(def Definition) error
	visit = func(def Definition) error {
		visiting[def.ID] = true
		stack = append(stack, def.ID)

		for _, parent := range def.Extends {
			if parent == RootThemeID {
				continue
			}
			if visiting[parent] {
				path := append([]string{}, stack[indexOf(stack, parent):]...)
				return newCycleError(append(path, parent))
			}
			ancestor, ok := reg.Lookup(parent)
			if !ok {
				chain.Missing = append(chain.Missing, parent)
				continue
			}
			if err := visit(ancestor); err != nil {
				return err
			}
		}

		chain.Links = append(chain.Links, def)
		visiting[def.ID] = false
		stack = stack[:len(stack)-1]
		return nil
	}

	if err := visit(target); err != nil {
		return Chain{}, err
	}
	return chain, nil
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
