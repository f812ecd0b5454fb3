package theme

import (
	"sort"
	"strings"
)

// DefaultPrefix namespaces the emitted custom properties (--ui-<name>).
const DefaultPrefix = "ui"

// Request selects the theme and tone to resolve.
type Request struct {
	ThemeID string
	Tone    string
	Prefix  string
	// Requested names are checked against the fallback patterns in addition
	// to every component-declared name.
	Requested []string
	// Generators replaces DefaultGenerators(tone) when non-nil.
	Generators []Generator
}

// Resolver runs the resolution pipeline over one registry and one set of
// component defaults. It holds no mutable state and is safe to share.
type Resolver struct {
	registry *Registry
	defaults ComponentDefaults
	declared []string
	matcher  *FallbackMatcher
}

// NewResolver registers the fallback patterns once from the component defaults.
func NewResolver(reg *Registry, defaults ComponentDefaults) *Resolver {
	declared := defaults.DeclaredNames()
	return &Resolver{
		registry: reg,
		defaults: append(ComponentDefaults(nil), defaults...),
		declared: declared,
		matcher:  NewFallbackMatcher(declared...),
	}
}

// Registry returns the registry the resolver was built with.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve produces the flat table for req. The only error conditions are an
// unknown theme id and a cycle in the extends graph.
func (r *Resolver) Resolve(req Request) (*Table, error) {
	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = ToneLight
	}
	prefix := req.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	generators := req.Generators
	if generators == nil {
		generators = DefaultGenerators(tone)
	}

	chain, err := CollectChain(r.registry, req.ThemeID, r.defaults)
	if err != nil {
		return nil, err
	}

	merged := MergeTone(chain, tone, generators)
	expanded := ExpandShorthands(merged)

	requested := append(append([]string(nil), r.declared...), req.Requested...)
	withFallbacks := MergeLayers(
		Layer{Source: "theme", Vars: expanded},
		Layer{Source: "fallback", Vars: r.matcher.Aliases(expanded, requested)},
	)

	resolved, unresolved := ResolveReferences(withFallbacks, prefix)

	return &Table{
		ThemeID:        req.ThemeID,
		Tone:           tone,
		Prefix:         prefix,
		Chain:          chain.IDs(),
		MissingExtends: chain.Missing,
		Resources:      mergeResources(chain),
		Unresolved:     unresolved,
		vars:           resolved,
	}, nil
}

// Resolve is a convenience wrapper for one-off resolutions.
func Resolve(reg *Registry, defaults ComponentDefaults, req Request) (*Table, error) {
	return NewResolver(reg, defaults).Resolve(req)
}

func mergeResources(chain Chain) map[string]Resource {
	out := make(map[string]Resource)
	for _, link := range chain.Links {
		for key, res := range link.Resources {
			out[key] = res
		}
	}
	return out
}

// Table is the resolved variable table for one (theme, tone) pair.
type Table struct {
	ThemeID        string
	Tone           string
	Prefix         string
	Chain          []string
	MissingExtends []string
	Resources      map[string]Resource
	Unresolved     []Unresolved
	vars           Vars
}

// Get looks up one resolved variable by its unprefixed name.
func (t *Table) Get(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.vars[name]
	return v, ok
}

// Vars returns a copy of the resolved variables keyed by unprefixed name.
func (t *Table) Vars() Vars {
	if t == nil {
		return Vars{}
	}
	return t.vars.Clone()
}

// CSSVars returns the table keyed by custom property name.
func (t *Table) CSSVars() map[string]string {
	if t == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(t.vars))
	for name, value := range t.vars {
		out[CSSVarName(t.Prefix, name)] = value
	}
	return out
}

// Names lists the resolved variable names in lexical order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return t.vars.Keys()
}

// Len reports the number of resolved variables.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.vars)
}

// Fonts lists the font resources ordered by resource key.
func (t *Table) Fonts() []FontRef {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.Resources))
	for key, res := range t.Resources {
		if res.IsFont() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	fonts := make([]FontRef, len(keys))
	for i, key := range keys {
		fonts[i] = *t.Resources[key].Font
	}
	return fonts
}
