package theme

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sort"
	"strings"
)

// Registry is an immutable index of theme definitions. Build it once with
// NewRegistry and pass it to the resolver; it is never mutated afterwards.
type Registry struct {
	themes      []Definition
	index       map[string]int
	fingerprint string
}

// NewRegistry validates ids and indexes the supplied definitions in order.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		themes: make([]Definition, 0, len(defs)),
		index:  make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		id := strings.TrimSpace(def.ID)
		if id == "" {
			return nil, newValidationError("theme id must not be empty", map[string]interface{}{"name": def.Name})
		}
		if id == RootThemeID {
			return nil, newValidationError("theme id is reserved", map[string]interface{}{"id": id})
		}
		if _, ok := r.index[id]; ok {
			return nil, newDuplicateError(id)
		}
		clone := def.Clone()
		clone.ID = id
		r.index[id] = len(r.themes)
		r.themes = append(r.themes, clone)
	}
	r.fingerprint = fingerprintDefinitions(r.themes)
	return r, nil
}

// Lookup returns a copy of the definition registered under id.
func (r *Registry) Lookup(id string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	idx, ok := r.index[id]
	if !ok {
		return Definition{}, false
	}
	return r.themes[idx].Clone(), true
}

// IDs lists theme ids in registration order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, len(r.themes))
	for i, def := range r.themes {
		ids[i] = def.ID
	}
	return ids
}

// Definitions returns copies of every registered definition.
func (r *Registry) Definitions() []Definition {
	if r == nil {
		return nil
	}
	out := make([]Definition, len(r.themes))
	for i, def := range r.themes {
		out[i] = def.Clone()
	}
	return out
}

// Len reports the number of registered themes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.themes)
}

// Fingerprint identifies the registry content; equal content gives equal fingerprints.
func (r *Registry) Fingerprint() string {
	if r == nil {
		return ""
	}
	return r.fingerprint
}

// Fingerprint identifies component defaults by content.
func (c ComponentDefaults) Fingerprint() string {
	h := sha256.New()
	for _, comp := range c {
		writeField(h, "component", comp.Component)
		declared := append([]string(nil), comp.Declared...)
		sort.Strings(declared)
		for _, name := range declared {
			writeField(h, "declared", name)
		}
		writeVars(h, "common", comp.Common)
		for _, tone := range sortedToneKeys(comp.Tones) {
			writeVars(h, "tone:"+tone, comp.Tones[tone])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func fingerprintDefinitions(defs []Definition) string {
	h := sha256.New()
	for _, def := range defs {
		writeField(h, "id", def.ID)
		writeField(h, "name", def.Name)
		for _, parent := range def.Extends {
			writeField(h, "extends", parent)
		}
		writeVars(h, "vars", def.ThemeVars)
		tones := make([]string, 0, len(def.Tones))
		for tone := range def.Tones {
			tones = append(tones, tone)
		}
		sort.Strings(tones)
		for _, tone := range tones {
			writeVars(h, "tone:"+tone, def.Tones[tone].ThemeVars)
		}
		keys := make([]string, 0, len(def.Resources))
		for key := range def.Resources {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			res := def.Resources[key]
			writeField(h, "resource", key)
			writeField(h, "url", res.URL)
			if res.Font != nil {
				writeField(h, "font", res.Font.FontFamily+"|"+res.Font.FontStyle+"|"+res.Font.FontWeight+"|"+res.Font.FontDisplay+"|"+res.Font.Src)
			}
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func sortedToneKeys(tones map[string]Vars) []string {
	keys := make([]string, 0, len(tones))
	for tone := range tones {
		keys = append(keys, tone)
	}
	sort.Strings(keys)
	return keys
}

func writeVars(h hash.Hash, label string, vars Vars) {
	for _, key := range vars.Keys() {
		writeField(h, label, key+"="+vars[key])
	}
}

func writeField(h hash.Hash, label, value string) {
	h.Write([]byte(label))
	h.Write([]byte{0})
	h.Write([]byte(value))
	h.Write([]byte{0})
}
