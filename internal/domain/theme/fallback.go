package theme

import (
	"strings"
	"unicode"
)

// maxSubsetModifiers bounds the modifier subsets tried for one name; longer
// names fall back to trailing truncation only.
const maxSubsetModifiers = 8

// FallbackMatcher aliases component-qualified variables that have no value to
// the most specific registered pattern that does. Patterns are registered once,
// independent of any theme.
type FallbackMatcher struct {
	patterns map[string]struct{}
}

// NewFallbackMatcher registers the recognized variable names.
func NewFallbackMatcher(patterns ...string) *FallbackMatcher {
	m := &FallbackMatcher{patterns: make(map[string]struct{}, len(patterns))}
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			m.patterns[p] = struct{}{}
		}
	}
	return m
}

// Len reports the number of registered patterns.
func (m *FallbackMatcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.patterns)
}

// Match returns the pattern that requested should alias to: the most specific
// registered candidate whose value resolves to something non-empty in table.
func (m *FallbackMatcher) Match(table Vars, requested string) (string, bool) {
	return m.match(newRefResolver(table), requested)
}

func (m *FallbackMatcher) match(r *refResolver, requested string) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, candidate := range FallbackCandidates(requested) {
		if candidate == requested {
			continue
		}
		if _, ok := m.patterns[candidate]; !ok {
			continue
		}
		if !r.resolves(candidate) || strings.TrimSpace(r.literal(candidate)) == "" {
			continue
		}
		return candidate, true
	}
	return "", false
}

// Aliases returns requested -> "$pattern" entries for every requested name
// that has no value of its own. Existing names are never aliased.
func (m *FallbackMatcher) Aliases(table Vars, requested []string) Vars {
	out := Vars{}
	r := newRefResolver(table)
	for _, name := range requested {
		if _, explicit := table[name]; explicit {
			continue
		}
		if match, ok := m.match(r, name); ok {
			out[name] = "$" + match
		}
	}
	return out
}

// FallbackCandidates lists the less specific names for a variable such as
// "color-bg-Button-primary-hover", most specific first. The property and the
// component (the first capitalized segment) are always kept; modifiers are
// dropped, keeping more of them first and, among equals, the earlier ones.
func FallbackCandidates(name string) []string {
	segments := strings.Split(name, "-")
	ci := -1
	for i, seg := range segments {
		if seg != "" && unicode.IsUpper(rune(seg[0])) {
			ci = i
			break
		}
	}
	if ci <= 0 || ci == len(segments)-1 {
		return nil
	}

	head := strings.Join(segments[:ci+1], "-")
	mods := segments[ci+1:]

	if len(mods) > maxSubsetModifiers {
		out := make([]string, 0, len(mods))
		for keep := len(mods) - 1; keep >= 0; keep-- {
			out = append(out, joinName(head, mods[:keep]))
		}
		return out
	}

	var out []string
	for keep := len(mods) - 1; keep >= 0; keep-- {
		for _, idx := range combinations(len(mods), keep) {
			picked := make([]string, len(idx))
			for i, j := range idx {
				picked[i] = mods[j]
			}
			out = append(out, joinName(head, picked))
		}
	}
	return out
}

func joinName(head string, mods []string) string {
	if len(mods) == 0 {
		return head
	}
	return head + "-" + strings.Join(mods, "-")
}

// combinations yields k-element index sets of [0,n) in lexicographic order.
func combinations(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
