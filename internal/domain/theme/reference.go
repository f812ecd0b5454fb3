package theme

import (
	"sort"
	"strings"
)

// UnresolvedReason says why a variable was dropped from the resolved table.
type UnresolvedReason string

const (
	ReasonUndefined  UnresolvedReason = "undefined"
	ReasonCycle      UnresolvedReason = "cycle"
	ReasonDependency UnresolvedReason = "dependency"
)

// Unresolved describes a variable that was dropped because one of its
// references could not be resolved.
type Unresolved struct {
	Name      string
	Reference string
	Reason    UnresolvedReason
}

// reference is one $identifier occurrence inside a value.
type reference struct {
	name       string
	start, end int
}

func isIdentByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// scanReferences finds top-level $identifier tokens. A '$' not followed by an
// identifier character is ordinary text.
func scanReferences(value string) []reference {
	var refs []reference
	for i := 0; i < len(value); i++ {
		if value[i] != '$' {
			continue
		}
		j := i + 1
		for j < len(value) && isIdentByte(value[j]) {
			j++
		}
		if j == i+1 {
			continue
		}
		refs = append(refs, reference{name: value[i+1 : j], start: i, end: j})
		i = j - 1
	}
	return refs
}

// aliasTarget reports whether value is exactly one reference, like "$color-primary-500".
func aliasTarget(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	refs := scanReferences(trimmed)
	if len(refs) != 1 || refs[0].start != 0 || refs[0].end != len(trimmed) {
		return "", false
	}
	return refs[0].name, true
}

// CSSVarName returns the custom property name for a variable.
func CSSVarName(prefix, name string) string {
	if prefix == "" {
		return "--" + name
	}
	return "--" + prefix + "-" + name
}

// RewriteEmbedded replaces every $identifier in value with var(--<prefix>-<identifier>).
func RewriteEmbedded(value, prefix string) string {
	refs := scanReferences(value)
	if len(refs) == 0 {
		return value
	}
	var b strings.Builder
	last := 0
	for _, ref := range refs {
		b.WriteString(value[last:ref.start])
		b.WriteString("var(")
		b.WriteString(CSSVarName(prefix, ref.name))
		b.WriteString(")")
		last = ref.end
	}
	b.WriteString(value[last:])
	return b.String()
}

const (
	stateUnvisited = iota
	stateVisiting
	stateResolved
	stateDropped
)

type refResolver struct {
	in      Vars
	state   map[string]int
	stack   []string
	dropped map[string]Unresolved
}

// ResolveReferences turns $name indirection into output-ready values.
// Full-value aliases are chased and inlined; references embedded in a larger
// literal become var(--<prefix>-<name>) so the surrounding CSS stays live.
//
// A variable that references an undefined name, takes part in a reference
// cycle, or depends on such a variable is dropped and reported; no "$name"
// text ever reaches the output.
func ResolveReferences(in Vars, prefix string) (Vars, []Unresolved) {
	r := newRefResolver(in)
	names := in.Keys()
	for _, name := range names {
		r.visit(name)
	}

	out := make(Vars, len(in))
	for _, name := range names {
		if r.state[name] != stateResolved {
			continue
		}
		out[name] = RewriteEmbedded(r.literal(name), prefix)
	}

	unresolved := make([]Unresolved, 0, len(r.dropped))
	for _, u := range r.dropped {
		unresolved = append(unresolved, u)
	}
	sort.Slice(unresolved, func(i, j int) bool {
		return unresolved[i].Name < unresolved[j].Name
	})
	return out, unresolved
}

func newRefResolver(in Vars) *refResolver {
	return &refResolver{
		in:      in,
		state:   make(map[string]int, len(in)),
		dropped: make(map[string]Unresolved),
	}
}

// resolves reports whether name is defined and every reference reachable
// from it resolves.
func (r *refResolver) resolves(name string) bool {
	if _, ok := r.in[name]; !ok {
		return false
	}
	return r.visit(name)
}

func (r *refResolver) visit(name string) bool {
	switch r.state[name] {
	case stateResolved:
		return true
	case stateDropped:
		return false
	case stateVisiting:
		// Every name on the stack from the first occurrence is part of the cycle.
		start := indexOf(r.stack, name)
		for _, member := range r.stack[start:] {
			r.drop(member, name, ReasonCycle)
		}
		return false
	}

	r.state[name] = stateVisiting
	r.stack = append(r.stack, name)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	for _, ref := range scanReferences(r.in[name]) {
		if _, ok := r.in[ref.name]; !ok {
			r.drop(name, ref.name, ReasonUndefined)
			return false
		}
		if !r.visit(ref.name) {
			r.drop(name, ref.name, ReasonDependency)
			return false
		}
	}

	if r.state[name] == stateDropped {
		return false
	}
	r.state[name] = stateResolved
	return true
}

// drop records the first reason a name was rejected.
func (r *refResolver) drop(name, ref string, reason UnresolvedReason) {
	r.state[name] = stateDropped
	if _, ok := r.dropped[name]; ok {
		return
	}
	r.dropped[name] = Unresolved{Name: name, Reference: ref, Reason: reason}
}

// literal chases full-value aliases of a resolved name.
func (r *refResolver) literal(name string) string {
	value := r.in[name]
	for {
		target, ok := aliasTarget(value)
		if !ok {
			return value
		}
		value = r.in[target]
	}
}
