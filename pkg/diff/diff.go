// Package diff compares resolved variable tables.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Kind classifies one variable change.
type Kind string

const (
	Added   Kind = "added"
	Removed Kind = "removed"
	Changed Kind = "changed"
)

// Change describes how one variable differs between two tables.
type Change struct {
	Name string
	Kind Kind
	Old  string
	New  string
}

// Changes lists the differences between before and after, ordered by name.
func Changes(before, after map[string]string) []Change {
	names := make(map[string]struct{}, len(before)+len(after))
	for name := range before {
		names[name] = struct{}{}
	}
	for name := range after {
		names[name] = struct{}{}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	var changes []Change
	for _, name := range sorted {
		oldValue, inBefore := before[name]
		newValue, inAfter := after[name]
		switch {
		case inBefore && !inAfter:
			changes = append(changes, Change{Name: name, Kind: Removed, Old: oldValue})
		case !inBefore && inAfter:
			changes = append(changes, Change{Name: name, Kind: Added, New: newValue})
		case oldValue != newValue:
			changes = append(changes, Change{Name: name, Kind: Changed, Old: oldValue, New: newValue})
		}
	}
	return changes
}

// Unified renders before and after as sorted `name: value` lines and returns
// their unified diff. Identical tables give an empty string.
func Unified(before, after map[string]string, beforeLabel, afterLabel string, context int) (string, error) {
	if context < 0 {
		context = 0
	}
	ud := difflib.UnifiedDiff{
		A:        tableLines(before),
		B:        tableLines(after),
		FromFile: beforeLabel,
		ToFile:   afterLabel,
		Context:  context,
	}
	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("unified diff: %w", err)
	}
	return truncate(out), nil
}

// InlineValue marks the character-level edits between two values as
// [-removed-]{+added+}.
func InlineValue(before, after string) string {
	if before == after {
		return before
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(d.Text)
			sb.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(d.Text)
			sb.WriteString("+}")
		}
	}
	return sb.String()
}

func tableLines(table map[string]string) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %s\n", name, table[name])
	}
	return lines
}

func truncate(out string) string {
	lines := strings.Split(out, "\n")
	if len(lines) <= maxDiffLines {
		return out
	}
	return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
}
