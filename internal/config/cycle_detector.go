package config

import (
	"sort"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

// detectCycle returns the theme ids participating in an extends cycle, or nil
// if no cycle exists. Parents that name no known theme, and the synthetic
// root, are ignored.
func detectCycle(docs []ThemeDoc) []string {
	known := make(map[string]bool, len(docs))
	for _, doc := range docs {
		known[doc.ID] = true
	}

	graph := make(map[string][]string, len(docs))
	for _, doc := range docs {
		parents := make([]string, 0, len(doc.Extends))
		for _, parent := range doc.Extends {
			if parent != theme.RootThemeID && known[parent] {
				parents = append(parents, parent)
			}
		}
		graph[doc.ID] = append(graph[doc.ID], parents...)
	}

	visiting := make(map[string]bool, len(docs))
	visited := make(map[string]bool, len(docs))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		for _, parent := range graph[node] {
			if !visited[parent] {
				if visiting[parent] {
					idx := indexOf(stack, parent)
					if idx >= 0 {
						cycle = append([]string{}, stack[idx:]...)
						cycle = append(cycle, parent)
					}
					return true
				}
				if dfs(parent) {
					return true
				}
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	ids := make([]string, 0, len(graph))
	for id := range graph {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if visited[id] {
			continue
		}
		if dfs(id) {
			break
		}
	}

	return cycle
}

// DetectExtendsCycle reports the first extends cycle across the given themes.
func DetectExtendsCycle(docs []ThemeDoc) []string {
	return detectCycle(docs)
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
