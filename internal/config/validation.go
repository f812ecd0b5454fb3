package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
	themeerrors "github.com/alexisbeaulieu97/themevars/pkg/errors"
)

// ValidateThemeFile performs structural and cross-field validation on one theme document.
func ValidateThemeFile(file *ThemeFile) error {
	if file == nil {
		return themeerrors.NewValidationError("themes", "theme file is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(file); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(file.Themes))
	for i, doc := range file.Themes {
		if doc.ID == theme.RootThemeID {
			return themeerrors.NewValidationError(fieldForTheme(i, "id"), fmt.Sprintf("theme id %q is reserved", doc.ID), nil)
		}
		if _, exists := seen[doc.ID]; exists {
			return themeerrors.NewValidationError(fieldForTheme(i, "id"), fmt.Sprintf("duplicate theme id %q", doc.ID), nil)
		}
		seen[doc.ID] = i
	}

	return nil
}

// ValidateThemeSet checks the definitions gathered from every file together:
// ids must be unique and the extends graph must be acyclic.
func ValidateThemeSet(docs []ThemeDoc) error {
	seen := make(map[string]struct{}, len(docs))
	for i, doc := range docs {
		if _, exists := seen[doc.ID]; exists {
			return themeerrors.NewValidationError(fieldForTheme(i, "id"), fmt.Sprintf("duplicate theme id %q", doc.ID), nil)
		}
		seen[doc.ID] = struct{}{}
	}

	if cycle := detectCycle(docs); len(cycle) > 0 {
		return themeerrors.NewValidationError("extends", fmt.Sprintf("extends cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	return nil
}

// ValidateComponentsFile validates component declarations and the variable
// names inside tone-keyed defaults.
func ValidateComponentsFile(file *ComponentsFile) error {
	if file == nil {
		return themeerrors.NewValidationError("components", "components file is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(file); err != nil {
		return convertValidationError(err)
	}

	names := make([]string, 0, len(file.Components))
	for name := range file.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		doc := file.Components[name]
		for tone, vars := range doc.Defaults.Tones {
			for key := range vars {
				if err := v.Var(key, "var_name"); err != nil {
					return themeerrors.NewValidationError(fieldForComponent(name, "defaults."+tone), fmt.Sprintf("invalid variable name %q", key), err)
				}
			}
		}
	}

	return nil
}
