package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themevars/pkg/errors"
)

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func fieldForTheme(index int, field string) string {
	return fmt.Sprintf("themes[%d].%s", index, field)
}

func fieldForComponent(name, field string) string {
	return fmt.Sprintf("components.%s.%s", name, field)
}
