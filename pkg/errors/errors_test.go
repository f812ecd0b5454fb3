package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("ocean.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "ocean.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "ocean.yaml:12")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("themes[1].extends", "extends cycle detected", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "themes[1].extends", validationErr.Field)
	require.Contains(t, validationErr.Message, "extends cycle detected")
}

func TestErrorStringsWithoutOptionalParts(t *testing.T) {
	t.Parallel()

	require.Equal(t, "parse error: forest.json: boom", NewParseError("forest.json", 0, stdErrors.New("boom")).Error())
	require.Equal(t, "validation error: themes is required", NewValidationError("", "themes is required", nil).Error())

	var nilParse *ParseError
	require.Empty(t, nilParse.Error())
	require.NoError(t, nilParse.Unwrap())
}
