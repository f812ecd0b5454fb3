package config

import (
	"fmt"
	"os"
	"regexp"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/themevars/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseThemeFile loads a theme document from disk, validates it, and returns its definitions.
func ParseThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return DecodeThemeFile(path, data)
}

// DecodeThemeFile parses YAML or JSON theme data. path is only used for error reporting.
func DecodeThemeFile(path string, data []byte) (*ThemeFile, error) {
	data, err := normalizeEncoding(data)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}

	var file ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, themeerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateThemeFile(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// ParseComponentsFile loads the component defaults document from disk.
func ParseComponentsFile(path string) (*ComponentsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return DecodeComponentsFile(path, data)
}

// DecodeComponentsFile parses YAML or JSON component defaults.
func DecodeComponentsFile(path string, data []byte) (*ComponentsFile, error) {
	data, err := normalizeEncoding(data)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}

	var file ComponentsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, themeerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateComponentsFile(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// normalizeEncoding converts UTF-16 input to UTF-8 and strips a byte order
// mark. Input without a BOM is passed through as UTF-8.
func normalizeEncoding(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(encoding.Nop.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("decode text: %w", err)
	}
	return out, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
