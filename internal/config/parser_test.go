package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
	themeerrors "github.com/alexisbeaulieu97/themevars/pkg/errors"
)

func TestParseThemeFile(t *testing.T) {
	t.Parallel()

	single := `id: ocean
name: Ocean
extends: base
themeVars:
  const-color-primary: "#0e7490"
  line-height: 1.6
tones:
  dark:
    themeVars:
      color-bg: "#001018"
resources:
  logo: ./ocean.svg
  inter:
    fontFamily: Inter
    fontWeight: "400 700"
    fontDisplay: swap
    src: url(/fonts/inter.woff2)
`

	list := `themes:
  - id: base
  - id: forest
    extends: [base, root]
    themeVars:
      color-primary: "$color-success"
`

	invalidYAML := `id: ocean
themeVars: [1, 2]
`

	badID := `id: "Ocean Blue"
`

	reserved := `id: root
`

	duplicate := `themes:
  - id: a
  - id: a
`

	badVarName := `id: ocean
themeVars:
  "1-bad": red
`

	badFont := `id: ocean
resources:
  inter:
    fontFamily: Inter
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, file *ThemeFile, err error)
	}{
		{
			name:     "single definition is parsed",
			contents: single,
			assert: func(t *testing.T, file *ThemeFile, err error) {
				require.NoError(t, err)
				require.Len(t, file.Themes, 1)

				def := file.Themes[0].Definition()
				require.Equal(t, "ocean", def.ID)
				require.Equal(t, []string{"base"}, def.Extends)
				require.Equal(t, "1.6", def.ThemeVars["line-height"])
				require.Equal(t, "#001018", def.ToneVars(theme.ToneDark)["color-bg"])
				require.Equal(t, "./ocean.svg", def.Resources["logo"].URL)
				require.True(t, def.Resources["inter"].IsFont())
				require.Equal(t, "400 700", def.Resources["inter"].Font.FontWeight)
			},
		},
		{
			name:     "theme list is parsed",
			contents: list,
			assert: func(t *testing.T, file *ThemeFile, err error) {
				require.NoError(t, err)
				require.Len(t, file.Themes, 2)
				require.Equal(t, StringList{"base", "root"}, file.Themes[1].Extends)
				require.Equal(t, "$color-success", file.Themes[1].ThemeVars["color-primary"])
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, file *ThemeFile, err error) {
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "theme id must be slug-like",
			contents: badID,
			assert: func(t *testing.T, file *ThemeFile, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "themes[0].id", validationErr.Field)
				require.Contains(t, validationErr.Message, "theme_id")
			},
		},
		{
			name:     "root id is reserved",
			contents: reserved,
			assert: func(t *testing.T, file *ThemeFile, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "reserved")
			},
		},
		{
			name:     "duplicate ids in one file",
			contents: duplicate,
			assert: func(t *testing.T, file *ThemeFile, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "themes[1].id", validationErr.Field)
			},
		},
		{
			name:     "variable names are validated",
			contents: badVarName,
			assert: func(t *testing.T, file *ThemeFile, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "var_name")
			},
		},
		{
			name:     "font resources need a source",
			contents: badFont,
			assert: func(t *testing.T, file *ThemeFile, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "src")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFile(t, "theme.yaml", tc.contents)
			file, err := ParseThemeFile(path)
			tc.assert(t, file, err)
		})
	}
}

func TestDecodeThemeFile_JSON(t *testing.T) {
	t.Parallel()

	file, err := DecodeThemeFile("forest.json", []byte(`{"id": "forest", "extends": ["base"], "themeVars": {"space-base": "4px"}}`))
	require.NoError(t, err)
	require.Equal(t, "forest", file.Themes[0].ID)
	require.Equal(t, "4px", file.Themes[0].ThemeVars["space-base"])
}

func TestDecodeThemeFile_ByteOrderMarks(t *testing.T) {
	t.Parallel()

	doc := "id: forest\nthemeVars:\n  space-base: 4px\n"

	utf8BOM := append([]byte("\xef\xbb\xbf"), doc...)
	file, err := DecodeThemeFile("forest.yaml", utf8BOM)
	require.NoError(t, err)
	require.Equal(t, "forest", file.Themes[0].ID)

	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(doc))
	require.NoError(t, err)
	file, err = DecodeThemeFile("forest.yaml", utf16)
	require.NoError(t, err)
	require.Equal(t, "4px", file.Themes[0].ThemeVars["space-base"])
}

func TestParseThemeFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseThemeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.True(t, os.IsNotExist(parseErr.Err))
}

func TestParseComponentsFile(t *testing.T) {
	t.Parallel()

	contents := `components:
  Card:
    themeVars: [padding-Card, color-bg-Card]
    defaults:
      padding-Card: $space-4
  Button:
    themeVars:
      - color-bg-Button
      - color-bg-Button-primary
    defaults:
      radius-Button: $radius
      light:
        color-bg-Button: $color-primary
      dark:
        color-bg-Button: $color-primary-400
`

	file, err := ParseComponentsFile(writeTempFile(t, "components.yaml", contents))
	require.NoError(t, err)

	defaults := file.Defaults()
	require.Len(t, defaults, 2)
	require.Equal(t, "Button", defaults[0].Component)
	require.Equal(t, "Card", defaults[1].Component)

	button := defaults[0]
	require.Equal(t, []string{"color-bg-Button", "color-bg-Button-primary"}, button.Declared)
	require.Equal(t, theme.Vars{"radius-Button": "$radius"}, button.Common)
	require.Equal(t, "$color-primary", button.Tones[theme.ToneLight]["color-bg-Button"])
	require.Equal(t, "$color-primary-400", button.Tones[theme.ToneDark]["color-bg-Button"])
}

func TestParseComponentsFile_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing components": "other: true\n",
		"bad declared name": `components:
  Button:
    themeVars: ["not valid"]
`,
		"bad tone variable": `components:
  Button:
    defaults:
      dark:
        "bad name": red
`,
	}

	for name, contents := range cases {
		contents := contents
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeComponentsFile("components.yaml", []byte(contents))
			var validationErr *themeerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateThemeSet(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateThemeSet([]ThemeDoc{{ID: "a"}, {ID: "b", Extends: StringList{"a"}}}))

	err := ValidateThemeSet([]ThemeDoc{{ID: "a", Extends: StringList{"b"}}, {ID: "b", Extends: StringList{"a"}}})
	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "a -> b -> a")

	err = ValidateThemeSet([]ThemeDoc{{ID: "a"}, {ID: "a"}})
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "duplicate")
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
