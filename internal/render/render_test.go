package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

func resolveFixture(t *testing.T, prefix string) *theme.Table {
	t.Helper()
	reg, err := theme.NewRegistry(theme.Definition{
		ID: "ocean",
		ThemeVars: theme.Vars{
			"zz-brand":  "#0e7490",
			"zz-label":  "Ocean",
			"zz-accent": "$zz-brand",
			"zz-shadow": "0 1px 2px $zz-brand",
			"zz-broken": "$missing",
		},
		Resources: map[string]theme.Resource{
			"inter": {Font: &theme.FontRef{FontFamily: "Inter", FontWeight: "400 700", FontDisplay: "swap", Src: "url(/fonts/inter.woff2)"}},
			"logo":  {URL: "./ocean.svg"},
		},
	})
	require.NoError(t, err)

	table, err := theme.Resolve(reg, nil, theme.Request{ThemeID: "ocean", Prefix: prefix})
	require.NoError(t, err)
	return table
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":        FormatCSS,
		"css":     FormatCSS,
		" JSON ":  FormatJSON,
		"table":   FormatTable,
		"preview": FormatPreview,
	}
	for input, want := range cases {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFormat("yaml")
	require.Error(t, err)
}

func TestCSS(t *testing.T) {
	table := resolveFixture(t, "ui")

	var buf bytes.Buffer
	require.NoError(t, CSS(&buf, table, CSSOptions{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "@font-face {\n"))
	assert.Contains(t, out, "  font-family: \"Inter\";\n")
	assert.Contains(t, out, "  font-weight: 400 700;\n")
	assert.Contains(t, out, "  src: url(/fonts/inter.woff2);\n")
	assert.Contains(t, out, ":root {\n")
	assert.Contains(t, out, "  --ui-zz-brand: #0e7490;\n")
	assert.Contains(t, out, "  --ui-zz-accent: #0e7490;\n")
	assert.Contains(t, out, "  --ui-zz-shadow: 0 1px 2px var(--ui-zz-brand);\n")
	assert.NotContains(t, out, "zz-broken")
	assert.NotContains(t, out, "$")
	assert.True(t, strings.HasSuffix(out, "}\n"))

	accent := strings.Index(out, "--ui-zz-accent")
	brand := strings.Index(out, "--ui-zz-brand")
	assert.Less(t, accent, brand, "properties are sorted by name")
}

func TestCSSOptions(t *testing.T) {
	table := resolveFixture(t, "app")

	var buf bytes.Buffer
	require.NoError(t, CSS(&buf, table, CSSOptions{Selector: `[data-theme="ocean"]`, OmitFontFaces: true}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `[data-theme="ocean"] {`))
	assert.NotContains(t, out, "@font-face")
	assert.Contains(t, out, "--app-zz-brand: #0e7490;")
}

func TestJSON(t *testing.T) {
	table := resolveFixture(t, "")

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, table))

	var payload struct {
		Theme      string            `json:"theme"`
		Tone       string            `json:"tone"`
		Prefix     string            `json:"prefix"`
		Chain      []string          `json:"chain"`
		Count      int               `json:"count"`
		Vars       map[string]string `json:"vars"`
		Fonts      []map[string]any  `json:"fonts"`
		Unresolved []map[string]any  `json:"unresolved"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))

	assert.Equal(t, "ocean", payload.Theme)
	assert.Equal(t, theme.ToneLight, payload.Tone)
	assert.Equal(t, theme.DefaultPrefix, payload.Prefix)
	assert.Equal(t, []string{theme.RootThemeID, "ocean"}, payload.Chain)
	assert.Equal(t, table.Len(), payload.Count)
	assert.Equal(t, "#0e7490", payload.Vars["--ui-zz-brand"])
	require.Len(t, payload.Fonts, 1)
	assert.Equal(t, "Inter", payload.Fonts[0]["fontFamily"])
	require.Len(t, payload.Unresolved, 1)
	assert.Equal(t, "zz-broken", payload.Unresolved[0]["name"])
	assert.Equal(t, "undefined", payload.Unresolved[0]["reason"])
}

func TestTable(t *testing.T) {
	table := resolveFixture(t, "ui")

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, table))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, table.Len()+1)
	assert.Regexp(t, `^NAME\s+PROPERTY\s+VALUE$`, lines[0])
	assert.Contains(t, buf.String(), "--ui-zz-label")
}

func TestPreview(t *testing.T) {
	table := resolveFixture(t, "ui")

	var buf bytes.Buffer
	require.NoError(t, Preview(&buf, table))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "ocean (light)"))
	assert.Contains(t, out, "zz-brand")
	assert.Contains(t, out, "#0e7490")
	assert.NotContains(t, out, "zz-label")
	assert.NotContains(t, out, "zz-shadow")
}

func TestWriteDispatches(t *testing.T) {
	table := resolveFixture(t, "ui")

	for _, format := range Formats {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, format, table), format)
		assert.NotZero(t, buf.Len(), format)
	}

	require.Error(t, Write(&bytes.Buffer{}, Format("xml"), table))
}
