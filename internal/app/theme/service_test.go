package theme

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themevars/internal/cache"
	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
	"github.com/alexisbeaulieu97/themevars/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/themevars/internal/ports"
)

type stubLoader struct {
	mu    sync.Mutex
	calls int
	set   *ports.ThemeSet
	err   error
}

func (l *stubLoader) Load(ctx context.Context, dir string) (*ports.ThemeSet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.set, l.err
}

type recordingFonts struct {
	mu     sync.Mutex
	loaded []theme.FontRef
	err    error
}

func (f *recordingFonts) Load(ctx context.Context, fonts []theme.FontRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = append(f.loaded, fonts...)
	return f.err
}

func (f *recordingFonts) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.loaded)
}

func newThemeSet(t *testing.T) *ports.ThemeSet {
	t.Helper()
	reg, err := theme.NewRegistry(
		theme.Definition{
			ID:        "base",
			ThemeVars: theme.Vars{"X": "A"},
			Resources: map[string]theme.Resource{
				"inter": {Font: &theme.FontRef{FontFamily: "Inter", Src: "url(/inter.woff2)"}},
			},
		},
		theme.Definition{
			ID:        "ocean",
			Extends:   []string{"base", "ghost"},
			ThemeVars: theme.Vars{"broken": "$nope"},
			Tones: map[string]theme.ToneDefinition{
				theme.ToneDark: {ThemeVars: theme.Vars{"X": "B"}},
			},
		},
	)
	require.NoError(t, err)
	return &ports.ThemeSet{Registry: reg}
}

func newTestService(t *testing.T, loader ports.ThemeLoader, fonts ports.FontLoader, memo *cache.Memo) (*Service, *logging.EventBuffer) {
	t.Helper()
	buffer := logging.NewEventBuffer(100)
	svc, err := NewService(Options{
		Loader: loader,
		Fonts:  fonts,
		Logger: logging.NewBufferedLogger(buffer),
		Memo:   memo,
		Dir:    "themes",
	})
	require.NoError(t, err)
	return svc, buffer
}

func TestNewServiceRequiresLoaderAndDir(t *testing.T) {
	_, err := NewService(Options{Dir: "themes"})
	require.Error(t, err)

	_, err = NewService(Options{Loader: &stubLoader{}})
	require.Error(t, err)
}

func TestServiceResolveLoadsLazilyAndMemoizes(t *testing.T) {
	loader := &stubLoader{set: newThemeSet(t)}
	memo, err := cache.New(8)
	require.NoError(t, err)
	svc, _ := newTestService(t, loader, nil, memo)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, theme.Request{ThemeID: "ocean", Tone: theme.ToneDark})
	require.NoError(t, err)
	assert.False(t, first.Cached)
	value, ok := first.Table.Get("X")
	require.True(t, ok)
	assert.Equal(t, "B", value)

	second, err := svc.Resolve(ctx, theme.Request{ThemeID: "ocean", Tone: theme.ToneDark})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Same(t, first.Table, second.Table)
	assert.Equal(t, 1, loader.calls)

	custom, err := svc.Resolve(ctx, theme.Request{ThemeID: "ocean", Tone: theme.ToneDark, Generators: []theme.Generator{}})
	require.NoError(t, err)
	assert.False(t, custom.Cached)
}

func TestServiceReportsMissingAndUnresolved(t *testing.T) {
	svc, buffer := newTestService(t, &stubLoader{set: newThemeSet(t)}, nil, nil)

	_, err := svc.Resolve(context.Background(), theme.Request{ThemeID: "ocean"})
	require.NoError(t, err)

	var warnings []string
	for _, entry := range buffer.Entries() {
		if entry.Level == logging.LevelWarn {
			warnings = append(warnings, entry.Msg)
		}
	}
	assert.Contains(t, warnings, "extends target not registered")
	assert.Contains(t, warnings, "dropped unresolved variable")
}

func TestServiceLoadsFontsInBackground(t *testing.T) {
	fonts := &recordingFonts{err: errors.New("offline")}
	svc, buffer := newTestService(t, &stubLoader{set: newThemeSet(t)}, fonts, nil)

	_, err := svc.Resolve(context.Background(), theme.Request{ThemeID: "ocean"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Wait(ctx))

	assert.Equal(t, 1, fonts.count())

	var failed bool
	for _, entry := range buffer.Entries() {
		if entry.Msg == "font loading failed" {
			failed = true
		}
	}
	assert.True(t, failed, "font loader errors are logged, not returned")
}

func TestServiceGet(t *testing.T) {
	svc, _ := newTestService(t, &stubLoader{set: newThemeSet(t)}, nil, nil)
	ctx := context.Background()

	value, err := svc.Get(ctx, theme.Request{ThemeID: "base"}, "X")
	require.NoError(t, err)
	assert.Equal(t, "A", value)

	_, err = svc.Get(ctx, theme.Request{ThemeID: "base"}, "missing")
	require.Error(t, err)
}

func TestServicePropagatesErrors(t *testing.T) {
	loadErr := errors.New("disk on fire")
	svc, _ := newTestService(t, &stubLoader{err: loadErr}, nil, nil)

	_, err := svc.Resolve(context.Background(), theme.Request{ThemeID: "ocean"})
	require.ErrorIs(t, err, loadErr)

	svc, buffer := newTestService(t, &stubLoader{set: newThemeSet(t)}, nil, nil)
	_, err = svc.Resolve(context.Background(), theme.Request{ThemeID: "nope"})
	require.True(t, theme.HasCode(err, theme.ErrCodeThemeNotFound))
	entries := buffer.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, logging.LevelError, entries[len(entries)-1].Level)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Resolve(ctx, theme.Request{ThemeID: "ocean"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestServiceThemes(t *testing.T) {
	svc, _ := newTestService(t, &stubLoader{set: newThemeSet(t)}, nil, nil)

	defs, err := svc.Themes(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "base", defs[0].ID)
	assert.Equal(t, "ocean", defs[1].ID)
}
