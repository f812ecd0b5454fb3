package fonts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
	"github.com/alexisbeaulieu97/themevars/internal/infrastructure/logging"
)

func TestLoggingLoaderRegistersFaces(t *testing.T) {
	buffer := logging.NewEventBuffer(10)
	loader := NewLoggingLoader(logging.NewBufferedLogger(buffer))

	inter := theme.FontRef{FontFamily: "Inter", FontWeight: "400 700", FontDisplay: "swap", Src: "url(/fonts/inter.woff2)"}
	err := loader.Load(context.Background(), []theme.FontRef{inter, inter})
	require.NoError(t, err)
	require.Equal(t, 1, loader.Registered())

	entries := buffer.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "font registered", entries[0].Msg)
	family, ok := entries[0].Field("font_family")
	require.True(t, ok)
	require.Equal(t, "Inter", family)
}

func TestLoggingLoaderReportsIncompleteFaces(t *testing.T) {
	loader := NewLoggingLoader(logging.NewNoOpLogger())

	err := loader.Load(context.Background(), []theme.FontRef{
		{FontFamily: "Broken"},
		{FontFamily: "Inter", Src: "url(/fonts/inter.woff2)"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Broken")
	require.Equal(t, 1, loader.Registered())
}

func TestLoggingLoaderRespectsCancellation(t *testing.T) {
	loader := NewLoggingLoader(logging.NewNoOpLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loader.Load(ctx, []theme.FontRef{{FontFamily: "Inter", Src: "x"}})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, loader.Registered())
}
