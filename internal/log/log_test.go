package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/vyskocilm/extally/internal/log"

	"github.com/stretchr/testify/require"
)

func TestContextAttrs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		scenario string // description of this test case
		// Named input parameters for target function.
		given []slog.Attr
		then  string
	}{
		{
			scenario: "nil attrs",
			given:    nil,
			then:     `{"level":"INFO","msg":"tally done","keys":4}`,
		},
		{
			scenario: "empty attrs",
			given:    []slog.Attr{},
			then:     `{"level":"INFO","msg":"tally done","keys":4}`,
		},
		{
			scenario: "single attr",
			given: []slog.Attr{
				slog.String("cmd", "tally"),
			},
			then: `{"level":"INFO","msg":"tally done","keys":4,"cmd":"tally"}`,
		},
		{
			scenario: "slog.Group",
			given: []slog.Attr{
				slog.Group("extally", slog.String("cmd", "tally"), slog.Int("pid", 42)),
			},
			then: `{"level":"INFO","msg":"tally done","keys":4,"extally":{"cmd":"tally","pid":42}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
				AddSource: false,
				Level:     slog.LevelDebug,
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			})
			ctxHandler := log.NewContextHandler(base)
			logger := slog.New(ctxHandler)

			ctx := log.ContextAttrs(t.Context(), tt.given...)
			logger.InfoContext(ctx, "tally done", slog.Int("keys", 4))

			t.Logf("log output: %s", buf.String())
			require.JSONEq(t, tt.then, buf.String())
		})
	}
}

func TestContextAttrsAccumulate(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	logger := slog.New(log.NewContextHandler(base))

	ctx := log.ContextAttrs(t.Context(), slog.String("cmd", "tally"))
	ctx = log.ContextAttrs(ctx, slog.Int("pid", 42))
	logger.InfoContext(ctx, "tally done")

	require.JSONEq(t,
		`{"level":"INFO","msg":"tally done","cmd":"tally","pid":42}`,
		buf.String())
}

func TestNew(t *testing.T) {
	t.Parallel()
	require.NotNil(t, log.New(true))
	require.NotNil(t, log.New(false))
}
