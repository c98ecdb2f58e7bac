package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogContextAccumulates(t *testing.T) {
	ctx := WithTrigger(context.Background(), TriggerChange)
	ctx = WithSequence(ctx, 3)
	ctx = WithConfigPath(ctx, "notesite.yaml")

	assert.Equal(t, LogContext{Trigger: TriggerChange, Sequence: 3, ConfigPath: "notesite.yaml"}, GetContext(ctx))
	assert.Equal(t, LogContext{}, GetContext(context.Background()))
}

func TestContextLoggingIncludesAttributes(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, true, slog.LevelDebug)

	ctx := WithSequence(WithTrigger(context.Background(), TriggerStartup), 1)
	InfoContext(ctx, "Build complete", slog.Int("count", 2))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "Build complete", rec["msg"])
	assert.Equal(t, "startup", rec["trigger"])
	assert.InDelta(t, 1, rec["sequence"], 0)
	assert.InDelta(t, 2, rec["count"], 0)
	assert.NotContains(t, rec, "config")
}

func TestSetup_RespectsLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, false, slog.LevelWarn)
	DebugContext(context.Background(), "hidden")
	InfoContext(context.Background(), "hidden too")
	WarnContext(context.Background(), "shown")
	ErrorContext(context.Background(), "also shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, `msg="also shown"`)
}
