package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_MasksAndCorrelates(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := NewLogger(&buf, "mailbridge", nil, []string{" Authorization ", "body"})
	ctx := SetCorrelationID(context.Background(), "cid-1")

	// Act
	logger.InfoContext(ctx, "request received",
		"authorization", "Bearer secret",
		"payload", map[string]any{"subject": "Hi", "body": "Hello"},
		"raw", `{"body":"Hello","sender":"s@b.com"}`,
	)

	// Assert
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["severity"])
	assert.Equal(t, "cid-1", rec["_cID"])
	assert.Equal(t, "mailbridge", rec["service"])
	assert.Equal(t, "***", rec["authorization"])
	assert.Equal(t, map[string]any{"subject": "Hi", "body": "***"}, rec["payload"])
	assert.JSONEq(t, `{"body":"***","sender":"s@b.com"}`, rec["raw"].(string))
	assert.Contains(t, rec, "ts")
}

func TestGetCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(context.Background(), "abc")))
}

func TestMaskData_Nested(t *testing.T) {
	keys := BuildMaskKeys([]string{"secret"})

	got := MaskData([]any{map[string]any{"SECRET": 1, "keep": map[string]any{"secret": "x"}}}, keys)

	assert.Equal(t, []any{map[string]any{"SECRET": "***", "keep": map[string]any{"secret": "***"}}}, got)
}

func TestNewNoop(t *testing.T) {
	ins, err := New(context.Background(), nil)
	require.NoError(t, err)

	_, span := ins.Tracer("test").Start(context.Background(), "op")
	span.End()

	assert.NoError(t, ins.Shutdown(context.Background()))
}
