package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/nani-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	traced := SetTraceID(ctx)
	assert.Len(t, GetTraceID(traced), 32)
	assert.NotEqual(t, GetTraceID(traced), GetTraceID(SetTraceID(ctx)))

	assert.Empty(t, GetTraceID(context.WithValue(ctx, TraceIDKey, 123)))
	assert.Len(t, fallbackTraceID(), 32)
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, IsAdmin(context.Background()))
	assert.True(t, IsAdmin(context.WithValue(context.Background(), AdminContextKey, true)))
}

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusCreated, map[string]any{"ok": true})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	buf, log := logger.NewTestLogger(t)
	req := httptest.NewRequest(http.MethodPost, "/api/generate/comic", nil)
	ctx := SetTraceID(logger.WithLogger(req.Context(), log))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	cause := errors.New("openai call failed: Incorrect API key provided: sk-abcdefghijklmnopqrstuvwxyz123456")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "生成失敗", cause)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "生成失敗", resp.Error)
	assert.Equal(t, GetTraceID(ctx), resp.TraceID)
	assert.NotContains(t, w.Body.String(), "sk-")

	logs := buf.String()
	assert.Contains(t, logs, `"level":"ERROR"`)
	assert.NotContains(t, logs, "sk-abcdefghijklmnopqrstuvwxyz123456")
}

func TestRespondWithError_LogLevels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		opts   []ResponseOption
		level  string
	}{
		{"client error", http.StatusBadRequest, nil, "DEBUG"},
		{"rate limited", http.StatusTooManyRequests, nil, "WARN"},
		{"elevated", http.StatusUnauthorized, []ResponseOption{WithElevatedLogLevel()}, "WARN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, log := logger.NewTestLogger(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))

			RespondWithErrorAndLog(httptest.NewRecorder(), req, tt.status, "x", nil, tt.opts...)
			assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name" validate:"required"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"國語"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "國語", v.Name)
	assert.NoError(t, ValidateRequest(v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{bad`))
	assert.Error(t, DecodeJSON(req, &v))

	v.Name = ""
	assert.Error(t, ValidateRequest(v))
}
