package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger_LevelsByStatus(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		level  zapcore.Level
	}{
		{"ok", "/guildandgrove/", http.StatusOK, zapcore.InfoLevel},
		{"not found", "/guildandgrove/missing", http.StatusNotFound, zapcore.WarnLevel},
		{"server error", "/guildandgrove/", http.StatusInternalServerError, zapcore.ErrorLevel},
		{"health check", "/guildandgrove/health", http.StatusOK, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			mw := RequestLogger(zap.New(core), "http")

			h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			assert.Equal(t, int64(tt.status), entries[0].ContextMap()["http_status_code"])
		})
	}
}

func TestRequestLogger_NilLoggerPanics(t *testing.T) {
	assert.Panics(t, func() { RequestLogger(nil, "http") })
}

func TestInit_InvalidLevel(t *testing.T) {
	_, err := Init("chatty")
	assert.Error(t, err)
}
