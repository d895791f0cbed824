package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopets/internal/pkg/logger"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthHandler(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		db         Pinger
		wantCode   int
		wantStatus string
	}{
		{name: "banco disponível", db: fakePinger{}, wantCode: http.StatusOK, wantStatus: "healthy"},
		{name: "banco fora", db: fakePinger{err: errors.New("conexão recusada")}, wantCode: http.StatusServiceUnavailable, wantStatus: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.db, logger.NewNop())
			h.now = func() time.Time { return fixed }

			rr := httptest.NewRecorder()
			h.HealthHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantCode, rr.Code)
			var body Status
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.True(t, fixed.Equal(body.Timestamp))
		})
	}
}
