package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/dashboard/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expected       dto.HealthResponse
	}{
		{"database up", nil, http.StatusOK, dto.HealthResponse{Status: "healthy", Database: "up"}},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, dto.HealthResponse{Status: "unhealthy", Database: "down"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", NewHealthHandler(stubPinger{err: tt.pingErr}).Check)

			w := testutil.PerformRequest(t, engine, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expected, testutil.DecodeJSON[dto.HealthResponse](t, w))
		})
	}
}
