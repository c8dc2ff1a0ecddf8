package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescan/qrmenu/internal/interfaces/http/handlers/testutil"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func TestHealthHandler(t *testing.T) {
	ok := PingerFunc(func(ctx context.Context) error { return nil })
	down := PingerFunc(func(ctx context.Context) error { return errors.New("dial tcp: refused") })

	t.Run("healthy", func(t *testing.T) {
		h := NewHealthHandler(map[string]Pinger{"database": ok, "redis": ok}, logger.NewNopLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

		h.HealthCheck(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var body healthBody
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "ok", body.Checks["redis"])
	})

	t.Run("dependency down", func(t *testing.T) {
		h := NewHealthHandler(map[string]Pinger{"database": ok, "redis": down}, logger.NewNopLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

		h.HealthCheck(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body healthBody
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, "unreachable", body.Checks["redis"])
		assert.Equal(t, "ok", body.Checks["database"])
	})
}
