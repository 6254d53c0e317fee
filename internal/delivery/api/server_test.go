package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/delivery/api/router"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/metrics"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServerEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true}}
	cfg.Env.ServiceName = "marketplace"
	cfg.HTTP.MaxRequestBodySize = "1KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	e := NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.NewManager(cfg),
		RouterParams: router.RouterParams{
			NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
				NotificationUC: notifications,
				Logger:         logger,
			}),
		},
	})

	return e, notifications
}

func TestNewEcho_Health(t *testing.T) {
	e, _ := newTestServerEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestNewEcho_RecordsRequestMetrics(t *testing.T) {
	e, notifications := newTestServerEcho(t)
	notifications.EXPECT().ListForUser(mock.Anything, uint(7)).Return([]*entity.Notification{}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/7/notifications", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, defaultMetricsPath, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `marketplace_http_requests_total{method="GET",route="/:userId/notifications",status="200"} 1`)
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e, _ := newTestServerEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/buyers", strings.NewReader(strings.Repeat("x", 2048)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"HTTP_ERROR"`)
}
