package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the notification routes, which answer with {success, ...} bodies
// instead of the data/meta envelope.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListForUser handles GET /:userId/notifications
func (h *NotificationHandler) ListForUser(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return h.fail(c, err)
	}

	notifications, err := h.notificationUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return h.fail(c, err)
	}

	return response.Notifications(c, notifications)
}

// Delete handles DELETE /notifications/:id
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	message, err := h.notificationUC.Delete(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return response.Message(c, http.StatusOK, message)
}

// MarkAsRead handles PATCH /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.notificationUC.MarkAsRead(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return response.Message(c, http.StatusOK, "Notificación marcada como leída")
}

func (h *NotificationHandler) fail(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return response.Message(c, appErr.HTTPCode(), appErr.Message())
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Notification request failed",
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)

	return response.Message(c, http.StatusInternalServerError, "Error interno del servidor")
}
