package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"crewledger/internal/adapters/http/middleware"
	"crewledger/internal/core/domain"
	"crewledger/internal/core/services"
	"crewledger/internal/pkg/pagination"
	"crewledger/internal/pkg/response"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notifyService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifyService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifyService: notifyService}
}

// List returns the caller's notifications, newest first
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	params := pagination.GetParams(c)

	items, total, err := h.notifyService.List(c.Context(), user.ID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, pagination.NewResponse(items, params, total))
}

// MarkRead marks one notification as read
// @Summary Mark notification read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} models.Notification
// @Failure 404 {object} apperr.Error
// @Router /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	n, err := h.notifyService.MarkRead(c.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return response.NotFound(c, "Notification not found")
		}
		return response.InternalServerError(c)
	}

	return response.JSON(c, n)
}

// MarkAllRead marks every unread notification as read
// @Summary Mark all notifications read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if err := h.notifyService.MarkAllRead(c.Context(), user.ID); err != nil {
		return response.InternalServerError(c)
	}

	return response.Message(c, "All notifications marked as read")
}
