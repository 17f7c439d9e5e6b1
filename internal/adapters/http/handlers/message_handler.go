package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"crewledger/internal/adapters/http/middleware"
	"crewledger/internal/core/domain"
	"crewledger/internal/core/services"
	"crewledger/internal/pkg/pagination"
	"crewledger/internal/pkg/request"
	"crewledger/internal/pkg/response"
)

// MessageHandler handles company-internal messaging endpoints
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a message request body
type SendMessageRequest struct {
	RecipientID uint   `json:"recipientId" validate:"required"`
	Body        string `json:"body" validate:"required,max=5000"`
}

// Send sends a message to a colleague
// @Summary Send message
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendMessageRequest true "Message data"
// @Success 201 {object} models.Message
// @Failure 400 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /api/messages [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req SendMessageRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	m, err := h.messageService.Send(c.Context(), user, req.RecipientID, req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "Recipient not found")
		}
		return response.InternalServerError(c)
	}

	return response.Created(c, m)
}

// List returns messages sent to or by the caller, newest first
// @Summary List messages
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /api/messages [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	params := pagination.GetParams(c)

	messages, total, err := h.messageService.List(c.Context(), user.ID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, pagination.NewResponse(messages, params, total))
}

// MarkRead marks a received message as read
// @Summary Mark message read
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} models.Message
// @Failure 404 {object} apperr.Error
// @Router /api/messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	m, err := h.messageService.MarkRead(c.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			return response.NotFound(c, "Message not found")
		}
		return response.InternalServerError(c)
	}

	return response.JSON(c, m)
}
