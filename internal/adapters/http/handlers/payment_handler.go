package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"crewledger/internal/adapters/http/middleware"
	"crewledger/internal/core/domain"
	"crewledger/internal/core/services"
	"crewledger/internal/pkg/pagination"
	"crewledger/internal/pkg/request"
	"crewledger/internal/pkg/response"
)

// PaymentHandler handles personnel payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentRequest represents a personnel payment request body
type PaymentRequest struct {
	PersonnelID uint   `json:"personnelId" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Note        string `json:"note" validate:"omitempty,max=1000"`
}

// Create records a payment and its ledger entry in one step
// @Summary Record personnel payment
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PaymentRequest true "Payment data"
// @Success 201 {object} models.PersonnelPayment
// @Failure 400 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /api/personnel-payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req PaymentRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return response.BadRequest(c, "date must be a date in YYYY-MM-DD format")
	}

	payment, err := h.paymentService.Create(c.Context(), user, &services.PaymentInput{
		PersonnelID: req.PersonnelID,
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
		Note:        req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPersonnelNotFound):
			return response.NotFound(c, "Personnel record not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "amount must be a positive decimal with at most 2 decimal places")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Created(c, payment)
}

// Get returns one personnel payment
// @Summary Get personnel payment
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} models.PersonnelPayment
// @Failure 404 {object} apperr.Error
// @Router /api/personnel-payments/{id} [get]
func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	payment, err := h.paymentService.Get(c.Context(), user.CompanyID, id)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return response.NotFound(c, "Payment not found")
		}
		return response.InternalServerError(c)
	}

	return response.JSON(c, payment)
}

// List returns the tenant's payment history, paginated
// @Summary List personnel payments
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /api/personnel-payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	params := pagination.GetParams(c)

	payments, total, err := h.paymentService.List(c.Context(), user.CompanyID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, pagination.NewResponse(payments, params, total))
}
