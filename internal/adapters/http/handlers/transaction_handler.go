package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"crewledger/internal/adapters/http/middleware"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/core/domain"
	"crewledger/internal/core/services"
	"crewledger/internal/pkg/pagination"
	"crewledger/internal/pkg/request"
	"crewledger/internal/pkg/response"
)

// TransactionHandler handles ledger endpoints
type TransactionHandler struct {
	txService      *services.TransactionService
	financeService *services.FinanceService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txService *services.TransactionService, financeService *services.FinanceService) *TransactionHandler {
	return &TransactionHandler{txService: txService, financeService: financeService}
}

// TransactionRequest represents ledger entry request body
type TransactionRequest struct {
	Type        string `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount      string `json:"amount" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

func (r *TransactionRequest) toInput() (*services.TransactionInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, err
	}
	return &services.TransactionInput{
		Type:        r.Type,
		Amount:      r.Amount,
		Date:        date,
		Category:    r.Category,
		Description: r.Description,
	}, nil
}

// Create creates a ledger entry
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TransactionRequest true "Transaction data"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} apperr.Error
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req TransactionRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "date must be a date in YYYY-MM-DD format")
	}

	tx, err := h.txService.Create(c.Context(), user, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return response.BadRequest(c, "amount must be a positive decimal with at most 2 decimal places")
		}
		return response.InternalServerError(c)
	}

	return response.Created(c, tx)
}

// Get returns one ledger entry
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} apperr.Error
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	tx, err := h.txService.Get(c.Context(), user.CompanyID, id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.InternalServerError(c)
	}

	return response.JSON(c, tx)
}

// Update updates a ledger entry
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param body body TransactionRequest true "Transaction data"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} apperr.Error
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	var req TransactionRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "date must be a date in YYYY-MM-DD format")
	}

	tx, err := h.txService.Update(c.Context(), user.CompanyID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTransactionNotFound):
			return response.NotFound(c, "Transaction not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "amount must be a positive decimal with at most 2 decimal places")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.JSON(c, tx)
}

// Delete deletes a ledger entry
// @Summary Delete transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperr.Error
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	if err := h.txService.Delete(c.Context(), user.CompanyID, id); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.InternalServerError(c)
	}

	return response.Message(c, "Transaction deleted successfully")
}

// List returns the tenant's ledger, filterable and paginated
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by type (INCOME or EXPENSE)"
// @Param category query string false "Filter by category"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	params := pagination.GetParams(c)

	from, perr := parseDateQuery(c, "from")
	if perr != nil {
		return response.Err(c, perr)
	}
	to, perr := parseDateQuery(c, "to")
	if perr != nil {
		return response.Err(c, perr)
	}

	filter := repositories.TransactionFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		From:     from,
		To:       to,
	}

	txs, total, err := h.txService.List(c.Context(), user.CompanyID, filter, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, pagination.NewResponse(txs, params, total))
}

// Summary returns income/expense totals and category breakdown
// @Summary Financial summary
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} services.Summary
// @Router /api/financial-summary [get]
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	from, perr := parseDateQuery(c, "from")
	if perr != nil {
		return response.Err(c, perr)
	}
	to, perr := parseDateQuery(c, "to")
	if perr != nil {
		return response.Err(c, perr)
	}

	summary, err := h.financeService.GetSummary(c.Context(), user.CompanyID, from, to)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, summary)
}
