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

// PersonnelHandler handles personnel roster endpoints
type PersonnelHandler struct {
	personnelService *services.PersonnelService
}

// NewPersonnelHandler creates a new personnel handler
func NewPersonnelHandler(personnelService *services.PersonnelService) *PersonnelHandler {
	return &PersonnelHandler{personnelService: personnelService}
}

// PersonnelRequest represents a personnel record request body
type PersonnelRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Position  string `json:"position" validate:"omitempty,max=255"`
	Salary    string `json:"salary" validate:"omitempty"`
	HiredAt   string `json:"hiredAt" validate:"omitempty,datetime=2006-01-02"`
	IsActive  *bool  `json:"isActive"`
}

func (r *PersonnelRequest) toInput() *services.PersonnelInput {
	input := &services.PersonnelInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Position:  r.Position,
		Salary:    r.Salary,
		IsActive:  r.IsActive,
	}
	if r.HiredAt != "" {
		if t, err := time.Parse(dateLayout, r.HiredAt); err == nil {
			input.HiredAt = &t
		}
	}
	return input
}

// Create creates a personnel record
// @Summary Create personnel record
// @Tags Personnel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PersonnelRequest true "Personnel data"
// @Success 201 {object} models.Personnel
// @Failure 400 {object} apperr.Error
// @Router /api/personnel [post]
func (h *PersonnelHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req PersonnelRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	p, err := h.personnelService.Create(c.Context(), user.CompanyID, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return response.BadRequest(c, "salary must be a positive decimal with at most 2 decimal places")
		}
		return response.InternalServerError(c)
	}

	return response.Created(c, p)
}

// Get returns a personnel record
// @Summary Get personnel record
// @Tags Personnel
// @Produce json
// @Security BearerAuth
// @Param id path int true "Personnel ID"
// @Success 200 {object} models.Personnel
// @Failure 404 {object} apperr.Error
// @Router /api/personnel/{id} [get]
func (h *PersonnelHandler) Get(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	p, err := h.personnelService.Get(c.Context(), user.CompanyID, id)
	if err != nil {
		if errors.Is(err, domain.ErrPersonnelNotFound) {
			return response.NotFound(c, "Personnel record not found")
		}
		return response.InternalServerError(c)
	}

	return response.JSON(c, p)
}

// Update updates a personnel record
// @Summary Update personnel record
// @Tags Personnel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Personnel ID"
// @Param body body PersonnelRequest true "Personnel data"
// @Success 200 {object} models.Personnel
// @Failure 404 {object} apperr.Error
// @Router /api/personnel/{id} [put]
func (h *PersonnelHandler) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	var req PersonnelRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	p, err := h.personnelService.Update(c.Context(), user.CompanyID, id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPersonnelNotFound):
			return response.NotFound(c, "Personnel record not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "salary must be a positive decimal with at most 2 decimal places")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.JSON(c, p)
}

// Delete deletes a personnel record
// @Summary Delete personnel record
// @Tags Personnel
// @Produce json
// @Security BearerAuth
// @Param id path int true "Personnel ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperr.Error
// @Router /api/personnel/{id} [delete]
func (h *PersonnelHandler) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	if err := h.personnelService.Delete(c.Context(), user.CompanyID, id); err != nil {
		if errors.Is(err, domain.ErrPersonnelNotFound) {
			return response.NotFound(c, "Personnel record not found")
		}
		return response.InternalServerError(c)
	}

	return response.Message(c, "Personnel record deleted successfully")
}

// List returns the tenant's personnel roster, paginated
// @Summary List personnel
// @Tags Personnel
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /api/personnel [get]
func (h *PersonnelHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	params := pagination.GetParams(c)

	items, total, err := h.personnelService.List(c.Context(), user.CompanyID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, pagination.NewResponse(items, params, total))
}
