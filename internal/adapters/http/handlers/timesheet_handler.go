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

// TimesheetHandler handles timesheet endpoints
type TimesheetHandler struct {
	tsService *services.TimesheetService
}

// NewTimesheetHandler creates a new timesheet handler
func NewTimesheetHandler(tsService *services.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{tsService: tsService}
}

// TimesheetRequest represents a timesheet entry request body
type TimesheetRequest struct {
	ProjectID   *uint   `json:"projectId"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours       float64 `json:"hours" validate:"required,gt=0,lte=24"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
}

// ReviewRequest represents a timesheet review request body
type ReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

func (r *TimesheetRequest) toInput() (*services.TimesheetInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, err
	}
	return &services.TimesheetInput{
		ProjectID:   r.ProjectID,
		Date:        date,
		Hours:       r.Hours,
		Description: r.Description,
	}, nil
}

// Create creates a timesheet entry for the caller
// @Summary Create timesheet entry
// @Tags Timesheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TimesheetRequest true "Timesheet data"
// @Success 201 {object} models.Timesheet
// @Failure 400 {object} apperr.Error
// @Router /api/timesheets [post]
func (h *TimesheetHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req TimesheetRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "date must be a date in YYYY-MM-DD format")
	}

	ts, err := h.tsService.Create(c.Context(), user, input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c)
	}

	return response.Created(c, ts)
}

// Get returns a timesheet entry
// @Summary Get timesheet entry
// @Tags Timesheets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Timesheet ID"
// @Success 200 {object} models.Timesheet
// @Failure 404 {object} apperr.Error
// @Router /api/timesheets/{id} [get]
func (h *TimesheetHandler) Get(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	ts, err := h.tsService.Get(c.Context(), user, id)
	if err != nil {
		if errors.Is(err, domain.ErrTimesheetNotFound) {
			return response.NotFound(c, "Timesheet not found")
		}
		return response.InternalServerError(c)
	}

	return response.JSON(c, ts)
}

// Update updates a pending timesheet entry owned by the caller
// @Summary Update timesheet entry
// @Tags Timesheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Timesheet ID"
// @Param body body TimesheetRequest true "Timesheet data"
// @Success 200 {object} models.Timesheet
// @Failure 404 {object} apperr.Error
// @Failure 409 {object} apperr.Error
// @Router /api/timesheets/{id} [put]
func (h *TimesheetHandler) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	var req TimesheetRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "date must be a date in YYYY-MM-DD format")
	}

	ts, err := h.tsService.Update(c.Context(), user, id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTimesheetNotFound):
			return response.NotFound(c, "Timesheet not found")
		case errors.Is(err, domain.ErrTimesheetLocked):
			return response.Conflict(c, "Reviewed timesheets can no longer be edited")
		case errors.Is(err, domain.ErrProjectNotFound):
			return response.NotFound(c, "Project not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.JSON(c, ts)
}

// Review approves or rejects a timesheet entry
// @Summary Review timesheet entry
// @Tags Timesheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Timesheet ID"
// @Param body body ReviewRequest true "Review decision"
// @Success 200 {object} models.Timesheet
// @Failure 403 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /api/timesheets/{id}/status [patch]
func (h *TimesheetHandler) Review(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	var req ReviewRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	ts, err := h.tsService.SetStatus(c.Context(), user, id, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrTimesheetNotFound) {
			return response.NotFound(c, "Timesheet not found")
		}
		return response.InternalServerError(c)
	}

	return response.JSON(c, ts)
}

// Delete deletes a timesheet entry
// @Summary Delete timesheet entry
// @Tags Timesheets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Timesheet ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperr.Error
// @Router /api/timesheets/{id} [delete]
func (h *TimesheetHandler) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	if err := h.tsService.Delete(c.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrTimesheetNotFound):
			return response.NotFound(c, "Timesheet not found")
		case errors.Is(err, domain.ErrTimesheetLocked):
			return response.Conflict(c, "Reviewed timesheets can no longer be deleted")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Message(c, "Timesheet deleted successfully")
}

// List returns timesheet entries. Admins may pass all=true to see the
// whole company; everyone else sees only their own.
// @Summary List timesheet entries
// @Tags Timesheets
// @Produce json
// @Security BearerAuth
// @Param all query bool false "List whole company (admins only)"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /api/timesheets [get]
func (h *TimesheetHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	params := pagination.GetParams(c)

	all := c.QueryBool("all", false)
	status := c.Query("status")

	entries, total, err := h.tsService.List(c.Context(), user, all, status, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, pagination.NewResponse(entries, params, total))
}
