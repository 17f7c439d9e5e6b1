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

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectRequest represents a project request body
type ProjectRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Client    string `json:"client" validate:"omitempty,max=255"`
	Budget    string `json:"budget" validate:"omitempty"`
	Status    string `json:"status" validate:"omitempty,oneof=ACTIVE ON_HOLD COMPLETED ARCHIVED"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r *ProjectRequest) toInput() *services.ProjectInput {
	input := &services.ProjectInput{
		Name:   r.Name,
		Client: r.Client,
		Budget: r.Budget,
		Status: r.Status,
	}
	if r.StartDate != "" {
		if t, err := time.Parse(dateLayout, r.StartDate); err == nil {
			input.StartDate = &t
		}
	}
	if r.EndDate != "" {
		if t, err := time.Parse(dateLayout, r.EndDate); err == nil {
			input.EndDate = &t
		}
	}
	return input
}

// Create creates a project
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ProjectRequest true "Project data"
// @Success 201 {object} models.Project
// @Failure 400 {object} apperr.Error
// @Router /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req ProjectRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	p, err := h.projectService.Create(c.Context(), user.CompanyID, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return response.BadRequest(c, "budget must be a positive decimal with at most 2 decimal places")
		}
		return response.InternalServerError(c)
	}

	return response.Created(c, p)
}

// Get returns a project
// @Summary Get project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} apperr.Error
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	p, err := h.projectService.Get(c.Context(), user.CompanyID, id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c)
	}

	return response.JSON(c, p)
}

// Update updates a project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param body body ProjectRequest true "Project data"
// @Success 200 {object} models.Project
// @Failure 404 {object} apperr.Error
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	var req ProjectRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	p, err := h.projectService.Update(c.Context(), user.CompanyID, id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			return response.NotFound(c, "Project not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "budget must be a positive decimal with at most 2 decimal places")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.JSON(c, p)
}

// Delete deletes a project
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperr.Error
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	if err := h.projectService.Delete(c.Context(), user.CompanyID, id); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c)
	}

	return response.Message(c, "Project deleted successfully")
}

// List returns the tenant's projects, paginated
// @Summary List projects
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	params := pagination.GetParams(c)

	projects, total, err := h.projectService.List(c.Context(), user.CompanyID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, pagination.NewResponse(projects, params, total))
}
