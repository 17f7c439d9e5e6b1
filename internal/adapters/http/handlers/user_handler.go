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

// UserHandler handles directory and user administration endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SetRoleRequest represents a role change request body
type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN SUPER_ADMIN"`
}

// SetActiveRequest represents an activation toggle request body
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// Directory lists active colleagues in the caller's company
// @Summary Company directory
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/directory [get]
func (h *UserHandler) Directory(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	users, err := h.userService.Directory(c.Context(), user.CompanyID)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, fiber.Map{"users": users})
}

// List returns every user in the caller's company, paginated
// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Failure 403 {object} apperr.Error
// @Router /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	params := pagination.GetParams(c)

	users, total, err := h.userService.ListUsers(c.Context(), user.CompanyID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.JSON(c, pagination.NewResponse(users, params, total))
}

// SetRole changes a user's role
// @Summary Change user role
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body SetRoleRequest true "New role"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /api/admin/users/{id}/role [patch]
func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	var req SetRoleRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return response.BadRequest(c, "Invalid role")
	}

	updated, err := h.userService.SetUserRole(c.Context(), actor, id, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrRoleChangeDenied):
			return response.Forbidden(c, "Only a super admin can grant or revoke admin roles")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.JSON(c, fiber.Map{"user": updated.ToResponse()})
}

// SetActive activates or deactivates a user
// @Summary Toggle user activation
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body SetActiveRequest true "Activation flag"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /api/admin/users/{id}/active [patch]
func (h *UserHandler) SetActive(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return response.Err(c, perr)
	}

	var req SetActiveRequest
	if err := request.ParseAndValidate(c, &req); err != nil {
		return response.Err(c, err)
	}

	updated, err := h.userService.SetUserActive(c.Context(), actor, id, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrCannotDeactivate):
			return response.Forbidden(c, "This user cannot be deactivated")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.JSON(c, fiber.Map{"user": updated.ToResponse()})
}
