package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/core/domain"
)

// UserService handles the admin panel's user management and the
// company directory
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers lists a tenant's users with pagination
func (s *UserService) ListUsers(ctx context.Context, companyID uint, offset, limit int) ([]*models.UserResponse, int64, error) {
	users, total, err := s.userRepo.ListByCompany(ctx, companyID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}

	return responses, total, nil
}

// Directory lists a tenant's active members
func (s *UserService) Directory(ctx context.Context, companyID uint) ([]*models.UserResponse, error) {
	users, err := s.userRepo.ListDirectory(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}

	return responses, nil
}

// SetUserRole changes a user's role. Any change that grants or revokes
// ADMIN or above requires the actor to be a super admin; both sides of
// that check go through the same role hierarchy comparison the route
// guards use.
func (s *UserService) SetUserRole(ctx context.Context, actor *models.User, targetID uint, newRole domain.Role) (*models.User, error) {
	if !newRole.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	target, err := s.getTenantUser(ctx, actor.CompanyID, targetID)
	if err != nil {
		return nil, err
	}

	adminInvolved := target.GetRole().AtLeast(domain.RoleAdmin) || newRole.AtLeast(domain.RoleAdmin)
	if adminInvolved && !actor.GetRole().AtLeast(domain.RoleSuperAdmin) {
		return nil, domain.ErrRoleChangeDenied
	}

	target.Role = string(newRole)
	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	log.Printf("Role of user %d set to %s by user %d", target.ID, newRole, actor.ID)
	return target, nil
}

// SetUserActive toggles a user's active flag. Super admins cannot be
// deactivated, nor can the actor deactivate themselves.
func (s *UserService) SetUserActive(ctx context.Context, actor *models.User, targetID uint, active bool) (*models.User, error) {
	target, err := s.getTenantUser(ctx, actor.CompanyID, targetID)
	if err != nil {
		return nil, err
	}

	if !active {
		if target.GetRole().AtLeast(domain.RoleSuperAdmin) || target.ID == actor.ID {
			return nil, domain.ErrCannotDeactivate
		}
	}

	target.IsActive = active
	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	return target, nil
}

// getTenantUser loads a user and checks they belong to the actor's tenant
func (s *UserService) getTenantUser(ctx context.Context, companyID, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if user.CompanyID != companyID {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}
