package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/core/domain"
)

// ProjectService handles project bookkeeping
type ProjectService struct {
	projectRepo repositories.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ProjectInput represents project input
type ProjectInput struct {
	Name      string
	Client    string
	Budget    string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Create creates a project in the caller's tenant
func (s *ProjectService) Create(ctx context.Context, companyID uint, input *ProjectInput) (*models.Project, error) {
	budget, err := parseOptionalAmount(input.Budget)
	if err != nil {
		return nil, err
	}

	status := strings.ToUpper(strings.TrimSpace(input.Status))
	if status == "" {
		status = models.ProjectStatusActive
	}

	p := &models.Project{
		CompanyID: companyID,
		Name:      strings.TrimSpace(input.Name),
		Client:    strings.TrimSpace(input.Client),
		Budget:    budget,
		Status:    status,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Get gets a project scoped to the caller's tenant
func (s *ProjectService) Get(ctx context.Context, companyID, id uint) (*models.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update updates a project
func (s *ProjectService) Update(ctx context.Context, companyID, id uint, input *ProjectInput) (*models.Project, error) {
	p, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	budget, err := parseOptionalAmount(input.Budget)
	if err != nil {
		return nil, err
	}

	p.Name = strings.TrimSpace(input.Name)
	p.Client = strings.TrimSpace(input.Client)
	p.Budget = budget
	if status := strings.ToUpper(strings.TrimSpace(input.Status)); status != "" {
		p.Status = status
	}
	if input.StartDate != nil {
		p.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		p.EndDate = input.EndDate
	}

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete deletes a project
func (s *ProjectService) Delete(ctx context.Context, companyID, id uint) error {
	err := s.projectRepo.Delete(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrProjectNotFound
	}
	return err
}

// List lists a tenant's projects
func (s *ProjectService) List(ctx context.Context, companyID uint, offset, limit int) ([]*models.Project, int64, error) {
	return s.projectRepo.List(ctx, companyID, offset, limit)
}
