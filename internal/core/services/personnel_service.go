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

// PersonnelService handles the company staff directory
type PersonnelService struct {
	personnelRepo repositories.PersonnelRepository
}

// NewPersonnelService creates a new personnel service
func NewPersonnelService(personnelRepo repositories.PersonnelRepository) *PersonnelService {
	return &PersonnelService{personnelRepo: personnelRepo}
}

// PersonnelInput represents personnel record input
type PersonnelInput struct {
	FirstName string
	LastName  string
	Email     string
	Position  string
	Salary    string
	HiredAt   *time.Time
	IsActive  *bool
}

// Create creates a personnel record in the caller's tenant
func (s *PersonnelService) Create(ctx context.Context, companyID uint, input *PersonnelInput) (*models.Personnel, error) {
	salary, err := parseOptionalAmount(input.Salary)
	if err != nil {
		return nil, err
	}

	p := &models.Personnel{
		CompanyID: companyID,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Position:  strings.TrimSpace(input.Position),
		Salary:    salary,
		HiredAt:   input.HiredAt,
		IsActive:  true,
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if err := s.personnelRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Get gets a personnel record scoped to the caller's tenant
func (s *PersonnelService) Get(ctx context.Context, companyID, id uint) (*models.Personnel, error) {
	p, err := s.personnelRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPersonnelNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update updates a personnel record
func (s *PersonnelService) Update(ctx context.Context, companyID, id uint, input *PersonnelInput) (*models.Personnel, error) {
	p, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	salary, err := parseOptionalAmount(input.Salary)
	if err != nil {
		return nil, err
	}

	p.FirstName = strings.TrimSpace(input.FirstName)
	p.LastName = strings.TrimSpace(input.LastName)
	p.Email = strings.ToLower(strings.TrimSpace(input.Email))
	p.Position = strings.TrimSpace(input.Position)
	p.Salary = salary
	if input.HiredAt != nil {
		p.HiredAt = input.HiredAt
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if err := s.personnelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete deletes a personnel record
func (s *PersonnelService) Delete(ctx context.Context, companyID, id uint) error {
	err := s.personnelRepo.Delete(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrPersonnelNotFound
	}
	return err
}

// List lists a tenant's personnel
func (s *PersonnelService) List(ctx context.Context, companyID uint, offset, limit int) ([]*models.Personnel, int64, error) {
	return s.personnelRepo.List(ctx, companyID, offset, limit)
}

// parseOptionalAmount parses an amount string, treating empty as zero
func parseOptionalAmount(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return domain.ParseAmount(s)
}
