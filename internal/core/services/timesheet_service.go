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

// TimesheetService handles timesheet entry and review
type TimesheetService struct {
	tsRepo      repositories.TimesheetRepository
	projectRepo repositories.ProjectRepository
	notifySvc   *NotificationService
}

// NewTimesheetService creates a new timesheet service
func NewTimesheetService(
	tsRepo repositories.TimesheetRepository,
	projectRepo repositories.ProjectRepository,
	notifySvc *NotificationService,
) *TimesheetService {
	return &TimesheetService{
		tsRepo:      tsRepo,
		projectRepo: projectRepo,
		notifySvc:   notifySvc,
	}
}

// TimesheetInput represents timesheet entry input
type TimesheetInput struct {
	ProjectID   *uint
	Date        time.Time
	Hours       float64
	Description string
}

// Create creates a timesheet entry for the caller
func (s *TimesheetService) Create(ctx context.Context, user *models.User, input *TimesheetInput) (*models.Timesheet, error) {
	if input.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, user.CompanyID, *input.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrProjectNotFound
			}
			return nil, err
		}
	}

	ts := &models.Timesheet{
		CompanyID:   user.CompanyID,
		UserID:      user.ID,
		ProjectID:   input.ProjectID,
		Date:        input.Date,
		Hours:       input.Hours,
		Description: strings.TrimSpace(input.Description),
		Status:      models.TimesheetStatusPending,
	}

	if err := s.tsRepo.Create(ctx, ts); err != nil {
		return nil, err
	}

	return ts, nil
}

// Get gets a timesheet entry visible to the caller: owners see their
// own entries, admins see the whole tenant's
func (s *TimesheetService) Get(ctx context.Context, user *models.User, id uint) (*models.Timesheet, error) {
	ts, err := s.tsRepo.GetByID(ctx, user.CompanyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTimesheetNotFound
		}
		return nil, err
	}

	if ts.UserID != user.ID && !user.GetRole().AtLeast(domain.RoleAdmin) {
		return nil, domain.ErrTimesheetNotFound
	}

	return ts, nil
}

// Update updates the caller's own entry while it is still pending
func (s *TimesheetService) Update(ctx context.Context, user *models.User, id uint, input *TimesheetInput) (*models.Timesheet, error) {
	ts, err := s.Get(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if ts.UserID != user.ID {
		return nil, domain.ErrTimesheetNotFound
	}
	if ts.Status != models.TimesheetStatusPending {
		return nil, domain.ErrTimesheetLocked
	}

	if input.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, user.CompanyID, *input.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrProjectNotFound
			}
			return nil, err
		}
	}

	ts.ProjectID = input.ProjectID
	ts.Date = input.Date
	ts.Hours = input.Hours
	ts.Description = strings.TrimSpace(input.Description)

	if err := s.tsRepo.Update(ctx, ts); err != nil {
		return nil, err
	}

	return ts, nil
}

// SetStatus approves or rejects an entry and notifies its owner
func (s *TimesheetService) SetStatus(ctx context.Context, reviewer *models.User, id uint, status string) (*models.Timesheet, error) {
	if status != models.TimesheetStatusApproved && status != models.TimesheetStatusRejected {
		return nil, domain.ErrInvalidInput
	}

	ts, err := s.Get(ctx, reviewer, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ts.Status = status
	ts.ReviewedBy = &reviewer.ID
	ts.ReviewedAt = &now

	if err := s.tsRepo.Update(ctx, ts); err != nil {
		return nil, err
	}

	if ts.UserID != reviewer.ID {
		s.notifySvc.NotifyTimesheetReviewed(ctx, ts)
	}

	return ts, nil
}

// Delete removes the caller's own pending entry; admins may remove any
func (s *TimesheetService) Delete(ctx context.Context, user *models.User, id uint) error {
	ts, err := s.Get(ctx, user, id)
	if err != nil {
		return err
	}

	if !user.GetRole().AtLeast(domain.RoleAdmin) {
		if ts.UserID != user.ID {
			return domain.ErrTimesheetNotFound
		}
		if ts.Status != models.TimesheetStatusPending {
			return domain.ErrTimesheetLocked
		}
	}

	err = s.tsRepo.Delete(ctx, user.CompanyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrTimesheetNotFound
	}
	return err
}

// List lists timesheets: the caller's own, or the tenant's when the
// caller is an admin and asks for all
func (s *TimesheetService) List(ctx context.Context, user *models.User, all bool, status string, offset, limit int) ([]*models.Timesheet, int64, error) {
	if all && user.GetRole().AtLeast(domain.RoleAdmin) {
		return s.tsRepo.ListByCompany(ctx, user.CompanyID, status, offset, limit)
	}
	return s.tsRepo.ListByUser(ctx, user.ID, offset, limit)
}
