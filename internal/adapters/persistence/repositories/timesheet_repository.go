package repositories

import (
	"context"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
)

// timesheetRepository implements TimesheetRepository interface
type timesheetRepository struct {
	db *gorm.DB
}

// NewTimesheetRepository creates a new timesheet repository
func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &timesheetRepository{db: db}
}

// Create creates a new timesheet entry
func (r *timesheetRepository) Create(ctx context.Context, ts *models.Timesheet) error {
	return r.db.WithContext(ctx).Create(ts).Error
}

// GetByID gets a timesheet entry scoped to its tenant
func (r *timesheetRepository) GetByID(ctx context.Context, companyID, id uint) (*models.Timesheet, error) {
	var ts models.Timesheet
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("id = ? AND company_id = ?", id, companyID).
		First(&ts).Error
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// Update updates a timesheet entry
func (r *timesheetRepository) Update(ctx context.Context, ts *models.Timesheet) error {
	return r.db.WithContext(ctx).Save(ts).Error
}

// Delete soft deletes a timesheet entry scoped to its tenant
func (r *timesheetRepository) Delete(ctx context.Context, companyID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&models.Timesheet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByUser lists one user's timesheet entries with pagination
func (r *timesheetRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Timesheet, int64, error) {
	var entries []*models.Timesheet
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Timesheet{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Project").Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListByCompany lists a tenant's timesheet entries, optionally by status
func (r *timesheetRepository) ListByCompany(ctx context.Context, companyID uint, status string, offset, limit int) ([]*models.Timesheet, int64, error) {
	var entries []*models.Timesheet
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Timesheet{}).Where("company_id = ?", companyID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Project").Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
