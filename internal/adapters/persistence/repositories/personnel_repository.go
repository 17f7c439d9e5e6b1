package repositories

import (
	"context"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
)

// personnelRepository implements PersonnelRepository interface
type personnelRepository struct {
	db *gorm.DB
}

// NewPersonnelRepository creates a new personnel repository
func NewPersonnelRepository(db *gorm.DB) PersonnelRepository {
	return &personnelRepository{db: db}
}

// Create creates a new personnel record
func (r *personnelRepository) Create(ctx context.Context, p *models.Personnel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID gets a personnel record scoped to its tenant
func (r *personnelRepository) GetByID(ctx context.Context, companyID, id uint) (*models.Personnel, error) {
	var p models.Personnel
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update updates a personnel record
func (r *personnelRepository) Update(ctx context.Context, p *models.Personnel) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete soft deletes a personnel record scoped to its tenant
func (r *personnelRepository) Delete(ctx context.Context, companyID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&models.Personnel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lists a tenant's personnel with pagination
func (r *personnelRepository) List(ctx context.Context, companyID uint, offset, limit int) ([]*models.Personnel, int64, error) {
	var records []*models.Personnel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Personnel{}).Where("company_id = ?", companyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("last_name ASC, first_name ASC").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
