package repositories

import (
	"context"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
)

// projectRepository implements ProjectRepository interface
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create creates a new project
func (r *projectRepository) Create(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID gets a project scoped to its tenant
func (r *projectRepository) GetByID(ctx context.Context, companyID, id uint) (*models.Project, error) {
	var p models.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update updates a project
func (r *projectRepository) Update(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete soft deletes a project scoped to its tenant
func (r *projectRepository) Delete(ctx context.Context, companyID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lists a tenant's projects with pagination
func (r *projectRepository) List(ctx context.Context, companyID uint, offset, limit int) ([]*models.Project, int64, error) {
	var projects []*models.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Project{}).Where("company_id = ?", companyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}
