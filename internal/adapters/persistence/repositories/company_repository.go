package repositories

import (
	"context"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
)

// companyRepository implements CompanyRepository interface
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// Create creates a new company
func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// GetByID gets a company by ID
func (r *companyRepository) GetByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetBySlug gets a company by slug
func (r *companyRepository) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// ExistsBySlug checks if slug exists
func (r *companyRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
