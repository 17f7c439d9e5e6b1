package repositories

import (
	"context"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
)

// paymentRepository implements PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// CreateWithLedger persists a personnel payment and its matching expense
// transaction inside one database transaction. Either both rows commit
// or neither does; there is no partial-failure window.
func (r *paymentRepository) CreateWithLedger(ctx context.Context, payment *models.PersonnelPayment, ledger *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ledger).Error; err != nil {
			return err
		}

		payment.TransactionID = ledger.ID
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		return nil
	})
}

// GetByID gets a payment scoped to its tenant
func (r *paymentRepository) GetByID(ctx context.Context, companyID, id uint) (*models.PersonnelPayment, error) {
	var payment models.PersonnelPayment
	err := r.db.WithContext(ctx).
		Preload("Personnel").
		Where("id = ? AND company_id = ?", id, companyID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// List lists a tenant's payments with pagination
func (r *paymentRepository) List(ctx context.Context, companyID uint, offset, limit int) ([]*models.PersonnelPayment, int64, error) {
	var payments []*models.PersonnelPayment
	var total int64

	query := r.db.WithContext(ctx).Model(&models.PersonnelPayment{}).Where("company_id = ?", companyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Personnel").Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}
