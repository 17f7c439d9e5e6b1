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

// TransactionService handles the ledger
type TransactionService struct {
	txRepo repositories.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txRepo repositories.TransactionRepository) *TransactionService {
	return &TransactionService{txRepo: txRepo}
}

// TransactionInput represents ledger entry input. Amount arrives as a
// decimal string and is parsed once, consistently.
type TransactionInput struct {
	Type        string
	Amount      string
	Date        time.Time
	Category    string
	Description string
}

// Create creates a ledger entry owned by the caller's tenant
func (s *TransactionService) Create(ctx context.Context, user *models.User, input *TransactionInput) (*models.Transaction, error) {
	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		CompanyID:   user.CompanyID,
		UserID:      user.ID,
		Type:        strings.ToUpper(input.Type),
		Amount:      amount,
		Date:        input.Date,
		Category:    strings.TrimSpace(input.Category),
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// Get gets a ledger entry scoped to the caller's tenant
func (s *TransactionService) Get(ctx context.Context, companyID, id uint) (*models.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

// Update updates a ledger entry
func (s *TransactionService) Update(ctx context.Context, companyID, id uint, input *TransactionInput) (*models.Transaction, error) {
	tx, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	tx.Type = strings.ToUpper(input.Type)
	tx.Amount = amount
	tx.Date = input.Date
	tx.Category = strings.TrimSpace(input.Category)
	tx.Description = strings.TrimSpace(input.Description)

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// Delete deletes a ledger entry
func (s *TransactionService) Delete(ctx context.Context, companyID, id uint) error {
	err := s.txRepo.Delete(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrTransactionNotFound
	}
	return err
}

// List lists a tenant's ledger entries
func (s *TransactionService) List(ctx context.Context, companyID uint, filter repositories.TransactionFilter, offset, limit int) ([]*models.Transaction, int64, error) {
	return s.txRepo.List(ctx, companyID, filter, offset, limit)
}
