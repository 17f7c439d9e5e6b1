package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/core/domain"
)

// PaymentService handles personnel payments. A payment and its ledger
// entry are one atomic operation: the repository commits both rows in a
// single database transaction or neither.
type PaymentService struct {
	paymentRepo   repositories.PaymentRepository
	personnelRepo repositories.PersonnelRepository
	notifySvc     *NotificationService
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	personnelRepo repositories.PersonnelRepository,
	notifySvc *NotificationService,
) *PaymentService {
	return &PaymentService{
		paymentRepo:   paymentRepo,
		personnelRepo: personnelRepo,
		notifySvc:     notifySvc,
	}
}

// PaymentInput represents personnel payment input
type PaymentInput struct {
	PersonnelID uint
	Amount      string
	Date        time.Time
	Category    string
	Note        string
}

// Create records a payment to a personnel record together with its
// matching EXPENSE ledger entry
func (s *PaymentService) Create(ctx context.Context, actor *models.User, input *PaymentInput) (*models.PersonnelPayment, error) {
	personnel, err := s.personnelRepo.GetByID(ctx, actor.CompanyID, input.PersonnelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPersonnelNotFound
		}
		return nil, err
	}

	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "Payroll"
	}

	ledger := &models.Transaction{
		CompanyID: actor.CompanyID,
		UserID:    actor.ID,
		Type:      models.TxTypeExpense,
		Amount:    amount,
		Date:      input.Date,
		Category:  category,
		Description: fmt.Sprintf("Payment to %s %s",
			personnel.FirstName, personnel.LastName),
	}

	payment := &models.PersonnelPayment{
		CompanyID:   actor.CompanyID,
		PersonnelID: personnel.ID,
		Amount:      amount,
		Date:        input.Date,
		Category:    category,
		Note:        strings.TrimSpace(input.Note),
		CreatedBy:   actor.ID,
	}

	if err := s.paymentRepo.CreateWithLedger(ctx, payment, ledger); err != nil {
		return nil, err
	}

	payment.Personnel = personnel
	payment.Transaction = ledger

	log.Printf("Payment %d recorded for personnel %d (transaction %d)",
		payment.ID, personnel.ID, ledger.ID)

	s.notifySvc.NotifyPaymentRecorded(ctx, actor, payment, personnel)

	return payment, nil
}

// Get gets a payment scoped to the caller's tenant
func (s *PaymentService) Get(ctx context.Context, companyID, id uint) (*models.PersonnelPayment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

// List lists a tenant's payments
func (s *PaymentService) List(ctx context.Context, companyID uint, offset, limit int) ([]*models.PersonnelPayment, int64, error) {
	return s.paymentRepo.List(ctx, companyID, offset, limit)
}
