package repositories

import (
	"context"
	"time"

	"crewledger/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	ListByCompany(ctx context.Context, companyID uint, offset, limit int) ([]*models.User, int64, error)
	ListDirectory(ctx context.Context, companyID uint) ([]*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CompanyRepository defines company (tenant) repository interface
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id uint) (*models.Company, error)
	GetBySlug(ctx context.Context, slug string) (*models.Company, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

// SessionRepository is the session store behind bearer-token resolution.
// Create stores a new session, GetByTokenHash is the read-only resolve
// step, and the revocations invalidate tokens.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// TransactionRepository defines ledger repository interface
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, companyID, id uint) (*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, companyID, id uint) error
	List(ctx context.Context, companyID uint, filter TransactionFilter, offset, limit int) ([]*models.Transaction, int64, error)
}

// TransactionFilter narrows ledger listings
type TransactionFilter struct {
	Type     string
	Category string
	From     *time.Time
	To       *time.Time
}

// PersonnelRepository defines personnel repository interface
type PersonnelRepository interface {
	Create(ctx context.Context, p *models.Personnel) error
	GetByID(ctx context.Context, companyID, id uint) (*models.Personnel, error)
	Update(ctx context.Context, p *models.Personnel) error
	Delete(ctx context.Context, companyID, id uint) error
	List(ctx context.Context, companyID uint, offset, limit int) ([]*models.Personnel, int64, error)
}

// PaymentRepository defines personnel payment repository interface.
// CreateWithLedger persists the payment and its matching expense
// transaction atomically.
type PaymentRepository interface {
	CreateWithLedger(ctx context.Context, payment *models.PersonnelPayment, ledger *models.Transaction) error
	GetByID(ctx context.Context, companyID, id uint) (*models.PersonnelPayment, error)
	List(ctx context.Context, companyID uint, offset, limit int) ([]*models.PersonnelPayment, int64, error)
}

// TimesheetRepository defines timesheet repository interface
type TimesheetRepository interface {
	Create(ctx context.Context, ts *models.Timesheet) error
	GetByID(ctx context.Context, companyID, id uint) (*models.Timesheet, error)
	Update(ctx context.Context, ts *models.Timesheet) error
	Delete(ctx context.Context, companyID, id uint) error
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Timesheet, int64, error)
	ListByCompany(ctx context.Context, companyID uint, status string, offset, limit int) ([]*models.Timesheet, int64, error)
}

// ProjectRepository defines project repository interface
type ProjectRepository interface {
	Create(ctx context.Context, p *models.Project) error
	GetByID(ctx context.Context, companyID, id uint) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, companyID, id uint) error
	List(ctx context.Context, companyID uint, offset, limit int) ([]*models.Project, int64, error)
}

// NotificationRepository defines notification repository interface
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, userID, id uint) (*models.Notification, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Notification, int64, error)
	MarkRead(ctx context.Context, userID, id uint) error
	MarkAllRead(ctx context.Context, userID uint) error
}

// MessageRepository defines message repository interface
type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Message, int64, error)
	MarkRead(ctx context.Context, recipientID, id uint) error
}
