package models

import (
	"time"

	"gorm.io/gorm"

	"crewledger/internal/core/domain"
)

// ============================================================
// Tenant & Identity Tables
// ============================================================

// Company represents the tenant that owns all personnel, timesheet
// and financial records
type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"uniqueIndex;size:100;not null" json:"slug"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Company) TableName() string {
	return "companies"
}

// User represents users table
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CompanyID  uint           `gorm:"index;not null" json:"company_id"`
	Email      string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password   string         `gorm:"size:255;not null" json:"-"`
	FirstName  string         `gorm:"size:255;not null" json:"first_name"`
	LastName   string         `gorm:"size:255;not null" json:"last_name"`
	Role       string         `gorm:"size:20;default:'USER'" json:"role"`
	Tier       string         `gorm:"size:20;default:'FREE'" json:"tier"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	IsVerified bool           `gorm:"default:false" json:"is_verified"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse is the API shape of a user; it never carries the password hash.
type UserResponse struct {
	ID         uint      `json:"id"`
	CompanyID  uint      `json:"company_id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"`
	Tier       string    `json:"tier"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		CompanyID:  u.CompanyID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		Tier:       u.Tier,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

// GetRole returns the user's role as a domain role
func (u *User) GetRole() domain.Role {
	return domain.Role(u.Role)
}

// Session represents sessions table. The raw bearer token is never
// stored; only its SHA-256 hash is.
type Session struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:64;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// ============================================================
// Personnel & Finance Tables
// ============================================================

// Personnel represents the company staff directory
type Personnel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CompanyID uint           `gorm:"index;not null" json:"company_id"`
	FirstName string         `gorm:"size:255;not null" json:"first_name"`
	LastName  string         `gorm:"size:255;not null" json:"last_name"`
	Email     string         `gorm:"size:255" json:"email"`
	Position  string         `gorm:"size:100" json:"position"`
	Salary    float64        `gorm:"type:decimal(15,2);default:0" json:"salary"`
	HiredAt   *time.Time     `gorm:"type:date" json:"hired_at"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Personnel) TableName() string {
	return "personnel"
}

// Transaction types
const (
	TxTypeIncome  = "INCOME"
	TxTypeExpense = "EXPENSE"
)

// Transaction represents a ledger entry
type Transaction struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanyID   uint           `gorm:"index;not null" json:"company_id"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	Type        string         `gorm:"size:10;not null;index" json:"type"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	Category    string         `gorm:"size:100;not null;index" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// PersonnelPayment represents a payment to a personnel record. Creating
// one also creates its matching EXPENSE transaction in the same database
// transaction.
type PersonnelPayment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CompanyID     uint           `gorm:"index;not null" json:"company_id"`
	PersonnelID   uint           `gorm:"index;not null" json:"personnel_id"`
	TransactionID uint           `gorm:"index;not null" json:"transaction_id"`
	Amount        float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date          time.Time      `gorm:"type:date;not null" json:"date"`
	Category      string         `gorm:"size:100;not null" json:"category"`
	Note          string         `gorm:"type:text" json:"note"`
	CreatedBy     uint           `gorm:"not null" json:"created_by"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Personnel   *Personnel   `gorm:"foreignKey:PersonnelID" json:"personnel,omitempty"`
	Transaction *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
}

func (PersonnelPayment) TableName() string {
	return "personnel_payments"
}

// ============================================================
// Project & Timesheet Tables
// ============================================================

// Project statuses
const (
	ProjectStatusActive    = "ACTIVE"
	ProjectStatusOnHold    = "ON_HOLD"
	ProjectStatusCompleted = "COMPLETED"
	ProjectStatusArchived  = "ARCHIVED"
)

// Project represents projects table
type Project struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CompanyID uint           `gorm:"index;not null" json:"company_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Client    string         `gorm:"size:255" json:"client"`
	Budget    float64        `gorm:"type:decimal(15,2);default:0" json:"budget"`
	Status    string         `gorm:"size:20;default:'ACTIVE'" json:"status"`
	StartDate *time.Time     `gorm:"type:date" json:"start_date"`
	EndDate   *time.Time     `gorm:"type:date" json:"end_date"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

// Timesheet statuses
const (
	TimesheetStatusPending  = "PENDING"
	TimesheetStatusApproved = "APPROVED"
	TimesheetStatusRejected = "REJECTED"
)

// Timesheet represents timesheets table
type Timesheet struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanyID   uint           `gorm:"index;not null" json:"company_id"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	ProjectID   *uint          `gorm:"index" json:"project_id"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	Hours       float64        `gorm:"type:decimal(4,2);not null" json:"hours"`
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"size:20;default:'PENDING';index" json:"status"`
	ReviewedBy  *uint          `json:"reviewed_by"`
	ReviewedAt  *time.Time     `json:"reviewed_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}

// ============================================================
// Messaging & Notification Tables
// ============================================================

// Notification types
const (
	NotifyTypeTimesheet = "TIMESHEET"
	NotifyTypeMessage   = "MESSAGE"
	NotifyTypePayment   = "PAYMENT"
	NotifyTypeSystem    = "SYSTEM"
)

// Notification represents notifications table
type Notification struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Type      string     `gorm:"size:20;not null" json:"type"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Body      string     `gorm:"type:text" json:"body"`
	IsRead    bool       `gorm:"default:false;index" json:"is_read"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// Message represents company-internal direct messages
type Message struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanyID   uint           `gorm:"index;not null" json:"company_id"`
	SenderID    uint           `gorm:"index;not null" json:"sender_id"`
	RecipientID uint           `gorm:"index;not null" json:"recipient_id"`
	Body        string         `gorm:"type:text;not null" json:"body"`
	ReadAt      *time.Time     `json:"read_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Sender    *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Company{},
		&User{},
		&Session{},
		&Personnel{},
		&Transaction{},
		&PersonnelPayment{},
		&Project{},
		&Timesheet{},
		&Notification{},
		&Message{},
	)
}
