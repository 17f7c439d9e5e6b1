package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/config"
	"crewledger/internal/core/domain"
	"crewledger/internal/pkg/password"
	"crewledger/internal/pkg/token"
)

// AuthService handles registration, login and session resolution
type AuthService struct {
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
	sessionRepo repositories.SessionRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	sessionRepo repositories.SessionRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	CompanyName string
}

// LoginInput represents login input
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult represents a successful authentication
type AuthResult struct {
	User  *models.UserResponse `json:"user"`
	Token string               `json:"token"`
}

// UpdateProfileInput represents profile update input
type UpdateProfileInput struct {
	FirstName string
	LastName  string
}

// Register registers a new user and opens their first session. The
// registrant gets a fresh company (tenant) and administers it.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	companyName := strings.TrimSpace(input.CompanyName)
	if companyName == "" {
		companyName = fmt.Sprintf("%s %s's Workspace", input.FirstName, input.LastName)
	}

	company := &models.Company{
		Name: companyName,
		Slug: s.newCompanySlug(ctx, companyName),
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		CompanyID: company.ID,
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Role:      string(domain.RoleAdmin),
		Tier:      string(domain.TierFree),
		IsActive:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	rawToken, err := s.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Printf("User registered: %s (company %d)", user.Email, company.ID)

	return &AuthResult{User: user.ToResponse(), Token: rawToken}, nil
}

// Login authenticates a user and opens a session
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	rawToken, err := s.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Printf("User logged in: %s", user.Email)

	return &AuthResult{User: user.ToResponse(), Token: rawToken}, nil
}

// ResolveSession maps a bearer token to a user identity. The lookup is
// read-only: the expiry window is never extended here. An unknown,
// revoked or expired token resolves to nothing.
func (s *AuthService) ResolveSession(ctx context.Context, rawToken string) (*models.User, error) {
	session, err := s.sessionRepo.GetByTokenHash(ctx, password.HashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	if session.IsRevoked() {
		return nil, domain.ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	return user, nil
}

// Logout invalidates the presented session token
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	return s.sessionRepo.RevokeByTokenHash(ctx, password.HashToken(rawToken))
}

// LogoutAll invalidates every session for a user
func (s *AuthService) LogoutAll(ctx context.Context, userID uint) error {
	return s.sessionRepo.RevokeAllByUserID(ctx, userID)
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile updates the caller's display name fields
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password and sets a new one; all
// other sessions are revoked
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !password.Verify(current, user.Password) {
		return domain.ErrInvalidCredentials
	}

	hashed, err := password.Hash(next)
	if err != nil {
		return err
	}

	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.sessionRepo.RevokeAllByUserID(ctx, userID)
}

// RequestPasswordReset issues a short-lived signed reset token for the
// account, if one exists. Callers treat unknown emails as success so the
// endpoint cannot be used to probe for accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	return token.GenerateActionToken(
		user.ID,
		token.PurposeResetPassword,
		s.cfg.Auth.ActionSecret,
		s.cfg.Auth.ActionTokenMins,
	)
}

// ResetPassword consumes a reset token and sets a new password
func (s *AuthService) ResetPassword(ctx context.Context, tokenString, next string) error {
	claims, err := token.ValidateActionToken(tokenString, token.PurposeResetPassword, s.cfg.Auth.ActionSecret)
	if err != nil {
		return domain.ErrUnauthorized
	}

	user, err := s.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	hashed, err := password.Hash(next)
	if err != nil {
		return err
	}

	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.sessionRepo.RevokeAllByUserID(ctx, user.ID)
}

// RequestEmailVerification issues a signed verification token
func (s *AuthService) RequestEmailVerification(ctx context.Context, userID uint) (string, error) {
	return token.GenerateActionToken(
		userID,
		token.PurposeVerifyEmail,
		s.cfg.Auth.ActionSecret,
		s.cfg.Auth.ActionTokenMins,
	)
}

// VerifyEmail consumes a verification token and flags the account verified
func (s *AuthService) VerifyEmail(ctx context.Context, tokenString string) error {
	claims, err := token.ValidateActionToken(tokenString, token.PurposeVerifyEmail, s.cfg.Auth.ActionSecret)
	if err != nil {
		return domain.ErrUnauthorized
	}

	user, err := s.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	if user.IsVerified {
		return nil
	}

	user.IsVerified = true
	return s.userRepo.Update(ctx, user)
}

// createSession opens a session for the user and returns the raw token.
// Fixed window: 30 days from creation, not extended on use.
func (s *AuthService) createSession(ctx context.Context, user *models.User) (string, error) {
	rawToken := token.NewSessionToken()

	session := &models.Session{
		UserID:    user.ID,
		TokenHash: password.HashToken(rawToken),
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.Auth.SessionTTLDays) * 24 * time.Hour),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}

	return rawToken, nil
}

// newCompanySlug derives a unique slug for a new tenant
func (s *AuthService) newCompanySlug(ctx context.Context, name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, base)
	base = strings.Trim(base, "-")
	if len(base) > 80 {
		base = base[:80]
	}
	if base == "" {
		base = "workspace"
	}

	taken, err := s.companyRepo.ExistsBySlug(ctx, base)
	if err == nil && !taken {
		return base
	}

	return base + "-" + uuid.NewString()[:8]
}
