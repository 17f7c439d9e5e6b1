package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/config"
	"crewledger/internal/core/domain"
	"crewledger/internal/pkg/password"
)

// mockUserRepo is an in-memory UserRepository
type mockUserRepo struct {
	users  map[uint]*models.User
	nextID uint
	err    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ListByCompany(_ context.Context, companyID uint, _, _ int) ([]*models.User, int64, error) {
	var out []*models.User
	for _, u := range m.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) ListDirectory(_ context.Context, companyID uint) ([]*models.User, error) {
	var out []*models.User
	for _, u := range m.users {
		if u.CompanyID == companyID && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, err := m.GetByEmail(context.Background(), email)
	return err == nil, nil
}

// mockCompanyRepo is an in-memory CompanyRepository
type mockCompanyRepo struct {
	companies map[uint]*models.Company
	nextID    uint
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: map[uint]*models.Company{}, nextID: 1}
}

func (m *mockCompanyRepo) Create(_ context.Context, company *models.Company) error {
	company.ID = m.nextID
	m.nextID++
	m.companies[company.ID] = company
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id uint) (*models.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *mockCompanyRepo) GetBySlug(_ context.Context, slug string) (*models.Company, error) {
	for _, c := range m.companies {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompanyRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	_, err := m.GetBySlug(context.Background(), slug)
	return err == nil, nil
}

// mockSessionRepo is an in-memory SessionRepository
type mockSessionRepo struct {
	sessions map[string]*models.Session
	nextID   uint
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: map[string]*models.Session{}, nextID: 1}
}

func (m *mockSessionRepo) Create(_ context.Context, session *models.Session) error {
	session.ID = m.nextID
	m.nextID++
	m.sessions[session.TokenHash] = session
	return nil
}

func (m *mockSessionRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.Session, error) {
	s, ok := m.sessions[tokenHash]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (m *mockSessionRepo) RevokeByTokenHash(_ context.Context, tokenHash string) error {
	if s, ok := m.sessions[tokenHash]; ok {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (m *mockSessionRepo) RevokeAllByUserID(_ context.Context, userID uint) error {
	now := time.Now()
	for _, s := range m.sessions {
		if s.UserID == userID {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	for hash, s := range m.sessions {
		if s.IsExpired() {
			delete(m.sessions, hash)
			n++
		}
	}
	return n, nil
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Auth: config.AuthConfig{
			SessionTTLDays:  30,
			ActionSecret:    "test-action-secret",
			ActionTokenMins: 60,
		},
	}
}

func newTestAuthService() (*AuthService, *mockUserRepo, *mockSessionRepo) {
	userRepo := newMockUserRepo()
	sessionRepo := newMockSessionRepo()
	svc := NewAuthService(userRepo, newMockCompanyRepo(), sessionRepo, testConfig())
	return svc, userRepo, sessionRepo
}

func registerTestUser(t *testing.T, svc *AuthService) *AuthResult {
	t.Helper()
	result, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana@example.com",
		Password:  "correct horse battery",
	})
	require.NoError(t, err)
	return result
}

func TestRegister(t *testing.T) {
	svc, userRepo, sessionRepo := newTestAuthService()

	result := registerTestUser(t, svc)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "dana@example.com", result.User.Email)
	assert.Equal(t, "ADMIN", result.User.Role)
	assert.Equal(t, "FREE", result.User.Tier)

	// Stored password is hashed
	stored := userRepo.users[result.User.ID]
	assert.NotEqual(t, "correct horse battery", stored.Password)
	assert.True(t, password.Verify("correct horse battery", stored.Password))

	// Session stored by hash only, with the fixed 30-day window
	session, err := sessionRepo.GetByTokenHash(context.Background(), password.HashToken(result.Token))
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, session.UserID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), session.ExpiresAt, time.Minute)
	_, err = sessionRepo.GetByTokenHash(context.Background(), result.Token)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "raw token must never be a lookup key")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "Dana@Example.com",
		Password:  "another password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	registered := registerTestUser(t, svc)

	t.Run("success", func(t *testing.T) {
		result, err := svc.Login(context.Background(), &LoginInput{
			Email:    "dana@example.com",
			Password: "correct horse battery",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, result.User.ID)
		assert.NotEmpty(t, result.Token)
		assert.NotEqual(t, registered.Token, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginInput{
			Email:    "dana@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginInput{
			Email:    "nobody@example.com",
			Password: "correct horse battery",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		userRepo.users[registered.User.ID].IsActive = false
		defer func() { userRepo.users[registered.User.ID].IsActive = true }()

		_, err := svc.Login(context.Background(), &LoginInput{
			Email:    "dana@example.com",
			Password: "correct horse battery",
		})
		assert.ErrorIs(t, err, domain.ErrUserInactive)
	})
}

func TestResolveSession(t *testing.T) {
	svc, userRepo, sessionRepo := newTestAuthService()
	registered := registerTestUser(t, svc)
	hash := password.HashToken(registered.Token)

	t.Run("valid token", func(t *testing.T) {
		user, err := svc.ResolveSession(context.Background(), registered.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, user.ID)
	})

	t.Run("resolve is read-only", func(t *testing.T) {
		before := sessionRepo.sessions[hash].ExpiresAt
		_, err := svc.ResolveSession(context.Background(), registered.Token)
		require.NoError(t, err)
		assert.Equal(t, before, sessionRepo.sessions[hash].ExpiresAt)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.ResolveSession(context.Background(), "no-such-token")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("expired token", func(t *testing.T) {
		session := sessionRepo.sessions[hash]
		original := session.ExpiresAt
		session.ExpiresAt = time.Now().Add(-time.Hour)
		defer func() { session.ExpiresAt = original }()

		_, err := svc.ResolveSession(context.Background(), registered.Token)
		assert.ErrorIs(t, err, domain.ErrSessionExpired)
	})

	t.Run("inactive user", func(t *testing.T) {
		userRepo.users[registered.User.ID].IsActive = false
		defer func() { userRepo.users[registered.User.ID].IsActive = true }()

		_, err := svc.ResolveSession(context.Background(), registered.Token)
		assert.ErrorIs(t, err, domain.ErrUserInactive)
	})

	t.Run("revoked token", func(t *testing.T) {
		require.NoError(t, svc.Logout(context.Background(), registered.Token))

		_, err := svc.ResolveSession(context.Background(), registered.Token)
		assert.ErrorIs(t, err, domain.ErrSessionRevoked)
	})
}

func TestChangePassword(t *testing.T) {
	svc, _, sessionRepo := newTestAuthService()
	registered := registerTestUser(t, svc)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), registered.User.ID, "wrong", "a new password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("success revokes all sessions", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), registered.User.ID, "correct horse battery", "a new password")
		require.NoError(t, err)

		_, err = svc.ResolveSession(context.Background(), registered.Token)
		assert.ErrorIs(t, err, domain.ErrSessionRevoked)
		assert.NotNil(t, sessionRepo.sessions[password.HashToken(registered.Token)].RevokedAt)

		_, err = svc.Login(context.Background(), &LoginInput{
			Email:    "dana@example.com",
			Password: "a new password",
		})
		assert.NoError(t, err)
	})
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registered := registerTestUser(t, svc)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		resetToken, err := svc.RequestPasswordReset(context.Background(), "dana@example.com")
		require.NoError(t, err)

		require.NoError(t, svc.ResetPassword(context.Background(), resetToken, "fresh password"))

		// Old sessions are gone, the new password works
		_, err = svc.ResolveSession(context.Background(), registered.Token)
		assert.Error(t, err)
		_, err = svc.Login(context.Background(), &LoginInput{
			Email:    "dana@example.com",
			Password: "fresh password",
		})
		assert.NoError(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		err := svc.ResetPassword(context.Background(), "garbage", "whatever pass")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestVerifyEmailFlow(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	registered := registerTestUser(t, svc)

	verifyToken, err := svc.RequestEmailVerification(context.Background(), registered.User.ID)
	require.NoError(t, err)

	require.NoError(t, svc.VerifyEmail(context.Background(), verifyToken))
	assert.True(t, userRepo.users[registered.User.ID].IsVerified)

	// Reset tokens cannot verify email
	resetToken, err := svc.RequestPasswordReset(context.Background(), "dana@example.com")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.VerifyEmail(context.Background(), resetToken), domain.ErrUnauthorized)
}
