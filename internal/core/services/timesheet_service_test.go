package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/core/domain"
)

// mockTimesheetRepo is an in-memory TimesheetRepository
type mockTimesheetRepo struct {
	entries map[uint]*models.Timesheet
	nextID  uint
}

func newMockTimesheetRepo() *mockTimesheetRepo {
	return &mockTimesheetRepo{entries: map[uint]*models.Timesheet{}, nextID: 1}
}

func (m *mockTimesheetRepo) Create(_ context.Context, ts *models.Timesheet) error {
	ts.ID = m.nextID
	m.nextID++
	m.entries[ts.ID] = ts
	return nil
}

func (m *mockTimesheetRepo) GetByID(_ context.Context, companyID, id uint) (*models.Timesheet, error) {
	ts, ok := m.entries[id]
	if !ok || ts.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return ts, nil
}

func (m *mockTimesheetRepo) Update(_ context.Context, ts *models.Timesheet) error {
	m.entries[ts.ID] = ts
	return nil
}

func (m *mockTimesheetRepo) Delete(_ context.Context, companyID, id uint) error {
	ts, ok := m.entries[id]
	if !ok || ts.CompanyID != companyID {
		return gorm.ErrRecordNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *mockTimesheetRepo) ListByUser(_ context.Context, userID uint, _, _ int) ([]*models.Timesheet, int64, error) {
	var out []*models.Timesheet
	for _, ts := range m.entries {
		if ts.UserID == userID {
			out = append(out, ts)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockTimesheetRepo) ListByCompany(_ context.Context, companyID uint, status string, _, _ int) ([]*models.Timesheet, int64, error) {
	var out []*models.Timesheet
	for _, ts := range m.entries {
		if ts.CompanyID == companyID && (status == "" || ts.Status == status) {
			out = append(out, ts)
		}
	}
	return out, int64(len(out)), nil
}

// mockProjectRepo is an in-memory ProjectRepository
type mockProjectRepo struct {
	projects map[uint]*models.Project
	nextID   uint
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: map[uint]*models.Project{}, nextID: 1}
}

func (m *mockProjectRepo) Create(_ context.Context, p *models.Project) error {
	p.ID = m.nextID
	m.nextID++
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, companyID, id uint) (*models.Project, error) {
	p, ok := m.projects[id]
	if !ok || p.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *mockProjectRepo) Update(_ context.Context, p *models.Project) error {
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, companyID, id uint) error {
	p, ok := m.projects[id]
	if !ok || p.CompanyID != companyID {
		return gorm.ErrRecordNotFound
	}
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepo) List(_ context.Context, companyID uint, _, _ int) ([]*models.Project, int64, error) {
	var out []*models.Project
	for _, p := range m.projects {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

// mockNotifyRepo is an in-memory NotificationRepository
type mockNotifyRepo struct {
	notifications []*models.Notification
	nextID        uint
}

func newMockNotifyRepo() *mockNotifyRepo {
	return &mockNotifyRepo{nextID: 1}
}

func (m *mockNotifyRepo) Create(_ context.Context, n *models.Notification) error {
	n.ID = m.nextID
	m.nextID++
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *mockNotifyRepo) GetByID(_ context.Context, userID, id uint) (*models.Notification, error) {
	for _, n := range m.notifications {
		if n.ID == id && n.UserID == userID {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotifyRepo) ListByUser(_ context.Context, userID uint, _, _ int) ([]*models.Notification, int64, error) {
	var out []*models.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockNotifyRepo) MarkRead(_ context.Context, userID, id uint) error {
	n, err := m.GetByID(context.Background(), userID, id)
	if err != nil {
		return err
	}
	now := time.Now()
	n.IsRead = true
	n.ReadAt = &now
	return nil
}

func (m *mockNotifyRepo) MarkAllRead(_ context.Context, userID uint) error {
	now := time.Now()
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

type timesheetFixture struct {
	svc        *TimesheetService
	tsRepo     *mockTimesheetRepo
	projRepo   *mockProjectRepo
	notifyRepo *mockNotifyRepo
	admin      *models.User
	member     *models.User
}

func newTimesheetFixture() *timesheetFixture {
	tsRepo := newMockTimesheetRepo()
	projRepo := newMockProjectRepo()
	notifyRepo := newMockNotifyRepo()
	userRepo := newMockUserRepo()

	admin := &models.User{CompanyID: 1, Email: "admin@acme.test", Role: "ADMIN", IsActive: true}
	member := &models.User{CompanyID: 1, Email: "member@acme.test", Role: "USER", IsActive: true}
	_ = userRepo.Create(context.Background(), admin)
	_ = userRepo.Create(context.Background(), member)

	notifySvc := NewNotificationService(notifyRepo, userRepo)
	return &timesheetFixture{
		svc:        NewTimesheetService(tsRepo, projRepo, notifySvc),
		tsRepo:     tsRepo,
		projRepo:   projRepo,
		notifyRepo: notifyRepo,
		admin:      admin,
		member:     member,
	}
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestTimesheetCreate(t *testing.T) {
	f := newTimesheetFixture()

	ts, err := f.svc.Create(context.Background(), f.member, &TimesheetInput{
		Date:        day("2026-08-31"),
		Hours:       7.5,
		Description: "sprint work",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TimesheetStatusPending, ts.Status)
	assert.Equal(t, f.member.ID, ts.UserID)
	assert.Equal(t, f.member.CompanyID, ts.CompanyID)
}

func TestTimesheetCreateUnknownProject(t *testing.T) {
	f := newTimesheetFixture()
	projectID := uint(99)

	_, err := f.svc.Create(context.Background(), f.member, &TimesheetInput{
		ProjectID: &projectID,
		Date:      day("2026-08-31"),
		Hours:     8,
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestTimesheetVisibility(t *testing.T) {
	f := newTimesheetFixture()
	ts, err := f.svc.Create(context.Background(), f.member, &TimesheetInput{
		Date: day("2026-08-31"), Hours: 8,
	})
	require.NoError(t, err)

	other := &models.User{CompanyID: 1, Role: "USER", IsActive: true}
	other.ID = 99

	t.Run("owner sees own entry", func(t *testing.T) {
		got, err := f.svc.Get(context.Background(), f.member, ts.ID)
		require.NoError(t, err)
		assert.Equal(t, ts.ID, got.ID)
	})

	t.Run("admin sees any tenant entry", func(t *testing.T) {
		_, err := f.svc.Get(context.Background(), f.admin, ts.ID)
		assert.NoError(t, err)
	})

	t.Run("other members see nothing", func(t *testing.T) {
		_, err := f.svc.Get(context.Background(), other, ts.ID)
		assert.ErrorIs(t, err, domain.ErrTimesheetNotFound)
	})
}

func TestTimesheetUpdateLockedAfterReview(t *testing.T) {
	f := newTimesheetFixture()
	ts, err := f.svc.Create(context.Background(), f.member, &TimesheetInput{
		Date: day("2026-08-31"), Hours: 8,
	})
	require.NoError(t, err)

	_, err = f.svc.SetStatus(context.Background(), f.admin, ts.ID, models.TimesheetStatusApproved)
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), f.member, ts.ID, &TimesheetInput{
		Date: day("2026-08-30"), Hours: 6,
	})
	assert.ErrorIs(t, err, domain.ErrTimesheetLocked)
}

func TestTimesheetReview(t *testing.T) {
	f := newTimesheetFixture()
	ts, err := f.svc.Create(context.Background(), f.member, &TimesheetInput{
		Date: day("2026-08-31"), Hours: 8,
	})
	require.NoError(t, err)

	reviewed, err := f.svc.SetStatus(context.Background(), f.admin, ts.ID, models.TimesheetStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.TimesheetStatusRejected, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, f.admin.ID, *reviewed.ReviewedBy)
	assert.NotNil(t, reviewed.ReviewedAt)

	// Owner was notified about the decision
	notes, _, err := f.notifyRepo.ListByUser(context.Background(), f.member.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotifyTypeTimesheet, notes[0].Type)

	t.Run("bad status rejected", func(t *testing.T) {
		_, err := f.svc.SetStatus(context.Background(), f.admin, ts.ID, "MAYBE")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestTimesheetList(t *testing.T) {
	f := newTimesheetFixture()
	_, err := f.svc.Create(context.Background(), f.member, &TimesheetInput{Date: day("2026-08-30"), Hours: 8})
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), f.admin, &TimesheetInput{Date: day("2026-08-31"), Hours: 4})
	require.NoError(t, err)

	t.Run("member sees only their own even with all", func(t *testing.T) {
		entries, total, err := f.svc.List(context.Background(), f.member, true, "", 0, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Len(t, entries, 1)
	})

	t.Run("admin with all sees the company", func(t *testing.T) {
		_, total, err := f.svc.List(context.Background(), f.admin, true, "", 0, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})
}
