package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/core/domain"
)

// CronService runs scheduled maintenance jobs: the nightly expired
// session sweep and the weekly pending-timesheet reminder.
type CronService struct {
	cron        *cron.Cron
	db          *gorm.DB
	sessionRepo repositories.SessionRepository
	notifySvc   *NotificationService
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB, sessionRepo repositories.SessionRepository, notifySvc *NotificationService) *CronService {
	return &CronService{
		cron:        cron.New(),
		db:          db,
		sessionRepo: sessionRepo,
		notifySvc:   notifySvc,
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() {
	// 03:00 daily: remove expired and revoked sessions
	s.cron.AddFunc("0 3 * * *", s.sweepSessions)

	// 09:00 Monday: remind admins of timesheets awaiting review
	s.cron.AddFunc("0 9 * * MON", s.remindPendingTimesheets)

	s.cron.Start()
	log.Println("Cron service started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Cron service stopped")
}

func (s *CronService) sweepSessions() {
	removed, err := s.sessionRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Printf("Session sweep failed: %v", err)
		return
	}
	log.Printf("Session sweep removed %d sessions", removed)
}

func (s *CronService) remindPendingTimesheets() {
	ctx := context.Background()

	type pendingCount struct {
		CompanyID uint
		Count     int64
	}
	var counts []pendingCount
	err := s.db.WithContext(ctx).
		Model(&models.Timesheet{}).
		Select("company_id, COUNT(*) AS count").
		Where("status = ?", models.TimesheetStatusPending).
		Group("company_id").
		Scan(&counts).Error
	if err != nil {
		log.Printf("Pending timesheet reminder failed: %v", err)
		return
	}

	for _, pc := range counts {
		var admins []*models.User
		err := s.db.WithContext(ctx).
			Where("company_id = ? AND is_active = ? AND role IN ?",
				pc.CompanyID, true,
				[]string{string(domain.RoleAdmin), string(domain.RoleSuperAdmin)}).
			Find(&admins).Error
		if err != nil {
			log.Printf("Failed to load admins for company %d: %v", pc.CompanyID, err)
			continue
		}

		for _, admin := range admins {
			s.notifySvc.NotifyPendingTimesheets(ctx, admin.ID, pc.Count)
		}
	}
}
