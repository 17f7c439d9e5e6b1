package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/core/domain"
)

// NotificationService handles in-app notifications. Delivery failures
// are logged, never surfaced to the operation that triggered them.
type NotificationService struct {
	notifyRepo repositories.NotificationRepository
	userRepo   repositories.UserRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notifyRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) *NotificationService {
	return &NotificationService{
		notifyRepo: notifyRepo,
		userRepo:   userRepo,
	}
}

// List lists the caller's notifications, unread first
func (s *NotificationService) List(ctx context.Context, userID uint, offset, limit int) ([]*models.Notification, int64, error) {
	return s.notifyRepo.ListByUser(ctx, userID, offset, limit)
}

// MarkRead marks one of the caller's notifications read
func (s *NotificationService) MarkRead(ctx context.Context, userID, id uint) (*models.Notification, error) {
	if err := s.notifyRepo.MarkRead(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return s.notifyRepo.GetByID(ctx, userID, id)
}

// MarkAllRead marks all of the caller's notifications read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.notifyRepo.MarkAllRead(ctx, userID)
}

// NotifyTimesheetReviewed notifies a timesheet's owner of a review decision
func (s *NotificationService) NotifyTimesheetReviewed(ctx context.Context, ts *models.Timesheet) {
	verb := "approved"
	if ts.Status == models.TimesheetStatusRejected {
		verb = "rejected"
	}

	s.create(ctx, &models.Notification{
		UserID: ts.UserID,
		Type:   models.NotifyTypeTimesheet,
		Title:  fmt.Sprintf("Timesheet %s", verb),
		Body: fmt.Sprintf("Your timesheet for %s (%.2f hours) was %s",
			ts.Date.Format("2006-01-02"), ts.Hours, verb),
	})
}

// NotifyNewMessage notifies a message's recipient
func (s *NotificationService) NotifyNewMessage(ctx context.Context, m *models.Message, sender *models.User) {
	s.create(ctx, &models.Notification{
		UserID: m.RecipientID,
		Type:   models.NotifyTypeMessage,
		Title:  fmt.Sprintf("New message from %s %s", sender.FirstName, sender.LastName),
		Body:   truncate(m.Body, 140),
	})
}

// NotifyPaymentRecorded notifies the tenant's other admins of a new payment
func (s *NotificationService) NotifyPaymentRecorded(ctx context.Context, actor *models.User, payment *models.PersonnelPayment, personnel *models.Personnel) {
	members, err := s.userRepo.ListDirectory(ctx, actor.CompanyID)
	if err != nil {
		log.Printf("Failed to load directory for payment notification: %v", err)
		return
	}

	for _, member := range members {
		if member.ID == actor.ID || !member.GetRole().AtLeast(domain.RoleAdmin) {
			continue
		}
		s.create(ctx, &models.Notification{
			UserID: member.ID,
			Type:   models.NotifyTypePayment,
			Title:  "Personnel payment recorded",
			Body: fmt.Sprintf("%s %s paid %s %s (%s)",
				actor.FirstName, actor.LastName,
				personnel.FirstName, personnel.LastName,
				domain.FormatAmount(payment.Amount)),
		})
	}
}

// NotifyPendingTimesheets sends the weekly reminder to one admin
func (s *NotificationService) NotifyPendingTimesheets(ctx context.Context, adminID uint, count int64) {
	s.create(ctx, &models.Notification{
		UserID: adminID,
		Type:   models.NotifyTypeSystem,
		Title:  "Timesheets awaiting review",
		Body:   fmt.Sprintf("%d timesheet entries are pending review", count),
	})
}

func (s *NotificationService) create(ctx context.Context, n *models.Notification) {
	if err := s.notifyRepo.Create(ctx, n); err != nil {
		log.Printf("Failed to create notification for user %d: %v", n.UserID, err)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
