package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/adapters/persistence/repositories"
	"crewledger/internal/core/domain"
)

// MessageService handles company-internal messaging
type MessageService struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
	notifySvc   *NotificationService
}

// NewMessageService creates a new message service
func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notifySvc *NotificationService,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifySvc:   notifySvc,
	}
}

// Send sends a message to another member of the sender's company and
// notifies the recipient
func (s *MessageService) Send(ctx context.Context, sender *models.User, recipientID uint, body string) (*models.Message, error) {
	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if recipient.CompanyID != sender.CompanyID || recipient.ID == sender.ID {
		return nil, domain.ErrUserNotFound
	}

	m := &models.Message{
		CompanyID:   sender.CompanyID,
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Body:        strings.TrimSpace(body),
	}

	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.notifySvc.NotifyNewMessage(ctx, m, sender)

	return m, nil
}

// List lists messages sent to or by the caller
func (s *MessageService) List(ctx context.Context, userID uint, offset, limit int) ([]*models.Message, int64, error) {
	return s.messageRepo.ListByUser(ctx, userID, offset, limit)
}

// MarkRead marks a received message read
func (s *MessageService) MarkRead(ctx context.Context, userID, id uint) (*models.Message, error) {
	if err := s.messageRepo.MarkRead(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return s.messageRepo.GetByID(ctx, id)
}
