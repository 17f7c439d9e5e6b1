package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
)

// messageRepository implements MessageRepository interface
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create creates a new message
func (r *messageRepository) Create(ctx context.Context, m *models.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a message by ID
func (r *messageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	var m models.Message
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByUser lists messages sent to or by the user, newest first
func (r *messageRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Message, int64, error) {
	var messages []*models.Message
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("recipient_id = ? OR sender_id = ?", userID, userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// MarkRead marks a message read; only the recipient may do so
func (r *messageRepository) MarkRead(ctx context.Context, recipientID, id uint) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ? AND recipient_id = ? AND read_at IS NULL", id, recipientID).
		Update("read_at", &now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Re-marking an already-read message keeps its original read_at.
		// Not-found only applies when no such message exists for this
		// recipient.
		var count int64
		err := r.db.WithContext(ctx).
			Model(&models.Message{}).
			Where("id = ? AND recipient_id = ?", id, recipientID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}
