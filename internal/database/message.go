package database

import (
	"github.com/google/uuid"

	"github.com/maxjung/warbler/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

func (d *Database) GetMessage(id string) (*models.Message, error) {
	var message models.Message
	if err := d.db.Preload("User").First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (d *Database) DeleteMessage(id string) error {
	return d.db.Delete(&models.Message{}, "id = ?", id).Error
}

// GetUserMessages returns a user's messages, most recent first.
func (d *Database) GetUserMessages(userID string, limit int) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Preload("User").
		Find(&messages).Error

	return messages, err
}

// GetFeed returns the home timeline: messages by the user and by
// everyone the user follows, most recent first.
func (d *Database) GetFeed(userID uuid.UUID, limit int) ([]models.Message, error) {
	var messages []models.Message

	followed := d.db.Model(&models.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", userID)

	err := d.db.
		Where("user_id IN (?) OR user_id = ?", followed, userID).
		Order("created_at DESC").
		Limit(limit).
		Preload("User").
		Find(&messages).Error

	return messages, err
}
