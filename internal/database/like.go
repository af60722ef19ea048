package database

import (
	"github.com/google/uuid"

	"github.com/maxjung/warbler/internal/models"
)

// LikeMessage inserts the like edge; a duplicate surfaces as
// gorm.ErrDuplicatedKey, same contract as Follow.
func (d *Database) LikeMessage(userID, messageID uuid.UUID) error {
	return d.db.Create(&models.Like{
		UserID:    userID,
		MessageID: messageID,
	}).Error
}

func (d *Database) UnlikeMessage(userID, messageID uuid.UUID) error {
	return d.db.
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
}

func (d *Database) IsLiked(userID, messageID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error
	return count > 0, err
}

// GetUserLikes returns the messages userID has liked, most recently
// liked first.
func (d *Database) GetUserLikes(userID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Joins("JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Preload("User").
		Find(&messages).Error

	return messages, err
}

// GetMessageLikers returns the users who liked messageID.
func (d *Database) GetMessageLikers(messageID uuid.UUID) ([]models.User, error) {
	var users []models.User

	err := d.db.
		Joins("JOIN likes ON likes.user_id = users.id").
		Where("likes.message_id = ?", messageID).
		Find(&users).Error

	return users, err
}

func (d *Database) CountMessageLikes(messageID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Like{}).
		Where("message_id = ?", messageID).
		Count(&count).Error
	return count, err
}
