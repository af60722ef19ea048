package models

import (
	"time"

	"github.com/google/uuid"
)

// Like marks a message as liked by a user, unique per (user, message).
type Like struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_message"`
	MessageID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_message"`
	CreatedAt time.Time

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Message Message `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string { return "likes" }
