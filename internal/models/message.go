package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxMessageLength bounds the text of a single warble.
const MaxMessageLength = 140

type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"size:140;not null;check:text <> ''"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
