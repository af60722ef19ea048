package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null;check:username <> ''"`
	Email          string    `gorm:"uniqueIndex;not null;check:email <> ''"`
	PasswordHash   string    `gorm:"not null;check:password_hash <> ''"`
	ImageURL       string    `gorm:"default:'/static/images/default-pic.png'"`
	HeaderImageURL string    `gorm:"default:'/static/images/warbler-hero.jpg'"`
	Bio            string
	Location       string
	CreatedAt      time.Time

	Messages []Message `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the id in the application instead of a database
// default so postgres and sqlite produce identical rows.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) String() string {
	return fmt.Sprintf("<User #%s: %s, %s>", u.ID, u.Username, u.Email)
}
