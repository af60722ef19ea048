package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: FollowerID follows FollowedID.
// The composite unique index forbids duplicate edges; the relation is
// owned by neither endpoint user.
type Follow struct {
	ID         uint      `gorm:"primaryKey"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follower_followed"`
	FollowedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followed User `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE"`
}

func (Follow) TableName() string { return "follows" }
