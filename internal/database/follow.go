package database

import (
	"github.com/google/uuid"

	"github.com/maxjung/warbler/internal/models"
)

// Follow inserts the edge follower -> followed. A duplicate edge is
// rejected by the composite unique index and surfaces as
// gorm.ErrDuplicatedKey; callers decide whether that counts as success.
func (d *Database) Follow(followerID, followedID uuid.UUID) error {
	return d.db.Create(&models.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}).Error
}

// Unfollow removes the edge if present; removing an absent edge is a
// no-op.
func (d *Database) Unfollow(followerID, followedID uuid.UUID) error {
	return d.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

func (d *Database) IsFollowing(followerID, followedID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (d *Database) IsFollowedBy(userID, otherID uuid.UUID) (bool, error) {
	return d.IsFollowing(otherID, userID)
}

// GetFollowers returns the users following userID.
func (d *Database) GetFollowers(userID uuid.UUID) ([]models.User, error) {
	var users []models.User

	err := d.db.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Find(&users).Error

	return users, err
}

// GetFollowing returns the users userID follows.
func (d *Database) GetFollowing(userID uuid.UUID) ([]models.User, error) {
	var users []models.User

	err := d.db.
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error

	return users, err
}
