package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maxjung/warbler/internal/database"
	"github.com/maxjung/warbler/internal/handlers/dto"
	"github.com/maxjung/warbler/internal/middleware"
)

type UserHandler struct {
	db *database.Database
}

func NewUserHandler(db *database.Database) *UserHandler {
	return &UserHandler{db: db}
}

// GetUser is the public profile page: the user plus their most recent
// messages.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	messages, err := h.db.GetUserMessages(user.ID.String(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               user.ID,
		"username":         "@" + user.Username,
		"bio":              user.Bio,
		"location":         user.Location,
		"image_url":        user.ImageURL,
		"header_image_url": user.HeaderImageURL,
		"created_at":       user.CreatedAt,
		"messages":         dto.NewMessageList(messages),
	})
}

// SearchUsers matches usernames against a substring query.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	users, err := h.db.SearchUsersByUsername(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search users"})
		return
	}

	result := make([]gin.H, len(users))
	for i, user := range users {
		result[i] = gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"image_url": user.ImageURL,
		}
	}

	c.JSON(http.StatusOK, gin.H{"users": result})
}

func (h *UserHandler) Followers(c *gin.Context) {
	user, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	followers, err := h.db.GetFollowers(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load followers"})
		return
	}

	result := make([]gin.H, len(followers))
	for i, u := range followers {
		result[i] = gin.H{"id": u.ID, "username": "@" + u.Username, "image_url": u.ImageURL}
	}

	c.JSON(http.StatusOK, gin.H{"followers": result})
}

func (h *UserHandler) Following(c *gin.Context) {
	user, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	following, err := h.db.GetFollowing(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load following"})
		return
	}

	result := make([]gin.H, len(following))
	for i, u := range following {
		result[i] = gin.H{"id": u.ID, "username": "@" + u.Username, "image_url": u.ImageURL}
	}

	c.JSON(http.StatusOK, gin.H{"following": result})
}

// Likes lists the messages a user has liked.
func (h *UserHandler) Likes(c *gin.Context) {
	user, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	messages, err := h.db.GetUserLikes(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": dto.NewMessageList(messages)})
}

// Follow creates the edge current-user -> :id. Re-following is treated
// as success: the unique index rejects the duplicate and we swallow it.
func (h *UserHandler) Follow(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	target, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if target.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot follow yourself"})
		return
	}

	if err := h.db.Follow(userID, target.ID); err != nil && err != gorm.ErrDuplicatedKey {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to follow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": true})
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	target, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if err := h.db.Unfollow(userID, target.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unfollow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": false})
}

// UpdateMe edits the current user's profile fields.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req struct {
		Bio            string `json:"bio"`
		Location       string `json:"location"`
		ImageURL       string `json:"image_url"`
		HeaderImageURL string `json:"header_image_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.ImageURL != "" {
		user.ImageURL = req.ImageURL
	}
	if req.HeaderImageURL != "" {
		user.HeaderImageURL = req.HeaderImageURL
	}

	if err := h.db.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"bio":      user.Bio,
		"location": user.Location,
	})
}

// DeleteMe removes the current user's account; messages, follow edges
// and likes cascade with it.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	if err := h.db.DeleteUser(userID.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.Status(http.StatusOK)
}
