package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maxjung/warbler/internal/database"
	"github.com/maxjung/warbler/internal/handlers/dto"
	"github.com/maxjung/warbler/internal/middleware"
	"github.com/maxjung/warbler/internal/models"
)

type MessageHandler struct {
	db *database.Database
}

func NewMessageHandler(db *database.Database) *MessageHandler {
	return &MessageHandler{db: db}
}

func (h *MessageHandler) CreateMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.NewMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := &models.Message{
		UserID:    userID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	if err := h.db.SaveMessage(message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": message.ID, "text": message.Text})
}

func (h *MessageHandler) GetMessage(c *gin.Context) {
	message, err := h.db.GetMessage(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}

	likes, err := h.db.CountMessageLikes(message.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load message"})
		return
	}

	resp := dto.NewMessageResponse(message)
	c.JSON(http.StatusOK, gin.H{"message": resp, "likes": likes})
}

// DeleteMessage succeeds only for the message's author. Anyone else
// gets the same uniform refusal the middleware uses, and the message
// stays put.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	message, err := h.db.GetMessage(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}

	if message.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access unauthorized"})
		return
	}

	if err := h.db.DeleteMessage(message.ID.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
		return
	}

	c.Status(http.StatusOK)
}

// LikeMessage toggles the like edge for the current user: like when
// absent, unlike when present.
func (h *MessageHandler) LikeMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	message, err := h.db.GetMessage(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}

	liked, err := h.db.IsLiked(userID, message.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
		return
	}

	if liked {
		err = h.db.UnlikeMessage(userID, message.ID)
	} else {
		err = h.db.LikeMessage(userID, message.ID)
		// A concurrent like may win the race; the unique index makes
		// that harmless.
		if err == gorm.ErrDuplicatedKey {
			err = nil
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": !liked})
}

// Feed is the home timeline: the current user's messages and those of
// everyone they follow, most recent first.
func (h *MessageHandler) Feed(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	limit := 100
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	messages, err := h.db.GetFeed(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": dto.NewMessageList(messages)})
}
