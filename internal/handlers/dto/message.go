package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/maxjung/warbler/internal/models"
)

type NewMessageRequest struct {
	Text string `json:"text" binding:"required,max=140"`
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	User      UserInfo  `json:"user"`
}

type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	ImageURL string    `json:"image_url,omitempty"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		User: UserInfo{
			ID:       m.User.ID,
			Username: m.User.Username,
			ImageURL: m.User.ImageURL,
		},
	}
}

func NewMessageList(messages []models.Message) []MessageResponse {
	out := make([]MessageResponse, len(messages))
	for i := range messages {
		out[i] = NewMessageResponse(&messages[i])
	}
	return out
}
