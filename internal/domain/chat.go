package domain

import (
	"context"
	"time"
)

// Chat is a private conversation between exactly two users. The participant
// pair is stored normalized (UserA < UserB) so the pair itself is the
// conversation key.
type Chat struct {
	ID        string    `json:"id"`
	UserA     string    `json:"user_a"`
	UserB     string    `json:"user_b"`
	CreatedAt time.Time `json:"created_at"`
}

// OtherParticipant returns the participant that is not userID.
func (c *Chat) OtherParticipant(userID string) string {
	if c.UserA == userID {
		return c.UserB
	}
	return c.UserA
}

// Notification is a transient, user-visible message attached to an action
// response. The client renders it as a toast and discards it.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContactResult tells the client where to go and what to show after the
// contact action resolved a conversation.
type ContactResult struct {
	Chat         *Chat        `json:"chat"`
	Created      bool         `json:"created"`
	RedirectPath string       `json:"redirect_path"`
	Notification Notification `json:"notification"`
}

type ChatRepository interface {
	// GetOrCreatePrivateChat atomically resolves the conversation for the
	// participant pair, creating it when absent. The second return value
	// reports whether this call created the conversation.
	GetOrCreatePrivateChat(ctx context.Context, userID, otherUserID string) (*Chat, bool, error)
	FindPrivateChat(ctx context.Context, userID, otherUserID string) (*Chat, error)
	FetchByParticipant(ctx context.Context, userID string) ([]Chat, error)
}

type ContactUsecase interface {
	ContactUser(ctx context.Context, targetUserID string) (*ContactResult, error)
	ListChats(ctx context.Context) ([]Chat, error)
}
