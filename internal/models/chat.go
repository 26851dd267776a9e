package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn of the advisor conversation. Messages are
// append-only and immutable once created; ordering is creation order.
type ChatMessage struct {
	ID        string    `json:"id" yaml:"id"`
	Role      ChatRole  `json:"role" yaml:"role"`
	Text      string    `json:"text" yaml:"text"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewChatMessage creates a message stamped with the current instant.
func NewChatMessage(role ChatRole, text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
}
