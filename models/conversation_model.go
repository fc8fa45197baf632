package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a support thread between a customer and the support team.
type Conversation struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Subject string    `gorm:"size:255" json:"subject"`
	Status  string    `gorm:"size:20;not null;default:'open'" json:"status"`

	Participants []*User   `gorm:"many2many:conversation_participants;" json:"participants,omitempty"`
	Messages     []Message `json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
