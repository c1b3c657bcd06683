package models

import (
	"database/sql"
	"time"
)

// Conversation lifecycle
const (
	ConversationStatusOpen      = "open"
	ConversationStatusInProcess = "in_process"
	ConversationStatusClosed    = "closed"
)

// Conversation categories
const (
	CategoryInquiry    = "inquiry"
	CategoryComplaint  = "complaint"
	CategorySuggestion = "suggestion"
	CategoryOther      = "other"
)

// Conversation priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidPriority reports whether p is an accepted priority value.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Conversation is a support thread between one originating user and at most
// one assigned administrator.
type Conversation struct {
	ID        int64         `json:"id" db:"id"`
	UserID    int64         `json:"user_id" db:"user_id"`
	AdminID   sql.NullInt64 `json:"-" db:"admin_id"`
	Subject   string        `json:"subject" db:"subject"`
	Category  string        `json:"category" db:"category"`
	Priority  string        `json:"priority" db:"priority"`
	Status    string        `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`

	// Joined fields for inbox listings
	UserName    string `json:"user_name,omitempty" db:"user_name"`
	UnreadCount int    `json:"unread_count" db:"unread_count"`
}

// ConversationMessage is one ordered message inside a conversation.
type ConversationMessage struct {
	ID             int64     `json:"id" db:"id"`
	ConversationID int64     `json:"conversation_id" db:"conversation_id"`
	SenderID       int64     `json:"sender_id" db:"sender_id"`
	Body           string    `json:"body" db:"body"`
	SentAt         time.Time `json:"sent_at" db:"sent_at"`

	SenderName string `json:"sender_name,omitempty" db:"sender_name"`
	SenderRole string `json:"sender_role,omitempty" db:"sender_role"`
}

// Participant tracks per-user unread state for a conversation.
type Participant struct {
	ConversationID int64        `json:"conversation_id" db:"conversation_id"`
	UserID         int64        `json:"user_id" db:"user_id"`
	UnreadCount    int          `json:"unread_count" db:"unread_count"`
	LastReadAt     sql.NullTime `json:"-" db:"last_read_at"`
}

// StartConversationPayload is the body for POST /support/conversations
type StartConversationPayload struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendMessagePayload is the body for POST /support/conversations/:id/messages
type SendMessagePayload struct {
	Message string `json:"message"`
}
