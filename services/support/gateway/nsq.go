package gateway

import (
	"context"
	"time"

	"github.com/rioatrato/transchoco/internal/pkg/constants"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// SupportMessageEvent is published on every support message, so the other
// side of the thread can be notified.
type SupportMessageEvent struct {
	ConversationID int64     `json:"conversation_id"`
	MessageID      int64     `json:"message_id"`
	UserID         int64     `json:"user_id"`
	SenderID       int64     `json:"sender_id"`
	SenderRole     string    `json:"sender_role"`
	Subject        string    `json:"subject"`
	Priority       string    `json:"priority"`
	SentAt         time.Time `json:"sent_at"`
}

// PublishSupportMessage publishes the message event.
func (g *SupportGW) PublishSupportMessage(_ context.Context, conv *models.Conversation, msg *models.ConversationMessage) error {
	if g.producer == nil {
		return nil
	}
	event := SupportMessageEvent{
		ConversationID: conv.ID,
		MessageID:      msg.ID,
		UserID:         conv.UserID,
		SenderID:       msg.SenderID,
		SenderRole:     msg.SenderRole,
		Subject:        conv.Subject,
		Priority:       conv.Priority,
		SentAt:         msg.SentAt,
	}
	return g.producer.Publish(constants.TopicSupportMessage, event)
}
