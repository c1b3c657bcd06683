package support

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rioatrato/transchoco/services/support SupportRepo

// SupportRepo represents the support repository interface
type SupportRepo interface {
	// CreateConversation inserts the conversation, its first message and
	// the participant rows (originator plus every admin, the admins with
	// one unread) in a single transaction.
	CreateConversation(ctx context.Context, conv *models.Conversation, firstMessage string) error
	GetConversationByID(ctx context.Context, id int64) (*models.Conversation, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Conversation, error)
	ListAll(ctx context.Context, adminID int64, filter ConversationFilter) ([]*models.Conversation, error)
	ListMessages(ctx context.Context, conversationID int64) ([]*models.ConversationMessage, error)

	MarkRead(ctx context.Context, conversationID, userID int64) error

	// AppendMessage inserts the message, bumps the other participants'
	// unread counters, zeroes the sender's, ensures the sender holds a
	// participant row, and applies the status/assignment transition in a
	// single transaction.
	AppendMessage(ctx context.Context, msg *models.ConversationMessage, newStatus string, assignAdminID int64) error

	UpdateStatus(ctx context.Context, conversationID int64, status string) error
	UpdatePriority(ctx context.Context, conversationID int64, priority string) error
	AssignAdmin(ctx context.Context, conversationID, adminID int64) error
}
