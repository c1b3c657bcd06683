package support

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rioatrato/transchoco/services/support SupportUC

// ConversationFilter narrows the admin inbox listing.
type ConversationFilter struct {
	Status   string
	Priority string
}

// SupportUC represents the support usecase interface
type SupportUC interface {
	StartConversation(ctx context.Context, userID int64, payload *models.StartConversationPayload) (*models.Conversation, error)
	ListConversations(ctx context.Context, callerID int64, callerRole string, filter ConversationFilter) ([]*models.Conversation, error)
	GetConversation(ctx context.Context, conversationID, callerID int64, callerRole string) (*models.Conversation, []*models.ConversationMessage, error)
	SendMessage(ctx context.Context, conversationID, senderID int64, senderRole, body string) (*models.ConversationMessage, error)
	CloseConversation(ctx context.Context, conversationID, adminID int64) error
	ReopenConversation(ctx context.Context, conversationID, callerID int64, callerRole string) error
	SetPriority(ctx context.Context, conversationID int64, priority string) error
	AssignAdmin(ctx context.Context, conversationID, adminID int64) error
}
