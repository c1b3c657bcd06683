package support

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rioatrato/transchoco/services/support SupportGW

// SupportGW represents the support gateway interface for outbound events
type SupportGW interface {
	PublishSupportMessage(ctx context.Context, conv *models.Conversation, msg *models.ConversationMessage) error
}
