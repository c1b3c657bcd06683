package usecase

import (
	"context"
	"fmt"
	"strings"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/logger"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/support"
)

// StartConversation opens a support thread for the user. The category and
// priority are derived from the first message via the configured keyword
// tables.
func (uc *SupportUC) StartConversation(ctx context.Context, userID int64, payload *models.StartConversationPayload) (*models.Conversation, error) {
	subject := strings.TrimSpace(payload.Subject)
	message := strings.TrimSpace(payload.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", apperr.ErrValidation)
	}
	if subject == "" {
		subject = deriveSubject(message)
	}

	category := uc.classifyCategory(message)
	conv := &models.Conversation{
		UserID:   userID,
		Subject:  subject,
		Category: category,
		Priority: uc.classifyPriority(message, category),
	}

	if err := uc.supportRepo.CreateConversation(ctx, conv, message); err != nil {
		return nil, err
	}

	logger.Info("support conversation opened",
		logger.Int64("conversation_id", conv.ID),
		logger.Int64("user_id", userID),
		logger.String("category", conv.Category),
		logger.String("priority", conv.Priority))

	return conv, nil
}

// deriveSubject is the fallback when the user sent no subject: the opening
// of the message.
func deriveSubject(message string) string {
	const maxSubjectRunes = 60
	runes := []rune(message)
	if len(runes) <= maxSubjectRunes {
		return message
	}
	return string(runes[:maxSubjectRunes])
}

// classifyCategory buckets the first message by keyword match, falling back
// to inquiry.
func (uc *SupportUC) classifyCategory(message string) string {
	lower := strings.ToLower(message)
	if containsAny(lower, uc.cfg.Support.ComplaintKeywords) {
		return models.CategoryComplaint
	}
	if containsAny(lower, uc.cfg.Support.SuggestionKeywords) {
		return models.CategorySuggestion
	}
	return models.CategoryInquiry
}

// classifyPriority escalates on urgency keywords, then on complaints.
func (uc *SupportUC) classifyPriority(message, category string) string {
	lower := strings.ToLower(message)
	if containsAny(lower, uc.cfg.Support.UrgentKeywords) {
		return models.PriorityUrgent
	}
	if category == models.CategoryComplaint {
		return models.PriorityHigh
	}
	return models.PriorityMedium
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ListConversations returns the caller's inbox: admins see every thread
// with optional status/priority filters, everyone else only their own.
func (uc *SupportUC) ListConversations(ctx context.Context, callerID int64, callerRole string, filter support.ConversationFilter) ([]*models.Conversation, error) {
	if callerRole == models.RoleAdmin {
		return uc.supportRepo.ListAll(ctx, callerID, filter)
	}
	return uc.supportRepo.ListByUser(ctx, callerID)
}

// GetConversation returns a thread with its messages and marks it read for
// the caller. Only the originator and admins may read a thread.
func (uc *SupportUC) GetConversation(ctx context.Context, conversationID, callerID int64, callerRole string) (*models.Conversation, []*models.ConversationMessage, error) {
	conv, err := uc.supportRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}
	if conv.UserID != callerID && callerRole != models.RoleAdmin {
		return nil, nil, fmt.Errorf("%w: not your conversation", apperr.ErrForbidden)
	}

	messages, err := uc.supportRepo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.supportRepo.MarkRead(ctx, conversationID, callerID); err != nil {
		logger.Warn("failed to mark conversation read",
			logger.Int64("conversation_id", conversationID),
			logger.Int64("user_id", callerID),
			logger.ErrorField(err))
	}

	return conv, messages, nil
}

// SendMessage appends a message to the thread. A closed thread is reopened
// by the message: to in_process when an admin writes, back to open when the
// user does. The first admin reply claims the thread and moves it from open
// to in_process.
func (uc *SupportUC) SendMessage(ctx context.Context, conversationID, senderID int64, senderRole, body string) (*models.ConversationMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: message is required", apperr.ErrValidation)
	}

	conv, err := uc.supportRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	isAdmin := senderRole == models.RoleAdmin
	if conv.UserID != senderID && !isAdmin {
		return nil, fmt.Errorf("%w: not your conversation", apperr.ErrForbidden)
	}

	var newStatus string
	var assignAdminID int64
	switch {
	case conv.Status == models.ConversationStatusClosed && isAdmin:
		newStatus = models.ConversationStatusInProcess
	case conv.Status == models.ConversationStatusClosed:
		newStatus = models.ConversationStatusOpen
	case conv.Status == models.ConversationStatusOpen && isAdmin:
		newStatus = models.ConversationStatusInProcess
	}
	if isAdmin && !conv.AdminID.Valid {
		assignAdminID = senderID
	}

	msg := &models.ConversationMessage{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		SenderRole:     senderRole,
	}

	if err := uc.supportRepo.AppendMessage(ctx, msg, newStatus, assignAdminID); err != nil {
		return nil, err
	}

	if err := uc.supportGW.PublishSupportMessage(ctx, conv, msg); err != nil {
		logger.Warn("failed to publish support message event",
			logger.Int64("conversation_id", conversationID),
			logger.ErrorField(err))
	}

	return msg, nil
}

// CloseConversation marks the thread resolved.
func (uc *SupportUC) CloseConversation(ctx context.Context, conversationID, adminID int64) error {
	conv, err := uc.supportRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv.Status == models.ConversationStatusClosed {
		return fmt.Errorf("%w: conversation is already closed", apperr.ErrInvalidState)
	}

	if err := uc.supportRepo.UpdateStatus(ctx, conversationID, models.ConversationStatusClosed); err != nil {
		return err
	}

	logger.Info("support conversation closed",
		logger.Int64("conversation_id", conversationID),
		logger.Int64("admin_id", adminID))
	return nil
}

// ReopenConversation brings a closed thread back: to in_process when an
// admin reopens it, to open when the originator does.
func (uc *SupportUC) ReopenConversation(ctx context.Context, conversationID, callerID int64, callerRole string) error {
	conv, err := uc.supportRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return err
	}

	isAdmin := callerRole == models.RoleAdmin
	if conv.UserID != callerID && !isAdmin {
		return fmt.Errorf("%w: not your conversation", apperr.ErrForbidden)
	}
	if conv.Status != models.ConversationStatusClosed {
		return fmt.Errorf("%w: conversation is not closed", apperr.ErrInvalidState)
	}

	newStatus := models.ConversationStatusOpen
	if isAdmin {
		newStatus = models.ConversationStatusInProcess
	}
	return uc.supportRepo.UpdateStatus(ctx, conversationID, newStatus)
}

// SetPriority overrides the classified priority.
func (uc *SupportUC) SetPriority(ctx context.Context, conversationID int64, priority string) error {
	if !models.ValidPriority(priority) {
		return fmt.Errorf("%w: invalid priority %q", apperr.ErrValidation, priority)
	}
	return uc.supportRepo.UpdatePriority(ctx, conversationID, priority)
}

// AssignAdmin hands the thread to a specific administrator.
func (uc *SupportUC) AssignAdmin(ctx context.Context, conversationID, adminID int64) error {
	if adminID <= 0 {
		return fmt.Errorf("%w: admin_id is required", apperr.ErrValidation)
	}
	return uc.supportRepo.AssignAdmin(ctx, conversationID, adminID)
}
