package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/support"
)

// CreateConversation opens a new support thread: the conversation row, the
// first message, a read participant row for the originator and an
// unread-one participant row for every admin, all in one transaction.
func (r *SupportRepo) CreateConversation(ctx context.Context, conv *models.Conversation, firstMessage string) error {
	now := time.Now()
	conv.Status = models.ConversationStatusOpen
	conv.CreatedAt = now
	conv.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	convQuery := `
		INSERT INTO conversations (user_id, admin_id, subject, category, priority, status, created_at, updated_at)
		VALUES ($1, NULL, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, convQuery,
		conv.UserID,
		conv.Subject,
		conv.Category,
		conv.Priority,
		conv.Status,
		conv.CreatedAt,
		conv.UpdatedAt,
	).Scan(&conv.ID)
	if err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}

	msgQuery := `
		INSERT INTO conversation_messages (conversation_id, sender_id, body, sent_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err = tx.ExecContext(ctx, msgQuery, conv.ID, conv.UserID, firstMessage, now); err != nil {
		return fmt.Errorf("failed to insert first message: %w", err)
	}

	// originator starts fully read
	originatorQuery := `
		INSERT INTO conversation_participants (conversation_id, user_id, unread_count, last_read_at)
		VALUES ($1, $2, 0, $3)
	`
	if _, err = tx.ExecContext(ctx, originatorQuery, conv.ID, conv.UserID, now); err != nil {
		return fmt.Errorf("failed to insert originator participant: %w", err)
	}

	// every admin gets the thread in their inbox with one unread message
	adminQuery := `
		INSERT INTO conversation_participants (conversation_id, user_id, unread_count, last_read_at)
		SELECT $1, id, 1, NULL FROM users WHERE role = $2 AND id <> $3
	`
	if _, err = tx.ExecContext(ctx, adminQuery, conv.ID, models.RoleAdmin, conv.UserID); err != nil {
		return fmt.Errorf("failed to insert admin participants: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetConversationByID retrieves one conversation with the originator's
// name.
func (r *SupportRepo) GetConversationByID(ctx context.Context, id int64) (*models.Conversation, error) {
	query := `
		SELECT c.id, c.user_id, c.admin_id, c.subject, c.category, c.priority,
			c.status, c.created_at, c.updated_at,
			u.first_name || ' ' || u.last_name AS user_name,
			0 AS unread_count
		FROM conversations c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`
	var conv models.Conversation
	if err := r.db.GetContext(ctx, &conv, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &conv, nil
}

// ListByUser returns the user's own conversations with their unread count,
// most recently updated first.
func (r *SupportRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	query := `
		SELECT c.id, c.user_id, c.admin_id, c.subject, c.category, c.priority,
			c.status, c.created_at, c.updated_at,
			u.first_name || ' ' || u.last_name AS user_name,
			COALESCE(cp.unread_count, 0) AS unread_count
		FROM conversations c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN conversation_participants cp
			ON cp.conversation_id = c.id AND cp.user_id = $1
		WHERE c.user_id = $1
		ORDER BY c.updated_at DESC
	`
	conversations := []*models.Conversation{}
	if err := r.db.SelectContext(ctx, &conversations, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

// ListAll returns the full inbox for an admin, optionally filtered by
// status and priority, with the admin's own unread counts.
func (r *SupportRepo) ListAll(ctx context.Context, adminID int64, filter support.ConversationFilter) ([]*models.Conversation, error) {
	query := `
		SELECT c.id, c.user_id, c.admin_id, c.subject, c.category, c.priority,
			c.status, c.created_at, c.updated_at,
			u.first_name || ' ' || u.last_name AS user_name,
			COALESCE(cp.unread_count, 0) AS unread_count
		FROM conversations c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN conversation_participants cp
			ON cp.conversation_id = c.id AND cp.user_id = $1
	`
	args := []interface{}{adminID}
	idx := 2

	if filter.Status != "" {
		query += fmt.Sprintf(" WHERE c.status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.Priority != "" {
		if filter.Status != "" {
			query += fmt.Sprintf(" AND c.priority = $%d", idx)
		} else {
			query += fmt.Sprintf(" WHERE c.priority = $%d", idx)
		}
		args = append(args, filter.Priority)
	}

	query += ` ORDER BY c.updated_at DESC`

	conversations := []*models.Conversation{}
	if err := r.db.SelectContext(ctx, &conversations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

// ListMessages returns the conversation's messages oldest first with sender
// identity.
func (r *SupportRepo) ListMessages(ctx context.Context, conversationID int64) ([]*models.ConversationMessage, error) {
	query := `
		SELECT m.id, m.conversation_id, m.sender_id, m.body, m.sent_at,
			u.first_name || ' ' || u.last_name AS sender_name,
			u.role AS sender_role
		FROM conversation_messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.conversation_id = $1
		ORDER BY m.sent_at, m.id
	`
	messages := []*models.ConversationMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, conversationID); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// MarkRead zeroes the caller's unread counter and stamps last_read_at.
func (r *SupportRepo) MarkRead(ctx context.Context, conversationID, userID int64) error {
	query := `
		UPDATE conversation_participants
		SET unread_count = 0, last_read_at = $1
		WHERE conversation_id = $2 AND user_id = $3
	`
	if _, err := r.db.ExecContext(ctx, query, time.Now(), conversationID, userID); err != nil {
		return fmt.Errorf("failed to mark read: %w", err)
	}
	return nil
}

// AppendMessage writes one message and its bookkeeping in a single
// transaction: unread +1 for everyone but the sender, sender zeroed (and
// inserted as participant when missing), plus the optional status change
// and admin assignment.
func (r *SupportRepo) AppendMessage(ctx context.Context, msg *models.ConversationMessage, newStatus string, assignAdminID int64) error {
	now := time.Now()
	msg.SentAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	msgQuery := `
		INSERT INTO conversation_messages (conversation_id, sender_id, body, sent_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, msgQuery,
		msg.ConversationID, msg.SenderID, msg.Body, msg.SentAt).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	bumpQuery := `
		UPDATE conversation_participants
		SET unread_count = unread_count + 1
		WHERE conversation_id = $1 AND user_id <> $2
	`
	if _, err = tx.ExecContext(ctx, bumpQuery, msg.ConversationID, msg.SenderID); err != nil {
		return fmt.Errorf("failed to bump unread counters: %w", err)
	}

	senderQuery := `
		INSERT INTO conversation_participants (conversation_id, user_id, unread_count, last_read_at)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (conversation_id, user_id)
		DO UPDATE SET unread_count = 0, last_read_at = $3
	`
	if _, err = tx.ExecContext(ctx, senderQuery, msg.ConversationID, msg.SenderID, now); err != nil {
		return fmt.Errorf("failed to upsert sender participant: %w", err)
	}

	if newStatus != "" || assignAdminID > 0 {
		convQuery := `UPDATE conversations SET updated_at = $1`
		args := []interface{}{now}
		idx := 2
		if newStatus != "" {
			convQuery += fmt.Sprintf(", status = $%d", idx)
			args = append(args, newStatus)
			idx++
		}
		if assignAdminID > 0 {
			convQuery += fmt.Sprintf(", admin_id = $%d", idx)
			args = append(args, assignAdminID)
			idx++
		}
		convQuery += fmt.Sprintf(" WHERE id = $%d", idx)
		args = append(args, msg.ConversationID)
		if _, err = tx.ExecContext(ctx, convQuery, args...); err != nil {
			return fmt.Errorf("failed to update conversation: %w", err)
		}
	} else {
		if _, err = tx.ExecContext(ctx,
			`UPDATE conversations SET updated_at = $1 WHERE id = $2`, now, msg.ConversationID); err != nil {
			return fmt.Errorf("failed to touch conversation: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateStatus sets a conversation's lifecycle status.
func (r *SupportRepo) UpdateStatus(ctx context.Context, conversationID int64, status string) error {
	return r.updateConversationField(ctx, conversationID, "status", status)
}

// UpdatePriority sets a conversation's priority.
func (r *SupportRepo) UpdatePriority(ctx context.Context, conversationID int64, priority string) error {
	return r.updateConversationField(ctx, conversationID, "priority", priority)
}

func (r *SupportRepo) updateConversationField(ctx context.Context, conversationID int64, column, value string) error {
	query := fmt.Sprintf(`UPDATE conversations SET %s = $1, updated_at = $2 WHERE id = $3`, column)
	result, err := r.db.ExecContext(ctx, query, value, time.Now(), conversationID)
	if err != nil {
		return fmt.Errorf("failed to update conversation %s: %w", column, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// AssignAdmin hands the conversation to an administrator, creating their
// participant row when absent.
func (r *SupportRepo) AssignAdmin(ctx context.Context, conversationID, adminID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE conversations SET admin_id = $1, updated_at = $2 WHERE id = $3`,
		adminID, time.Now(), conversationID)
	if err != nil {
		return fmt.Errorf("failed to assign admin: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}

	participantQuery := `
		INSERT INTO conversation_participants (conversation_id, user_id, unread_count, last_read_at)
		VALUES ($1, $2, 0, NULL)
		ON CONFLICT (conversation_id, user_id) DO NOTHING
	`
	if _, err = tx.ExecContext(ctx, participantQuery, conversationID, adminID); err != nil {
		return fmt.Errorf("failed to upsert admin participant: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
