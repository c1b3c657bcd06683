package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/support"
	"github.com/rioatrato/transchoco/services/support/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Support: models.DefaultSupportConfig(),
	}
}

func TestStartConversation_Classification(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		wantCategory string
		wantPriority string
	}{
		{
			name:         "complaint keyword escalates to high",
			message:      "El conductor fue terrible conmigo",
			wantCategory: models.CategoryComplaint,
			wantPriority: models.PriorityHigh,
		},
		{
			name:         "suggestion keyword",
			message:      "Tengo una sugerencia para la ruta de Bahía Solano",
			wantCategory: models.CategorySuggestion,
			wantPriority: models.PriorityMedium,
		},
		{
			name:         "urgent keyword overrides category priority",
			message:      "Es urgente, perdí mi equipaje",
			wantCategory: models.CategoryInquiry,
			wantPriority: models.PriorityUrgent,
		},
		{
			name:         "urgent complaint stays urgent",
			message:      "Queja urgente sobre el vehículo",
			wantCategory: models.CategoryComplaint,
			wantPriority: models.PriorityUrgent,
		},
		{
			name:         "keyword match is case insensitive",
			message:      "RECLAMO por el cobro doble",
			wantCategory: models.CategoryComplaint,
			wantPriority: models.PriorityHigh,
		},
		{
			name:         "no keyword falls back to inquiry medium",
			message:      "A qué hora sale la lancha a Nuquí?",
			wantCategory: models.CategoryInquiry,
			wantPriority: models.PriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSupportRepo(ctrl)
			gw := mocks.NewMockSupportGW(ctrl)
			uc := NewSupportUC(repo, gw, testConfig())

			repo.EXPECT().
				CreateConversation(gomock.Any(), gomock.Any(), tt.message).
				DoAndReturn(func(_ context.Context, conv *models.Conversation, _ string) error {
					conv.ID = 7
					return nil
				})

			conv, err := uc.StartConversation(context.Background(), 3, &models.StartConversationPayload{
				Subject: "Ayuda",
				Message: tt.message,
			})

			require.NoError(t, err)
			assert.Equal(t, int64(7), conv.ID)
			assert.Equal(t, tt.wantCategory, conv.Category)
			assert.Equal(t, tt.wantPriority, conv.Priority)
		})
	}
}

func TestStartConversation_MessageOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	repo.EXPECT().
		CreateConversation(gomock.Any(), gomock.Any(), "necesito ayuda con mi reserva").
		Return(nil)

	conv, err := uc.StartConversation(context.Background(), 7, &models.StartConversationPayload{
		Message: "necesito ayuda con mi reserva",
	})

	require.NoError(t, err)
	assert.Equal(t, "necesito ayuda con mi reserva", conv.Subject)
}

func TestStartConversation_LongMessageTruncatedSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	long := strings.Repeat("ayuda ", 20)
	repo.EXPECT().CreateConversation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	conv, err := uc.StartConversation(context.Background(), 7, &models.StartConversationPayload{
		Message: long,
	})

	require.NoError(t, err)
	assert.Len(t, []rune(conv.Subject), 60)
}

func TestStartConversation_MissingMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	_, err := uc.StartConversation(context.Background(), 3, &models.StartConversationPayload{
		Subject: "Ayuda",
		Message: "   ",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSendMessage_FirstAdminReplyClaimsThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	conv := &models.Conversation{
		ID:     7,
		UserID: 3,
		Status: models.ConversationStatusOpen,
	}

	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(conv, nil)
	repo.EXPECT().
		AppendMessage(gomock.Any(), gomock.Any(), models.ConversationStatusInProcess, int64(9)).
		DoAndReturn(func(_ context.Context, msg *models.ConversationMessage, _ string, _ int64) error {
			msg.ID = 100
			return nil
		})
	gw.EXPECT().PublishSupportMessage(gomock.Any(), conv, gomock.Any()).Return(nil)

	msg, err := uc.SendMessage(context.Background(), 7, 9, models.RoleAdmin, "Con gusto le ayudo")

	require.NoError(t, err)
	assert.Equal(t, int64(100), msg.ID)
	assert.Equal(t, int64(9), msg.SenderID)
}

func TestSendMessage_ClosedThreadReopens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	closed := func() *models.Conversation {
		return &models.Conversation{
			ID:      7,
			UserID:  3,
			AdminID: sql.NullInt64{Int64: 9, Valid: true},
			Status:  models.ConversationStatusClosed,
		}
	}

	// the originator writing to a closed thread puts it back to open
	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(closed(), nil)
	repo.EXPECT().
		AppendMessage(gomock.Any(), gomock.Any(), models.ConversationStatusOpen, int64(0)).
		Return(nil)
	gw.EXPECT().PublishSupportMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.SendMessage(context.Background(), 7, 3, models.RolePassenger, "Sigue sin resolverse")
	require.NoError(t, err)

	// an admin writing to a closed thread moves it straight to in_process
	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(closed(), nil)
	repo.EXPECT().
		AppendMessage(gomock.Any(), gomock.Any(), models.ConversationStatusInProcess, int64(0)).
		Return(nil)
	gw.EXPECT().PublishSupportMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err = uc.SendMessage(context.Background(), 7, 9, models.RoleAdmin, "Retomamos su caso")
	require.NoError(t, err)
}

func TestSendMessage_StrangerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	conv := &models.Conversation{ID: 7, UserID: 3, Status: models.ConversationStatusOpen}
	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(conv, nil)

	_, err := uc.SendMessage(context.Background(), 7, 4, models.RolePassenger, "hola")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestSendMessage_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	_, err := uc.SendMessage(context.Background(), 7, 3, models.RolePassenger, "   ")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSendMessage_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	conv := &models.Conversation{
		ID:      7,
		UserID:  3,
		AdminID: sql.NullInt64{Int64: 9, Valid: true},
		Status:  models.ConversationStatusInProcess,
	}
	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(conv, nil)
	repo.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), "", int64(0)).Return(nil)
	gw.EXPECT().PublishSupportMessage(gomock.Any(), conv, gomock.Any()).
		Return(errors.New("nsqd unreachable"))

	_, err := uc.SendMessage(context.Background(), 7, 3, models.RolePassenger, "gracias")
	assert.NoError(t, err)
}

func TestGetConversation_MarksRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	conv := &models.Conversation{ID: 7, UserID: 3, Status: models.ConversationStatusOpen}
	messages := []*models.ConversationMessage{{ID: 1, ConversationID: 7, SenderID: 3, Body: "hola"}}

	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(conv, nil)
	repo.EXPECT().ListMessages(gomock.Any(), int64(7)).Return(messages, nil)
	repo.EXPECT().MarkRead(gomock.Any(), int64(7), int64(3)).Return(nil)

	gotConv, gotMessages, err := uc.GetConversation(context.Background(), 7, 3, models.RolePassenger)

	require.NoError(t, err)
	assert.Same(t, conv, gotConv)
	assert.Len(t, gotMessages, 1)
}

func TestGetConversation_StrangerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	conv := &models.Conversation{ID: 7, UserID: 3, Status: models.ConversationStatusOpen}
	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(conv, nil)

	_, _, err := uc.GetConversation(context.Background(), 7, 4, models.RoleDriver)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestListConversations_RoutesByRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	filter := support.ConversationFilter{Status: models.ConversationStatusOpen}

	repo.EXPECT().ListAll(gomock.Any(), int64(9), filter).Return([]*models.Conversation{}, nil)
	_, err := uc.ListConversations(context.Background(), 9, models.RoleAdmin, filter)
	require.NoError(t, err)

	// non-admins get their own threads; the filter is ignored
	repo.EXPECT().ListByUser(gomock.Any(), int64(3)).Return([]*models.Conversation{}, nil)
	_, err = uc.ListConversations(context.Background(), 3, models.RolePassenger, filter)
	require.NoError(t, err)
}

func TestCloseConversation_AlreadyClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	conv := &models.Conversation{ID: 7, UserID: 3, Status: models.ConversationStatusClosed}
	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(conv, nil)

	err := uc.CloseConversation(context.Background(), 7, 9)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestReopenConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	closed := func() *models.Conversation {
		return &models.Conversation{ID: 7, UserID: 3, Status: models.ConversationStatusClosed}
	}

	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(closed(), nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.ConversationStatusOpen).Return(nil)
	require.NoError(t, uc.ReopenConversation(context.Background(), 7, 3, models.RolePassenger))

	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(closed(), nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.ConversationStatusInProcess).Return(nil)
	require.NoError(t, uc.ReopenConversation(context.Background(), 7, 9, models.RoleAdmin))
}

func TestReopenConversation_NotClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	conv := &models.Conversation{ID: 7, UserID: 3, Status: models.ConversationStatusOpen}
	repo.EXPECT().GetConversationByID(gomock.Any(), int64(7)).Return(conv, nil)

	err := uc.ReopenConversation(context.Background(), 7, 3, models.RolePassenger)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestSetPriority_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSupportRepo(ctrl)
	gw := mocks.NewMockSupportGW(ctrl)
	uc := NewSupportUC(repo, gw, testConfig())

	err := uc.SetPriority(context.Background(), 7, "critical")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
