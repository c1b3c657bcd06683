package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/support"
	"github.com/rioatrato/transchoco/services/support/mocks"
)

func newSupportContext(t *testing.T, method, target, body string, userID int64, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextRole, role)
	return c, rec
}

func TestStartHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSupportUC(ctrl)
	handler := NewSupportHandler(mockUC)

	body := `{"subject":"Equipaje perdido","message":"Perdí mi maleta, es urgente"}`
	c, rec := newSupportContext(t, http.MethodPost, "/support/conversations", body, 3, models.RolePassenger)

	mockUC.EXPECT().
		StartConversation(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, p *models.StartConversationPayload) (*models.Conversation, error) {
			assert.Equal(t, "Equipaje perdido", p.Subject)
			return &models.Conversation{
				ID:       7,
				UserID:   3,
				Subject:  p.Subject,
				Category: models.CategoryInquiry,
				Priority: models.PriorityUrgent,
				Status:   models.ConversationStatusOpen,
			}, nil
		})

	require.NoError(t, handler.Start(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, models.PriorityUrgent, data["priority"])
}

func TestListHandler_AdminFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSupportUC(ctrl)
	handler := NewSupportHandler(mockUC)

	c, rec := newSupportContext(t, http.MethodGet,
		"/support/conversations?status=open&priority=urgent", "", 9, models.RoleAdmin)

	mockUC.EXPECT().
		ListConversations(gomock.Any(), int64(9), models.RoleAdmin, support.ConversationFilter{
			Status:   "open",
			Priority: "urgent",
		}).
		Return([]*models.Conversation{{ID: 7}}, nil)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSendMessageHandler_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSupportUC(ctrl)
	handler := NewSupportHandler(mockUC)

	c, rec := newSupportContext(t, http.MethodPost,
		"/support/conversations/7/messages", `{"message":"hola"}`, 4, models.RolePassenger)
	c.SetParamNames("id")
	c.SetParamValues("7")

	mockUC.EXPECT().
		SendMessage(gomock.Any(), int64(7), int64(4), models.RolePassenger, "hola").
		Return(nil, apperr.ErrForbidden)

	require.NoError(t, handler.SendMessage(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetHandler_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSupportUC(ctrl)
	handler := NewSupportHandler(mockUC)

	c, rec := newSupportContext(t, http.MethodGet, "/support/conversations/abc", "", 3, models.RolePassenger)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
