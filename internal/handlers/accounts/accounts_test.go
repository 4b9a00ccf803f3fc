package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/dto"
	"github.com/roomdesk/roomdesk/internal/service/accountservice"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		ListAccounts(gomock.Any()).
		Return([]domain.PoolAccount{
			{ID: 42, Phone: "13900000042", IsPlatinum: true, Online: true, Points: 12000, DailyOrdersLeft: 3},
		}, nil)

	r := newRequest(http.MethodGet, "/api/admin/accounts", "", nil)
	w := httptest.NewRecorder()
	handler.List(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.AccountResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, 42, body[0].ID)
	assert.True(t, body[0].IsPlatinum)
}

func TestImportHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Imported accounts start online",
			body: `{"accounts": [{"phone": "13900000042", "is_platinum": true, "daily_orders_left": 3}]}`,
			prepareMock: func() {
				service.EXPECT().
					ImportAccounts(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, accounts []domain.PoolAccount) (int, error) {
						assert.Len(t, accounts, 1)
						assert.True(t, accounts[0].Online)
						return 1, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"accounts": invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Empty batch fails validation",
			body:         `{"accounts": []}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			body: `{"accounts": [{"phone": "13900000042"}]}`,
			prepareMock: func() {
				service.EXPECT().
					ImportAccounts(gomock.Any(), gomock.Any()).
					Return(0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/admin/accounts/import", tt.body, nil)
			w := httptest.NewRecorder()
			handler.Import(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSetOnlineHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Account is taken offline", func(t *testing.T) {
		service.EXPECT().SetAccountOnline(gomock.Any(), 42, false).Return(nil)

		r := newRequest(http.MethodPost, "/api/admin/accounts/42/online", `{"online": false}`,
			map[string]string{"accountID": "42"})
		w := httptest.NewRecorder()
		handler.SetOnline(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown account", func(t *testing.T) {
		service.EXPECT().SetAccountOnline(gomock.Any(), 99, true).Return(accountservice.ErrAccountNotFound)

		r := newRequest(http.MethodPost, "/api/admin/accounts/99/online", `{"online": true}`,
			map[string]string{"accountID": "99"})
		w := httptest.NewRecorder()
		handler.SetOnline(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Non-numeric account id", func(t *testing.T) {
		r := newRequest(http.MethodPost, "/api/admin/accounts/abc/online", `{"online": true}`,
			map[string]string{"accountID": "abc"})
		w := httptest.NewRecorder()
		handler.SetOnline(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetPermissionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		GetPermissions(gomock.Any(), 7).
		Return([]domain.ChannelPermission{
			{AgentID: 7, Channel: domain.ChannelPlatinum, Allowed: true, DailyLimit: domain.Unlimited, QuotaBalance: 20},
		}, nil)

	r := newRequest(http.MethodGet, "/api/admin/permissions/7", "", map[string]string{"agentID": "7"})
	w := httptest.NewRecorder()
	handler.GetPermissions(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.PermissionDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "PLATINUM", body[0].Channel)
	assert.Equal(t, -1, body[0].DailyLimit)
}

func TestPutPermissionHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Permission is written",
			body: `{"agent_id": 7, "channel": "PLATINUM", "allowed": true, "daily_limit": -1, "quota_balance": 20}`,
			prepareMock: func() {
				service.EXPECT().
					PutPermission(gomock.Any(), &domain.ChannelPermission{
						AgentID:      7,
						Channel:      domain.ChannelPlatinum,
						Allowed:      true,
						DailyLimit:   domain.Unlimited,
						QuotaBalance: 20,
					}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Unknown channel fails validation",
			body:         `{"agent_id": 7, "channel": "VIP", "allowed": true}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Negative limit other than unlimited",
			body: `{"agent_id": 7, "channel": "PLATINUM", "allowed": true, "daily_limit": -5}`,
			prepareMock: func() {
				service.EXPECT().
					PutPermission(gomock.Any(), gomock.Any()).
					Return(accountservice.ErrInvalidLimit)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPut, "/api/admin/permissions", tt.body, nil)
			w := httptest.NewRecorder()
			handler.PutPermission(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestPutOverrideHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Override is written", func(t *testing.T) {
		service.EXPECT().
			PutOverride(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, override *domain.AgreementOverride) error {
				assert.Equal(t, 7, override.AgentID)
				assert.Equal(t, 3, override.AgreementID)
				assert.Equal(t, 2, *override.DailyLimit)
				assert.Nil(t, override.QuotaBalance)
				return nil
			})

		r := newRequest(http.MethodPut, "/api/admin/permissions/overrides",
			`{"agent_id": 7, "agreement_id": 3, "daily_limit": 2}`, nil)
		w := httptest.NewRecorder()
		handler.PutOverride(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Agreement off the allow-list is forbidden", func(t *testing.T) {
		service.EXPECT().
			PutOverride(gomock.Any(), gomock.Any()).
			Return(accountservice.ErrOverrideForbidden)

		r := newRequest(http.MethodPut, "/api/admin/permissions/overrides",
			`{"agent_id": 7, "agreement_id": 9}`, nil)
		w := httptest.NewRecorder()
		handler.PutOverride(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
