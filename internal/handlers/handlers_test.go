package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/roomdesk/roomdesk/docs"
	"github.com/roomdesk/roomdesk/internal/service"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.OrderHandler)
	assert.NotNil(t, h.WatchHandler)
	assert.NotNil(t, h.AccountHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockWatchHandler := NewMockWatchHandler(ctrl)
	mockAccountHandler := NewMockAccountHandler(ctrl)

	h := &Handlers{
		OrderHandler:   mockOrderHandler,
		WatchHandler:   mockWatchHandler,
		AccountHandler: mockAccountHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	// Every API route sits behind the auth middleware, so an anonymous
	// request must bounce before it reaches a handler.
	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/orders", http.StatusUnauthorized},
		{"GET", "/api/orders", http.StatusUnauthorized},
		{"GET", "/api/orders/group-1", http.StatusUnauthorized},
		{"POST", "/api/orders/group-1/submit-all", http.StatusUnauthorized},
		{"POST", "/api/orders/group-1/items/item-1/submit", http.StatusUnauthorized},
		{"GET", "/api/orders/group-1/items/item-1/payment-link", http.StatusUnauthorized},
		{"POST", "/api/watch", http.StatusUnauthorized},
		{"GET", "/api/watch", http.StatusUnauthorized},
		{"POST", "/api/watch/task-1/pause", http.StatusUnauthorized},
		{"GET", "/api/admin/accounts", http.StatusUnauthorized},
		{"POST", "/api/admin/accounts/import", http.StatusUnauthorized},
		{"PUT", "/api/admin/permissions", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
