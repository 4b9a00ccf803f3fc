package watch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/dto"
	"github.com/roomdesk/roomdesk/internal/service/watchservice"
	"github.com/roomdesk/roomdesk/pkg/auth"
)

func NewMock(t *testing.T) (*WatchHandler, *MockService) {
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

	ctx := context.WithValue(r.Context(), auth.AgentIDKey, 1)
	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	return r.WithContext(ctx)
}

func testTask() *domain.PriceMonitorTask {
	return &domain.PriceMonitorTask{
		ID:           "task-1",
		AgentID:      1,
		HotelID:      "H-88",
		HotelName:    "Harbor View Hotel",
		RoomType:     "king",
		CheckIn:      time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC),
		TargetPrice:  2800,
		CurrentPrice: 3100,
		HasInventory: true,
		Status:       domain.WatchMonitoring,
		Candles:      []domain.Candle{{Date: "2025-11-09", Open: 3100, Close: 3000, High: 3300, Low: 2900}},
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{
		"hotel_id": "H-88",
		"hotel_name": "Harbor View Hotel",
		"room_type": "king",
		"check_in": "2025-11-20",
		"check_out": "2025-11-22",
		"target_price": 2800
	}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Task is created",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, agentID int, req watchservice.CreateRequest) (*domain.PriceMonitorTask, error) {
						assert.Equal(t, "H-88", req.HotelID)
						assert.Equal(t, "king", req.RoomType)
						assert.Equal(t, float64(2800), req.TargetPrice)
						return testTask(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"hotel_id": invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing target price fails validation",
			body:         `{"hotel_id": "H-88", "room_type": "king", "check_in": "2025-11-20", "check_out": "2025-11-22"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Malformed date",
			body:         `{"hotel_id": "H-88", "room_type": "king", "check_in": "20.11.2025", "check_out": "2025-11-22", "target_price": 2800}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Dates in the past",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, gomock.Any()).
					Return(nil, watchservice.ErrInvalidDates)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/watch", tt.body, nil)
			w := httptest.NewRecorder()
			handler.Create(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Tasks are listed", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any(), 1).
			Return([]domain.PriceMonitorTask{*testTask()}, nil)

		r := newRequest(http.MethodGet, "/api/watch", "", nil)
		w := httptest.NewRecorder()
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.WatchTaskResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, "task-1", body[0].ID)
		assert.Len(t, body[0].Candles, 1)
	})

	t.Run("No tasks yields 204", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any(), 1).
			Return(nil, nil)

		r := newRequest(http.MethodGet, "/api/watch", "", nil)
		w := httptest.NewRecorder()
		handler.List(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Task is returned with its candles", func(t *testing.T) {
		service.EXPECT().
			Get(gomock.Any(), 1, "task-1").
			Return(testTask(), nil)

		r := newRequest(http.MethodGet, "/api/watch/task-1", "", map[string]string{"taskID": "task-1"})
		w := httptest.NewRecorder()
		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.WatchTaskResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "MONITORING", body.Status)
		assert.Equal(t, "2025-11-20", body.CheckIn)
	})

	t.Run("Unknown task", func(t *testing.T) {
		service.EXPECT().
			Get(gomock.Any(), 1, "no-such-task").
			Return(nil, watchservice.ErrTaskNotFound)

		r := newRequest(http.MethodGet, "/api/watch/no-such-task", "", map[string]string{"taskID": "no-such-task"})
		w := httptest.NewRecorder()
		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTaskActionHandlers(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		invoke       func(w http.ResponseWriter, r *http.Request)
		expectedCode int
	}{
		{
			name: "Pause succeeds",
			prepareMock: func() {
				service.EXPECT().Pause(gomock.Any(), 1, "task-1").Return(nil)
			},
			invoke:       handler.Pause,
			expectedCode: http.StatusOK,
		},
		{
			name: "Resume outside PAUSED conflicts",
			prepareMock: func() {
				service.EXPECT().Resume(gomock.Any(), 1, "task-1").Return(watchservice.ErrAlreadyResolved)
			},
			invoke:       handler.Resume,
			expectedCode: http.StatusConflict,
		},
		{
			name: "Delete succeeds",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, "task-1").Return(nil)
			},
			invoke:       handler.Delete,
			expectedCode: http.StatusOK,
		},
		{
			name: "Delete of unknown task",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, "task-1").Return(watchservice.ErrTaskNotFound)
			},
			invoke:       handler.Delete,
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/watch/task-1/pause", "", map[string]string{"taskID": "task-1"})
			w := httptest.NewRecorder()
			tt.invoke(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
