package watch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/roomdesk/roomdesk/internal/config"
	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/provider"
)

func NewMock(t *testing.T) (*Engine, *MockEvaluator, *MockSearcher) {
	cfg := &config.Config{WatchInterval: 30 * time.Second}
	ctrl := gomock.NewController(t)

	evaluator := NewMockEvaluator(ctrl)
	searcher := NewMockSearcher(ctrl)
	return New(cfg, evaluator, searcher), evaluator, searcher
}

func watchTask(id string) domain.PriceMonitorTask {
	return domain.PriceMonitorTask{
		ID:          id,
		AgentID:     7,
		HotelID:     "H-88",
		RoomType:    "king",
		CheckIn:     time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC),
		TargetPrice: 2800,
		Status:      domain.WatchMonitoring,
	}
}

func TestEngine_Start(t *testing.T) {
	engine, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestEngine_pollTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("search result flows into the evaluator", func(t *testing.T) {
		engine, evaluator, searcher := NewMock(t)
		task := watchTask("task-1")

		evaluator.EXPECT().Due(ctx, uint32(500)).Return([]domain.PriceMonitorTask{task}, nil)
		searcher.EXPECT().Search(ctx, "H-88", task.CheckIn, task.CheckOut).Return(&provider.SearchResult{
			HotelID: "H-88",
			Rooms:   []provider.RoomRate{{RoomType: "king", Price: 2750, HasInventory: true}},
		}, nil)
		evaluator.EXPECT().ApplySnapshot(ctx, "task-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, snap domain.PriceSnapshot) error {
				assert.Equal(t, float64(2750), snap.Price)
				assert.True(t, snap.HasInventory)
				return nil
			})

		engine.pollTasks(ctx)
	})

	t.Run("search failure skips the task until the next tick", func(t *testing.T) {
		engine, evaluator, searcher := NewMock(t)
		task := watchTask("task-2")

		evaluator.EXPECT().Due(ctx, uint32(500)).Return([]domain.PriceMonitorTask{task}, nil)
		searcher.EXPECT().Search(ctx, "H-88", task.CheckIn, task.CheckOut).
			Return(nil, provider.ErrTransient)

		engine.pollTasks(ctx)
	})

	t.Run("fetch failure is absorbed", func(t *testing.T) {
		engine, evaluator, _ := NewMock(t)
		evaluator.EXPECT().Due(ctx, uint32(500)).Return(nil, errors.New("connection refused"))

		engine.pollTasks(ctx)
	})

	t.Run("task already being evaluated is skipped", func(t *testing.T) {
		engine, evaluator, _ := NewMock(t)
		evaluatingTasks.Store("task-3", struct{}{})
		defer evaluatingTasks.Delete("task-3")

		evaluator.EXPECT().Due(ctx, uint32(500)).Return([]domain.PriceMonitorTask{watchTask("task-3")}, nil)

		engine.pollTasks(ctx)
	})
}
