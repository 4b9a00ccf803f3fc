package fulfillment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/roomdesk/roomdesk/internal/config"
	"github.com/roomdesk/roomdesk/internal/domain"
)

func NewMock(t *testing.T) (*Driver, *MockItemSource, *MockExecutor) {
	cfg := &config.Config{SubmitInterval: 5 * time.Second, SubmitWorkers: 2}
	ctrl := gomock.NewController(t)

	items := NewMockItemSource(ctrl)
	executor := NewMockExecutor(ctrl)
	driver := New(cfg, items, executor)
	return driver, items, executor
}

func TestDriver_Start(t *testing.T) {
	driver, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go driver.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestDriver_processItems(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches by execution status", func(t *testing.T) {
		driver, items, executor := NewMock(t)
		stale := time.Now().Add(-time.Minute)
		batch := []domain.OrderSplitItem{
			{ID: "item-q", ExecutionStatus: domain.ExecQueued},
			{ID: "item-s", ExecutionStatus: domain.ExecSubmitting, UpdatedAt: stale},
			{ID: "item-w", ExecutionStatus: domain.ExecWaitConfirm},
		}
		items.EXPECT().FindItemsByExecution(ctx, gomock.Any(), uint32(1000)).Return(batch, nil)
		submitted := make(chan string, 1)
		refreshed := make(chan string, 2)
		executor.EXPECT().SubmitQueued(ctx, batch[0]).DoAndReturn(
			func(_ context.Context, item domain.OrderSplitItem) error {
				submitted <- item.ID
				return nil
			})
		executor.EXPECT().RefreshInFlight(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, item domain.OrderSplitItem) error {
				refreshed <- item.ID
				return nil
			}).Times(2)

		driver.processItems(ctx)

		assert.Equal(t, "item-q", <-submitted)
		got := map[string]bool{<-refreshed: true, <-refreshed: true}
		assert.True(t, got["item-s"])
		assert.True(t, got["item-w"])
	})

	t.Run("fresh in-flight claim is left to its worker", func(t *testing.T) {
		driver, items, _ := NewMock(t)
		batch := []domain.OrderSplitItem{
			{ID: "item-fresh", ExecutionStatus: domain.ExecSubmitting, UpdatedAt: time.Now()},
		}
		items.EXPECT().FindItemsByExecution(ctx, gomock.Any(), uint32(1000)).Return(batch, nil)

		driver.processItems(ctx)
		// No executor expectation: the item must not be touched before
		// the in-doubt timeout elapses.
		time.Sleep(20 * time.Millisecond)
	})

	t.Run("fetch failure is absorbed", func(t *testing.T) {
		driver, items, _ := NewMock(t)
		items.EXPECT().FindItemsByExecution(ctx, gomock.Any(), uint32(1000)).
			Return(nil, errors.New("connection refused"))

		driver.processItems(ctx)
	})

	t.Run("item already in flight is skipped", func(t *testing.T) {
		driver, items, _ := NewMock(t)
		inFlightItems.Store("item-busy", struct{}{})
		defer inFlightItems.Delete("item-busy")

		batch := []domain.OrderSplitItem{{ID: "item-busy", ExecutionStatus: domain.ExecQueued}}
		items.EXPECT().FindItemsByExecution(ctx, gomock.Any(), uint32(1000)).Return(batch, nil)

		driver.processItems(ctx)
		time.Sleep(20 * time.Millisecond)
	})
}

func TestDriver_handleItem(t *testing.T) {
	ctx := context.Background()
	driver, _, executor := NewMock(t)

	// Terminal and drafted items are never dispatched.
	for _, exec := range []domain.ExecStatus{domain.ExecPlanPending, domain.ExecOrdered, domain.ExecDone, domain.ExecFailed, domain.ExecCancelled} {
		assert.NoError(t, driver.handleItem(ctx, domain.OrderSplitItem{ID: "x", ExecutionStatus: exec}), string(exec))
	}

	executor.EXPECT().SubmitQueued(ctx, gomock.Any()).Return(errors.New("boom"))
	err := driver.handleItem(ctx, domain.OrderSplitItem{ID: "x", ExecutionStatus: domain.ExecQueued})
	assert.Error(t, err)
}
