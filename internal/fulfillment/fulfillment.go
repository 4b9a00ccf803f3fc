package fulfillment

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/roomdesk/roomdesk/internal/config"
	"github.com/roomdesk/roomdesk/internal/domain"
)

// inDoubtAfter is how long a SUBMITTING item must sit untouched before
// the driver starts re-polling it. Fresh claims belong to the submitting
// worker, not the refresher.
const inDoubtAfter = 30 * time.Second

var inFlightItems sync.Map

type ItemSource interface {
	FindItemsByExecution(ctx context.Context, statuses []domain.ExecStatus, limit uint32) ([]domain.OrderSplitItem, error)
}

type Executor interface {
	SubmitQueued(ctx context.Context, item domain.OrderSplitItem) error
	RefreshInFlight(ctx context.Context, item domain.OrderSplitItem) error
}

// Driver is the background loop that pushes queued split items to the
// provider and resolves in-doubt ones.
type Driver struct {
	items      ItemSource
	executor   Executor
	limit      uint32
	workerPool WorkerPoolI
	interval   time.Duration
}

func New(cfg *config.Config, items ItemSource, executor Executor) *Driver {
	return &Driver{
		items:      items,
		executor:   executor,
		limit:      1000,
		workerPool: NewWorkerPool(cfg.SubmitWorkers),
		interval:   cfg.SubmitInterval,
	}
}

func (d *Driver) Start(ctx context.Context) {
	zap.L().Info("Fulfillment driver started")
	go d.run(ctx)
}

func (d *Driver) run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping fulfillment driver")
			return
		case <-ticker.C:
			d.processItems(ctx)
		}
	}
}

func (d *Driver) processItems(ctx context.Context) {
	statuses := []domain.ExecStatus{domain.ExecQueued, domain.ExecSubmitting, domain.ExecWaitConfirm}
	items, err := d.items.FindItemsByExecution(ctx, statuses, atomic.LoadUint32(&d.limit))
	if err != nil {
		zap.L().Error("Failed to fetch split items for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, item := range items {
		item := item

		if _, loaded := inFlightItems.LoadOrStore(item.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := d.workerPool.Enqueue(ctx, ProviderCall{
				ItemID: item.ID,
				Run: func() error {
					defer inFlightItems.Delete(item.ID)
					return d.handleItem(ctx, item)
				},
			})
			if err != nil {
				inFlightItems.Delete(item.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing split items", zap.Error(err))
	}
}

func (d *Driver) handleItem(ctx context.Context, item domain.OrderSplitItem) error {
	switch item.ExecutionStatus {
	case domain.ExecQueued:
		return d.executor.SubmitQueued(ctx, item)
	case domain.ExecSubmitting:
		if time.Since(item.UpdatedAt) < inDoubtAfter {
			return nil
		}
		return d.executor.RefreshInFlight(ctx, item)
	case domain.ExecWaitConfirm:
		return d.executor.RefreshInFlight(ctx, item)
	}
	return nil
}
