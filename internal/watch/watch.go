package watch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/roomdesk/roomdesk/internal/config"
	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/provider"
)

var evaluatingTasks sync.Map

type Evaluator interface {
	Due(ctx context.Context, limit uint32) ([]domain.PriceMonitorTask, error)
	ApplySnapshot(ctx context.Context, taskID string, snap domain.PriceSnapshot) error
}

type Searcher interface {
	Search(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (*provider.SearchResult, error)
}

// Engine polls the provider for every monitored room on its own ticker.
// Tasks are evaluated in parallel; the sync.Map guard serializes
// evaluation per task so a slow poll can't interleave with the next tick.
type Engine struct {
	evaluator Evaluator
	searcher  Searcher
	limit     uint32
	interval  time.Duration
}

func New(cfg *config.Config, evaluator Evaluator, searcher Searcher) *Engine {
	return &Engine{
		evaluator: evaluator,
		searcher:  searcher,
		limit:     500,
		interval:  cfg.WatchInterval,
	}
}

func (e *Engine) Start(ctx context.Context) {
	zap.L().Info("Price watch engine started")
	go e.run(ctx)
}

func (e *Engine) run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping price watch engine")
			return
		case <-ticker.C:
			e.pollTasks(ctx)
		}
	}
}

func (e *Engine) pollTasks(ctx context.Context) {
	tasks, err := e.evaluator.Due(ctx, atomic.LoadUint32(&e.limit))
	if err != nil {
		zap.L().Error("Failed to fetch watch tasks", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, task := range tasks {
		task := task

		if _, loaded := evaluatingTasks.LoadOrStore(task.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			defer evaluatingTasks.Delete(task.ID)
			return e.pollTask(ctx, task)
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error evaluating watch tasks", zap.Error(err))
	}
}

func (e *Engine) pollTask(ctx context.Context, task domain.PriceMonitorTask) error {
	result, err := e.searcher.Search(ctx, task.HotelID, task.CheckIn, task.CheckOut)
	if err != nil {
		// Transient or not, the task keeps its last state and waits for
		// the next tick.
		zap.L().Warn("Provider search failed",
			zap.String("taskID", task.ID), zap.String("hotelID", task.HotelID), zap.Error(err))
		return nil
	}

	snap := result.Snapshot(task.RoomType, time.Now())
	if err := e.evaluator.ApplySnapshot(ctx, task.ID, snap); err != nil {
		return err
	}
	return nil
}
