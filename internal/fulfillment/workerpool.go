package fulfillment

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	Enqueue(ctx context.Context, call ProviderCall) error
	Close()
}

// ProviderCall is one unit of outbound provider work, labeled with the
// split item it serves.
type ProviderCall struct {
	ItemID string
	Run    func() error
}

// WorkerPool bounds how many provider calls run at once, so a burst of
// queued items cannot open more sessions than the provider tolerates.
type WorkerPool struct {
	calls chan ProviderCall
	wg    sync.WaitGroup
	once  sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{calls: make(chan ProviderCall, size)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for call := range wp.calls {
		if err := call.Run(); err != nil {
			zap.L().Error("provider call failed",
				zap.String("itemID", call.ItemID), zap.Error(err))
		}
	}
}

func (wp *WorkerPool) Enqueue(ctx context.Context, call ProviderCall) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.calls <- call:
		return nil
	}
}

// Close stops accepting calls and waits for in-flight ones to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() { close(wp.calls) })
	wp.wg.Wait()
}
