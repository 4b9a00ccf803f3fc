package fulfillment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool(2)

	var mu sync.Mutex
	executed := map[string]int{}

	for _, id := range []string{"item-1", "item-2", "item-3", "item-4", "item-5"} {
		id := id
		err := wp.Enqueue(context.Background(), ProviderCall{
			ItemID: id,
			Run: func() error {
				mu.Lock()
				executed[id]++
				mu.Unlock()
				return nil
			},
		})
		require.NoError(t, err)
	}
	wp.Close()

	assert.Len(t, executed, 5)
	for id, n := range executed {
		assert.Equal(t, 1, n, id)
	}
}

func TestWorkerPool_CallError(t *testing.T) {
	wp := NewWorkerPool(1)

	ran := false
	err := wp.Enqueue(context.Background(), ProviderCall{
		ItemID: "item-1",
		Run: func() error {
			ran = true
			return errors.New("call failed")
		},
	})
	require.NoError(t, err)

	// Close waits for queued calls, so the failing call has run by now.
	wp.Close()
	assert.True(t, ran)
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := &WorkerPool{calls: make(chan ProviderCall)} // no workers draining

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.Enqueue(ctx, ProviderCall{ItemID: "item-1", Run: func() error { return nil }})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_CloseIsIdempotent(t *testing.T) {
	wp := NewWorkerPool(0) // sizes below one are clamped

	wp.Close()
	wp.Close()
}
