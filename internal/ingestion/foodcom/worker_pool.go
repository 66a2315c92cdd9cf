package foodcom

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
)

// fetchFunc drains one recipe's review feed.
type fetchFunc func(ctx context.Context, recipeID int64) error

// fetchPool fans review-feed fetches out over a fixed number of workers.
// It inherits the sync's context, so cancellation stops queued fetches
// immediately, and it keeps the recipe IDs that failed so the caller can
// report or requeue them.
type fetchPool struct {
	workers int
	fetch   fetchFunc

	done atomic.Int64

	mu     sync.Mutex
	failed []int64
}

func newFetchPool(workers int, fetch fetchFunc) *fetchPool {
	if workers < 1 {
		workers = 1
	}
	return &fetchPool{workers: workers, fetch: fetch}
}

// Run processes every recipe ID and blocks until the queue drains or ctx
// is cancelled. It returns the IDs whose fetch failed; on cancellation the
// unprocessed remainder is neither fetched nor counted as failed.
func (p *fetchPool) Run(ctx context.Context, recipeIDs []int64) []int64 {
	queue := make(chan int64)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for recipeID := range queue {
				if err := p.fetch(ctx, recipeID); err != nil {
					log.Printf("[FetchPool] Worker %d: recipe %d failed: %v", worker, recipeID, err)
					p.mu.Lock()
					p.failed = append(p.failed, recipeID)
					p.mu.Unlock()
					continue
				}
				p.done.Add(1)
			}
		}(i)
	}

feed:
	for _, recipeID := range recipeIDs {
		select {
		case queue <- recipeID:
		case <-ctx.Done():
			log.Println("[FetchPool] Cancelled, draining in-flight fetches")
			break feed
		}
	}
	close(queue)
	wg.Wait()

	return p.Failed()
}

// Completed reports how many fetches finished successfully.
func (p *fetchPool) Completed() int64 {
	return p.done.Load()
}

// Failed returns a copy of the recipe IDs whose fetch errored.
func (p *fetchPool) Failed() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]int64, len(p.failed))
	copy(out, p.failed)
	return out
}
