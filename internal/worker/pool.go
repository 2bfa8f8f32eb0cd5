// Package worker provides a worker pool for playing independent games in
// parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// WorkItem represents a game to be played.
type WorkItem struct {
	Index int   // Position of the game in the batch
	Seed  int64 // Seed for the game's randomised policies
}

// ProcessResult represents the outcome of playing one game.
type ProcessResult struct {
	Index     int
	Result    game.Result
	Analysis  *processing.GameAnalysis // Features found on replay (nil on error)
	Duplicate bool                     // Same game already seen in this batch
	Error     error
}

// ProcessFunc plays the game described by a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool plays games on a fixed set of goroutines. Games are handed out in
// submission order; results arrive in completion order.
type Pool struct {
	workers int
	buffer  int
	games   chan WorkItem
	results chan ProcessResult
	play    ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the game and result queues. Values
// below one are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool that runs play for every submitted item.
// Without options it has one worker and a queue of 16.
func NewPool(play ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  16,
		play:    play,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.games = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.games {
		if p.Stopped() {
			continue
		}
		p.results <- p.play(item)
	}
}

// Submit queues item, blocking while the queue is full. It returns false
// without queueing when the pool is stopped or ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) bool {
	if p.Stopped() || ctx.Err() != nil {
		return false
	}
	select {
	case p.games <- item:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop makes the workers skip games still waiting in the queue.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers, then closes Results.
func (p *Pool) Close() {
	close(p.games)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished games.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
