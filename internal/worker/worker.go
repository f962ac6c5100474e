// Package worker 提供固定數量 goroutine 的工作池，第一個失敗的工作會取消其餘工作。
package worker

import (
	"context"
	"sync"
)

// Task 在工作池中執行的單位；ctx 於工作池被取消時結束
type Task func(ctx context.Context) error

// Pool 固定大小的工作池
type Pool interface {
	// Submit 送出工作；工作池已取消時回傳 false
	Submit(Task) bool
	// Wait 停止接收新工作，等待所有工作完成並回傳第一個錯誤
	Wait() error
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(ctx context.Context, n int) Pool {
	if n <= 0 {
		n = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	p := &pool{ctx: ctx, cancel: cancel, jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	ctx    context.Context
	cancel context.CancelFunc
	jobs   chan Task

	wg       sync.WaitGroup
	stopOnce sync.Once

	mu  sync.Mutex
	err error
}

func (p *pool) loop() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job == nil || p.ctx.Err() != nil {
			continue
		}
		if err := job(p.ctx); err != nil {
			p.fail(err)
		}
	}
}

func (p *pool) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.err = err
		p.cancel()
	}
}

func (p *pool) Submit(t Task) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case <-p.ctx.Done():
		return false
	case p.jobs <- t:
		return true
	}
}

func (p *pool) Wait() error {
	p.stopOnce.Do(func() {
		close(p.jobs)
		p.wg.Wait()
		ctxErr := p.ctx.Err()
		p.cancel()

		p.mu.Lock()
		if p.err == nil {
			p.err = ctxErr
		}
		p.mu.Unlock()
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
