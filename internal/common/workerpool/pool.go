package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Pool bounds how many jobs run at once. Submit blocks while every worker is busy.
type Pool struct {
	pool *ants.Pool
}

func New(size int) (*Pool, error) {
	if size < 1 {
		size = 1
	}
	p, err := ants.NewPool(size, ants.WithNonblocking(false))
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &Pool{pool: p}, nil
}

// Submit schedules job with ctx. A job whose ctx is already done when a worker
// picks it up is skipped.
func (p *Pool) Submit(ctx context.Context, job func(ctx context.Context)) error {
	return p.pool.Submit(func() {
		if ctx.Err() != nil {
			return
		}
		job(ctx)
	})
}

// RunAll submits every job and waits until each one has run or been skipped.
// Jobs that could not be scheduled are reported in the returned error.
func (p *Pool) RunAll(ctx context.Context, jobs ...func(ctx context.Context)) error {
	var (
		wg   sync.WaitGroup
		errs []error
	)

	for _, job := range jobs {
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			job(ctx)
		})
		if err != nil {
			wg.Done()
			errs = append(errs, err)
		}
	}

	wg.Wait()
	return errors.Join(errs...)
}

func (p *Pool) Stop() {
	p.pool.Release()
}

func (p *Pool) Workers() int {
	return p.pool.Cap()
}

func (p *Pool) Running() int {
	return p.pool.Running()
}
