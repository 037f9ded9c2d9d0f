package proxy

import (
	"context"
	"time"
)

type CheckOutput struct {
	Success bool
	Latency time.Duration
	Error   error
}

type Checker interface {
	Check(ctx context.Context, e Endpoint) CheckOutput
}

// TaskExecutor runs a batch of jobs concurrently and returns once all of them finished.
type TaskExecutor interface {
	RunAll(ctx context.Context, jobs ...func(ctx context.Context)) error
}

// VerifyPoolUseCase probes every endpoint once and returns a pool of the live ones.
type VerifyPoolUseCase struct {
	checker Checker
	pool    TaskExecutor
	logger  Logger
}

func NewVerifyPoolUseCase(checker Checker, pool TaskExecutor, logger Logger) *VerifyPoolUseCase {
	return &VerifyPoolUseCase{
		checker: checker,
		pool:    pool,
		logger:  logger,
	}
}

func (uc *VerifyPoolUseCase) Execute(ctx context.Context, in *Pool) *Pool {
	endpoints := in.Endpoints()
	if len(endpoints) == 0 {
		return in
	}

	uc.logger.Info("checking proxies", "count", len(endpoints))

	alive := make([]bool, len(endpoints))
	jobs := make([]func(ctx context.Context), len(endpoints))

	for i, e := range endpoints {
		jobs[i] = func(ctx context.Context) {
			res := uc.checker.Check(ctx, e)
			if !res.Success {
				uc.logger.Warn("proxy dropped", "server", e.Server(), "error", res.Error)
				return
			}
			uc.logger.Debug("proxy alive", "server", e.Server(), "latency", res.Latency)
			alive[i] = true
		}
	}

	if err := uc.pool.RunAll(ctx, jobs...); err != nil {
		uc.logger.Warn("some proxy checks were not scheduled", "error", err)
	}

	kept := make([]Endpoint, 0, len(endpoints))
	for i, e := range endpoints {
		if alive[i] {
			kept = append(kept, e)
		}
	}

	uc.logger.Info("proxy check completed", "alive", len(kept), "dropped", len(endpoints)-len(kept))
	return NewPool(kept)
}
