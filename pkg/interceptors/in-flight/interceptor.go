package interceptors_inflight

import (
	"context"
	"net/http"

	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
	lconfig "github.com/Puiching-Memory/LMT4SwanLab/pkg/config"
	lhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/http"
	"golang.org/x/sync/semaphore"
)

type Config struct {
	// Zero size means disabled and let everything through
	Size     uint64 `env:"INTERCEPTOR_LIMIT_INFLIGHT_SIZE" envDefault:"0"`
	Blocking bool   `env:"INTERCEPTOR_LIMIT_INFLIGHT_BLOCKING" envDefault:"true"`
}

func NewConfigFromEnv() (Config, error) {
	var cfg Config
	err := lconfig.Parse(&cfg)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

type Interceptor struct {
	cfg Config
	sem *semaphore.Weighted
}

func NewInterceptor(cfg Config) *Interceptor {
	return &Interceptor{
		cfg: cfg,
		sem: semaphore.NewWeighted(int64(cfg.Size)),
	}
}

type checkResult struct {
	allowed bool
	err     error
	done    func()
}

func (interceptor *Interceptor) check(ctx context.Context) checkResult {
	result := checkResult{
		done: func() {},
	}
	if interceptor.cfg.Size > 0 {
		if !interceptor.cfg.Blocking {
			if !interceptor.sem.TryAcquire(1) {
				return result
			}
		} else {
			if err := interceptor.sem.Acquire(ctx, 1); err != nil {
				result.err = err
				return result
			}
		}
		result.done = func() {
			interceptor.sem.Release(1)
		}
	}
	result.allowed = true
	return result
}

// ToClientMiddleware bounds the number of concurrent outbound requests going
// through a client instance.
func (interceptor *Interceptor) ToClientMiddleware() cbhttp.MiddlewareFunc {
	return func(next cbhttp.RunnerFunc) cbhttp.RunnerFunc {
		return func(r *cbhttp.Request) (*cbhttp.Response, *lhttp.HttpError) {
			ctx := r.Context
			if ctx == nil {
				ctx = context.Background()
			}
			result := interceptor.check(ctx)
			defer result.done()
			if result.err != nil {
				return nil, &lhttp.HttpError{Err: result.err}
			}
			if !result.allowed {
				return nil, &lhttp.HttpError{Code: http.StatusTooManyRequests, Message: "too many in-flight requests"}
			}
			return next(r)
		}
	}
}
